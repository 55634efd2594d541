package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind различает виды ошибок API клиента
type ErrorKind int

const (
	// KindHTTP любой non-2xx статус без отдельного вида (в т.ч. 5xx после исчерпания попыток)
	KindHTTP ErrorKind = iota + 1
	// KindUnauthorized 401, сохраненный токен удален
	KindUnauthorized
	// KindForbidden 403
	KindForbidden
	// KindNotFound 404
	KindNotFound
	// KindTimeout попытка не уложилась в таймаут
	KindTimeout
	// KindNetwork попытка не дошла до сервера (connection refused, DNS, reset)
	KindNetwork
	// KindNetworkUnavailable исчерпан бюджет попыток на timeout/network
	KindNetworkUnavailable
	// KindDecode сервер ответил 2xx, но тело не разбирается
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindHTTP:
		return "http error"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network error"
	case KindNetworkUnavailable:
		return "network unavailable"
	case KindDecode:
		return "decode error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error описывает ошибку API клиента с явным дискриминантом Kind
type Error struct {
	Err      error     // причина (ошибка транспорта или последняя попытка)
	Op       string    // "GET /departments"
	Message  string    // сообщение из тела ответа сервера
	Kind     ErrorKind // вид ошибки
	Status   int       // HTTP статус, 0 если ответа не было
	Attempts int       // количество выполненных попыток
}

// Sentinel-значения для errors.Is
var (
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrTimeout            = &Error{Kind: KindTimeout}
	ErrNetworkUnavailable = &Error{Kind: KindNetworkUnavailable}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (%d)", msg, e.Status)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает по Kind, а для sentinel с ненулевым Status, и по статусу
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

// KindOf возвращает вид первой *Error в цепочке или 0
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// StatusOf возвращает HTTP статус первой *Error в цепочке или 0
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// isTransient сообщает, стоит ли повторять попытку
func isTransient(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Kind {
	case KindTimeout, KindNetwork:
		return true
	case KindHTTP:
		return apiErr.Status >= http.StatusInternalServerError
	default:
		return false
	}
}

// statusError классифицирует non-2xx ответ
func statusError(op string, status int, message string) *Error {
	e := &Error{Op: op, Status: status, Message: message}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case status == http.StatusForbidden:
		e.Kind = KindForbidden
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	default:
		e.Kind = KindHTTP
	}
	return e
}
