package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

const (
	// DefaultTimeout таймаут одной попытки
	DefaultTimeout = 10 * time.Second
	// DefaultRetryAttempts общее количество попыток
	DefaultRetryAttempts = 3
	// DefaultRetryDelay базовая задержка, перед попыткой n+1 ждем delay*n
	DefaultRetryDelay = time.Second

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 512
)

// TokenStore хранит bearer credential клиента
type TokenStore interface {
	// Token возвращает текущий токен или "" если credential отсутствует
	Token(ctx context.Context) (string, error)

	// ClearToken удаляет credential (logout, 401)
	ClearToken(ctx context.Context) error
}

// Client представляет HTTP клиент с таймаутом на попытку и ограниченными повторами
type Client struct {
	httpClient    *http.Client
	tokens        TokenStore
	logger        *slog.Logger
	baseURL       string
	timeout       time.Duration
	retryDelay    time.Duration
	retryAttempts int
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут одной попытки
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetry задает количество попыток и базовую задержку между ними
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		if delay < 0 {
			delay = 0
		}
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// WithTokenStore подключает хранилище credential
func WithTokenStore(tokens TokenStore) Option {
	return func(c *Client) {
		if tokens != nil {
			c.tokens = tokens
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient подменяет http.Client (тесты, кастомный транспорт)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		timeout:       DefaultTimeout,
		retryAttempts: DefaultRetryAttempts,
		retryDelay:    DefaultRetryDelay,
		tokens:        NewMemoryTokenStore(""),
		logger:        slog.Default(),
		httpClient: &http.Client{
			// Таймаут задается контекстом каждой попытки, а не клиентом
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request описывает один логический вызов
type request struct {
	body   any
	method string
	path   string
	noAuth bool // не прикладывать bearer credential (/health, /api/auth/login)
}

// Do выполняет логический вызов endpoint с повторами и декодирует JSON ответ в result.
// Пустой method означает GET.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	return c.do(ctx, request{method: method, path: path, body: body}, result)
}

func (c *Client) do(ctx context.Context, req request, result any) error {
	if req.method == "" {
		req.method = http.MethodGet
	}
	op := req.method + " " + req.path

	var payload []byte
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request body: %w", op, err)
		}
		payload = data
	}

	attempts := 0
	backoff := retry.WithMaxRetries(uint64(c.retryAttempts-1), linearBackoff(c.retryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		err := c.attempt(ctx, op, req, payload, result)
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return err
		}
		if attempts < c.retryAttempts {
			c.logger.DebugContext(ctx, "request attempt failed, retrying",
				slog.String("op", op),
				slog.Int("attempt", attempts),
				slog.Any("error", err))
		}
		return retry.RetryableError(err)
	})
	if err == nil {
		return nil
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		// Отмена контекста вызывающего или ошибка подготовки запроса
		return fmt.Errorf("%s: %w", op, err)
	}
	apiErr.Attempts = attempts

	switch apiErr.Kind {
	case KindTimeout, KindNetwork:
		c.logger.DebugContext(ctx, "network unavailable",
			slog.String("op", op),
			slog.Int("attempts", attempts),
			slog.Any("error", apiErr))
		return &Error{
			Kind:     KindNetworkUnavailable,
			Op:       op,
			Err:      apiErr,
			Attempts: attempts,
		}
	default:
		return apiErr
	}
}

// attempt выполняет одну попытку с собственным таймаутом
func (c *Client) attempt(ctx context.Context, op string, req request, payload []byte, result any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, uuid.NewString())
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if !req.noAuth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to read stored credential", slog.Any("error", err))
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.transportError(ctx, op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := statusError(op, resp.StatusCode, errorMessage(resp, respBody))
		if apiErr.Kind == KindUnauthorized {
			if clearErr := c.tokens.ClearToken(ctx); clearErr != nil {
				c.logger.WarnContext(ctx, "failed to clear credential after 401", slog.Any("error", clearErr))
			}
		}
		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{Kind: KindDecode, Op: op, Status: resp.StatusCode, Err: err}
		}
	}

	return nil
}

// transportError классифицирует ошибку транспорта.
// Отмена контекста вызывающего возвращается как есть и не повторяется.
func (c *Client) transportError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Op: op, Err: fmt.Errorf("request timeout after %s", c.timeout)}
	}
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// errorMessage извлекает сообщение из тела ответа с ошибкой
func errorMessage(resp *http.Response, body []byte) string {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// linearBackoff возвращает задержки delay, 2*delay, 3*delay, ...
func linearBackoff(delay time.Duration) retry.Backoff {
	var n int64
	return retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return delay * time.Duration(n), false
	})
}
