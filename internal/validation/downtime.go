package validation

import (
	"slices"
	"strconv"
	"strings"
	"time"

	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

// DateLayout формат даты события
const DateLayout = "2006-01-02"

// Severities допустимые уровни серьезности простоя
var Severities = []string{"Low", "Medium", "High", "Critical"}

const maxTextLen = 500

// ValidateDepartmentID проверяет идентификатор отделения
func ValidateDepartmentID(id int64) error {
	if id <= 0 {
		return fieldError("department id", "must be a positive number")
	}
	return nil
}

// ValidateDowntimeEvent проверяет запрос на регистрацию простоя
func ValidateDowntimeEvent(req pkgapi.CreateDowntimeEventRequest) error {
	if strings.TrimSpace(req.Department) == "" {
		return fieldError("department", "cannot be empty")
	}

	if strings.TrimSpace(req.Duration) == "" {
		return fieldError("duration", "cannot be empty")
	}
	if _, err := ParseDurationHours(req.Duration); err != nil {
		return err
	}

	if req.Date != "" {
		if _, err := ParseEventDate(req.Date); err != nil {
			return err
		}
	}

	if req.Severity != "" && !slices.Contains(Severities, req.Severity) {
		return fieldError("severity", "must be one of %s", strings.Join(Severities, ", "))
	}

	if len(req.Description) > maxTextLen {
		return fieldError("description", "must not exceed %d characters", maxTextLen)
	}

	return nil
}

// ParseEventDate разбирает дату события: YYYY-MM-DD или RFC3339
func ParseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fieldError("date", "%q is not YYYY-MM-DD", s)
}

// ParseDurationHours переводит длительность вида "2 hours", "45 minutes",
// "1.5 hours", "1 day" или "90m" в часы
func ParseDurationHours(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	// Формат time.ParseDuration: 90m, 1h30m
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, fieldError("duration", "must be positive")
		}
		return d.Hours(), nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fieldError("duration", "%q is not \"<number> <unit>\"", s)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || value <= 0 {
		return 0, fieldError("duration", "%q must start with a positive number", s)
	}

	switch strings.TrimSuffix(fields[1], "s") {
	case "minute", "min":
		return value / 60, nil
	case "hour", "hr", "h":
		return value, nil
	case "day":
		return value * 24, nil
	default:
		return 0, fieldError("duration", "unknown unit %q", fields[1])
	}
}
