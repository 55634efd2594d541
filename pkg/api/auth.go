package api

import "github.com/iudanet/bcp-audit/internal/models"

// LoginRequest представляет запрос POST /api/auth/login
type LoginRequest struct {
	Username   string `json:"username"`             // username пользователя
	Password   string `json:"password"`             // пароль в открытом виде (stub без TLS-требований)
	RememberMe bool   `json:"rememberMe,omitempty"` // сохранить токен между запусками клиента
}

// LoginResponse представляет ответ на успешный вход
type LoginResponse struct {
	Message   string             `json:"message"`   // сообщение об успешном входе
	Token     string             `json:"token"`     // JWT access token
	User      models.UserProfile `json:"user"`      // профиль пользователя
	ExpiresIn int64              `json:"expiresIn"` // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // краткое описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Port      string `json:"port"`
}
