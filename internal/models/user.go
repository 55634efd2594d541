package models

import "time"

// Роли пользователей дашборда
const (
	RoleICTAdmin = "ict-admin" // может менять готовность отделений и регистрировать простои
	RoleUser     = "user"      // только просмотр
)

// User представляет пользователя stub-сервера
type User struct {
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	Username     string     `json:"username"`             // уникальный username
	PasswordHash string     `json:"-"`                    // bcrypt хеш пароля
	Name         string     `json:"name"`                 // отображаемое имя
	Email        string     `json:"email"`
	Role         string     `json:"role"`       // ict-admin или user
	Department   string     `json:"department"` // отделение пользователя
	ID           int64      `json:"id"`
}

// UserProfile представляет ответ GET /users/me
type UserProfile struct {
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	Username   string     `json:"username"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	ID         int64      `json:"id"`
}

// Profile возвращает публичное представление пользователя
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		LastLogin:  u.LastLogin,
	}
}

// IsAdmin сообщает, есть ли у пользователя права ICT-администратора
func (p UserProfile) IsAdmin() bool {
	return p.Role == RoleICTAdmin
}
