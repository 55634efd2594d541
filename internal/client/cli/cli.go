// Package cli реализует команды консольного клиента BCP audit.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/bcp-audit/internal/client/auth"
	"github.com/iudanet/bcp-audit/internal/client/cache"
	"github.com/iudanet/bcp-audit/internal/client/dashboard"
	"github.com/iudanet/bcp-audit/internal/client/iocli"
	"github.com/iudanet/bcp-audit/internal/client/storage"
	"github.com/iudanet/bcp-audit/internal/models"
	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "BCP_PASSWORD"

// ErrAdminRequired операция доступна только роли ict-admin
var ErrAdminRequired = errors.New("ict-admin role required")

// Remote запросы к серверу, которые не проходят через dashboard.Service
type Remote interface {
	Health(ctx context.Context) (*pkgapi.HealthResponse, error)
	DashboardOverview(ctx context.Context) (*models.Overview, error)
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
}

// BuildInfo версия клиента, задается через ldflags
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Deps зависимости Cli
type Deps struct {
	IO        iocli.IO
	Remote    Remote
	Auth      *auth.Service
	Dashboard *dashboard.Service
	Cache     *cache.Cache
	Meta      storage.MetadataStorage
	ServerURL string
}

type Cli struct {
	io        iocli.IO
	remote    Remote
	auth      *auth.Service
	dashboard *dashboard.Service
	cache     *cache.Cache
	meta      storage.MetadataStorage
	serverURL string
}

func New(d Deps) *Cli {
	return &Cli{
		io:        d.IO,
		remote:    d.Remote,
		auth:      d.Auth,
		dashboard: d.Dashboard,
		cache:     d.Cache,
		meta:      d.Meta,
		serverURL: d.ServerURL,
	}
}

// requireAdmin отклоняет изменения для пользователя без роли ict-admin.
// Без известного профиля решение остается за сервером.
func (c *Cli) requireAdmin(action string) error {
	profile := c.auth.Session().Profile()
	if profile != nil && profile.Role != "" && !profile.IsAdmin() {
		return fmt.Errorf("failed to %s: %w", action, ErrAdminRequired)
	}
	return nil
}

// Notifier выводит уведомления dashboard.Service в консоль
type Notifier struct {
	io iocli.IO
}

var _ dashboard.Notifier = (*Notifier)(nil)

func NewNotifier(io iocli.IO) *Notifier {
	return &Notifier{io: io}
}

func (n *Notifier) Notify(_ context.Context, message string) {
	n.io.Printf("⚠️  %s\n", message)
}
