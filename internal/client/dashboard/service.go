// Package dashboard собирает snapshot дашборда из кеша, сервера или демо-данных.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/bcp-audit/internal/client/api"
	"github.com/iudanet/bcp-audit/internal/demo"
	"github.com/iudanet/bcp-audit/internal/models"
	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

//go:generate moq -out api_mock.go . APIClient Cache Notifier

// Ключи кеша по ресурсам
const (
	KeyFormsAndLabels = "formsAndLabels"
	KeyDepartments    = "departments"
	KeyDowntimeEvents = "downtimeEvents"
	KeyCompliance     = "compliance"
)

const (
	// StaleAfter возраст snapshot, после которого его стоит обновить
	StaleAfter = 5 * time.Minute

	// DefaultTrendMonths период тренда по умолчанию
	DefaultTrendMonths = 6

	// FlagOfflineNoticeShown сохраненный флаг показанного офлайн-уведомления
	FlagOfflineNoticeShown = "offlineNotificationShown"

	// OfflineNotice текст офлайн-уведомления
	OfflineNotice = "Using offline demo data. Some features may be limited."
)

var (
	// ErrNotLoaded изменение до первой загрузки snapshot
	ErrNotLoaded = errors.New("dashboard data is not loaded")

	// ErrDepartmentNotFound отделения с таким id нет в snapshot
	ErrDepartmentNotFound = errors.New("department not found")
)

// APIClient удаленный источник данных (api.Client)
type APIClient interface {
	FormsAndLabels(ctx context.Context) ([]models.FormOrLabel, error)
	Departments(ctx context.Context) ([]models.Department, error)
	DowntimeEvents(ctx context.Context) ([]models.DowntimeEvent, error)
	ComplianceOverview(ctx context.Context) (*models.ComplianceSummary, error)
	UpdateDepartmentPreparedness(ctx context.Context, id int64, prepared bool) (*models.Department, error)
	CreateDowntimeEvent(ctx context.Context, req pkgapi.CreateDowntimeEventRequest) (*models.DowntimeEvent, error)
	DowntimeTrend(ctx context.Context, months int) ([]models.TrendPoint, error)
}

// Cache локальный кеш ответов (cache.Cache)
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, data any) error
	Clear(ctx context.Context, prefix string) (int, error)
}

// Notifier показывает пользователю уведомления
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Flags хранит постоянные флаги и отметку последней удачной загрузки
// (storage.MetadataStorage)
type Flags interface {
	GetFlag(ctx context.Context, name string) (bool, error)
	SetFlag(ctx context.Context, name string, value bool) error
	SaveLastOnlineLoad(ctx context.Context, timestamp int64) error
}

// Service владеет текущим snapshot дашборда.
// Все методы безопасны для конкурентного вызова.
type Service struct {
	api      APIClient
	cache    Cache
	flags    Flags
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
	onState  func(State)
	snapshot *models.Snapshot
	last     LoadResult
	mu       sync.RWMutex
	offline  bool
}

// Option настраивает Service
type Option func(*Service)

// WithOfflineMode включает принудительный офлайн-режим: только демо-данные
func WithOfflineMode(offline bool) Option {
	return func(s *Service) {
		s.offline = offline
	}
}

// WithNotifier задает получателя уведомлений
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithFlags задает хранилище постоянных флагов
func WithFlags(f Flags) Option {
	return func(s *Service) {
		s.flags = f
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock подменяет источник времени (тесты)
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStateHook вызывает fn при каждом переходе состояния загрузки
func WithStateHook(fn func(State)) Option {
	return func(s *Service) {
		s.onState = fn
	}
}

// NewService создает агрегатор
func NewService(client APIClient, cache Cache, opts ...Option) *Service {
	s := &Service{
		api:    client,
		cache:  cache,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOfflineMode переключает принудительный офлайн-режим
func (s *Service) SetOfflineMode(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

// OfflineMode сообщает, включен ли принудительный офлайн-режим
func (s *Service) OfflineMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offline
}

// Load возвращает snapshot из кеша, с сервера или из демо-данных.
// Ошибки чтения не возвращаются: при любом сбое подставляются демо-данные.
func (s *Service) Load(ctx context.Context) *models.Snapshot {
	return s.load(ctx, true)
}

// Refresh очищает кеш и загружает данные с сервера, минуя проверку кеша
func (s *Service) Refresh(ctx context.Context) *models.Snapshot {
	if n, err := s.cache.Clear(ctx, ""); err != nil {
		s.logger.WarnContext(ctx, "failed to clear cache before refresh", slog.Any("error", err))
	} else {
		s.logger.DebugContext(ctx, "cache cleared", slog.Int("entries", n))
	}
	return s.load(ctx, false)
}

func (s *Service) load(ctx context.Context, useCache bool) *models.Snapshot {
	s.transition(StateStart)

	var (
		snap   *models.Snapshot
		source Source
		cause  error
	)

	switch {
	case s.OfflineMode():
		s.logger.DebugContext(ctx, "offline mode, using demo data")
		snap, source = demo.Snapshot(s.now()), SourceDemo
	case useCache && s.cachedSnapshot(ctx, &snap):
		source = SourceCache
	default:
		s.transition(StateFetching)
		fetched, err := s.fetch(ctx)
		if err != nil {
			cause = err
			snap, source = demo.Snapshot(s.now()), SourceDemo
			s.fallback(ctx, err)
		} else {
			snap, source = fetched, SourceRemote
			s.store(ctx, fetched)
		}
	}

	s.mu.Lock()
	s.snapshot = snap
	s.last = LoadResult{Source: source, Err: cause, At: snap.LastUpdated}
	out := snap.Clone()
	s.mu.Unlock()

	s.transition(StateDone)
	return out
}

// cachedSnapshot собирает snapshot из кеша; нужны все четыре ресурса
func (s *Service) cachedSnapshot(ctx context.Context, out **models.Snapshot) bool {
	s.transition(StateCacheCheck)

	snap := &models.Snapshot{}
	if !s.cache.Get(ctx, KeyFormsAndLabels, &snap.FormsAndLabels) ||
		!s.cache.Get(ctx, KeyDepartments, &snap.Departments) ||
		!s.cache.Get(ctx, KeyDowntimeEvents, &snap.DowntimeEvents) ||
		!s.cache.Get(ctx, KeyCompliance, &snap.Compliance) {
		return false
	}

	s.logger.DebugContext(ctx, "using cached dashboard data")
	snap.LastUpdated = s.now()
	*out = snap
	return true
}

// fetch загружает четыре ресурса параллельно; первая ошибка отменяет остальные
func (s *Service) fetch(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.api.FormsAndLabels(gctx)
		snap.FormsAndLabels = items
		return err
	})
	g.Go(func() error {
		departments, err := s.api.Departments(gctx)
		snap.Departments = departments
		return err
	})
	g.Go(func() error {
		events, err := s.api.DowntimeEvents(gctx)
		snap.DowntimeEvents = events
		return err
	})
	g.Go(func() error {
		compliance, err := s.api.ComplianceOverview(gctx)
		if compliance != nil {
			snap.Compliance = *compliance
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.LastUpdated = s.now()
	return snap, nil
}

// store кеширует ресурсы успешной загрузки; ошибки кеша не критичны
func (s *Service) store(ctx context.Context, snap *models.Snapshot) {
	entries := []struct {
		data any
		key  string
	}{
		{key: KeyFormsAndLabels, data: snap.FormsAndLabels},
		{key: KeyDepartments, data: snap.Departments},
		{key: KeyDowntimeEvents, data: snap.DowntimeEvents},
		{key: KeyCompliance, data: snap.Compliance},
	}
	for _, e := range entries {
		if err := s.cache.Set(ctx, e.key, e.data); err != nil {
			s.logger.WarnContext(ctx, "failed to cache dashboard data", slog.String("key", e.key), slog.Any("error", err))
		}
	}

	if s.flags != nil {
		if err := s.flags.SaveLastOnlineLoad(ctx, snap.LastUpdated.UnixMilli()); err != nil {
			s.logger.WarnContext(ctx, "failed to save last online load", slog.Any("error", err))
		}
	}
}

// fallback логирует причину перехода на демо-данные и показывает уведомление один раз
func (s *Service) fallback(ctx context.Context, err error) {
	// Недоступность сети, ожидаемый сценарий, остальное стоит показать
	if errors.Is(err, api.ErrNetworkUnavailable) {
		s.logger.DebugContext(ctx, "server unavailable, using demo data", slog.Any("error", err))
	} else {
		s.logger.WarnContext(ctx, "failed to load dashboard data from API, using demo data", slog.Any("error", err))
	}

	if s.notifier == nil {
		return
	}

	if s.flags != nil {
		shown, err := s.flags.GetFlag(ctx, FlagOfflineNoticeShown)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to read offline notice flag", slog.Any("error", err))
		}
		if shown {
			return
		}
	}

	s.notifier.Notify(ctx, OfflineNotice)

	if s.flags != nil {
		if err := s.flags.SetFlag(ctx, FlagOfflineNoticeShown, true); err != nil {
			s.logger.WarnContext(ctx, "failed to save offline notice flag", slog.Any("error", err))
		}
	}
}

// Current возвращает копию текущего snapshot или nil, если загрузки еще не было
func (s *Service) Current() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// LastLoad описывает последнюю загрузку
func (s *Service) LastLoad() LoadResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// IsStale сообщает, пора ли обновить данные
func (s *Service) IsStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return true
	}
	return s.now().Sub(s.snapshot.LastUpdated) >= StaleAfter
}

// UpdateDepartmentPreparedness меняет готовность отделения.
// В офлайне изменяется только локальный snapshot, онлайн, сервер,
// а при ошибке snapshot не трогается.
func (s *Service) UpdateDepartmentPreparedness(ctx context.Context, id int64, prepared bool) (*models.Department, error) {
	offline, err := s.isOffline()
	if err != nil {
		return nil, err
	}

	if offline {
		s.mu.Lock()
		defer s.mu.Unlock()

		idx := s.snapshot.DepartmentIndex(id)
		if idx < 0 {
			return nil, fmt.Errorf("%w: id %d", ErrDepartmentNotFound, id)
		}
		dept := &s.snapshot.Departments[idx]
		dept.Prepared = prepared
		dept.LastUpdated = s.now()

		updated := *dept
		return &updated, nil
	}

	updated, err := s.api.UpdateDepartmentPreparedness(ctx, id, prepared)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if idx := s.snapshot.DepartmentIndex(id); idx >= 0 {
		s.snapshot.Departments[idx] = *updated
	}
	departments := slices.Clone(s.snapshot.Departments)
	s.mu.Unlock()

	if err := s.cache.Set(ctx, KeyDepartments, departments); err != nil {
		s.logger.WarnContext(ctx, "failed to cache departments", slog.Any("error", err))
	}

	return updated, nil
}

// CreateDowntimeEvent регистрирует простой.
// В офлайне событие получает локальный id (unix millis) и дату по умолчанию, сегодня.
func (s *Service) CreateDowntimeEvent(ctx context.Context, req pkgapi.CreateDowntimeEventRequest) (*models.DowntimeEvent, error) {
	offline, err := s.isOffline()
	if err != nil {
		return nil, err
	}

	if offline {
		s.mu.Lock()
		defer s.mu.Unlock()

		now := s.now()
		event := req.ToEvent()
		event.ID = s.localEventID(now)
		if event.Date == "" {
			event.Date = now.Format(time.DateOnly)
		}
		s.snapshot.DowntimeEvents = append(s.snapshot.DowntimeEvents, event)
		return &event, nil
	}

	created, err := s.api.CreateDowntimeEvent(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot.DowntimeEvents = append(s.snapshot.DowntimeEvents, *created)
	events := slices.Clone(s.snapshot.DowntimeEvents)
	s.mu.Unlock()

	if err := s.cache.Set(ctx, KeyDowntimeEvents, events); err != nil {
		s.logger.WarnContext(ctx, "failed to cache downtime events", slog.Any("error", err))
	}

	return created, nil
}

// localEventID возвращает unix millis, сдвигая значение при совпадении с существующим id.
// Вызывается под s.mu.
func (s *Service) localEventID(now time.Time) int64 {
	id := now.UnixMilli()
	for {
		taken := false
		for _, e := range s.snapshot.DowntimeEvents {
			if e.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}

// Trend возвращает помесячную статистику простоев; при сбое или в офлайне, демо-тренд
func (s *Service) Trend(ctx context.Context, months int) []models.TrendPoint {
	if months <= 0 {
		months = DefaultTrendMonths
	}

	if s.OfflineMode() {
		return demo.Trend()
	}

	points, err := s.api.DowntimeTrend(ctx, months)
	if err != nil {
		if !errors.Is(err, api.ErrNetworkUnavailable) {
			s.logger.WarnContext(ctx, "failed to load downtime trend, using demo data", slog.Any("error", err))
		}
		return demo.Trend()
	}
	return points
}

// isOffline возвращает режим текущего snapshot или ErrNotLoaded
func (s *Service) isOffline() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return false, ErrNotLoaded
	}
	return s.offline || s.snapshot.IsOffline, nil
}

func (s *Service) transition(st State) {
	if s.onState != nil {
		s.onState(st)
	}
}
