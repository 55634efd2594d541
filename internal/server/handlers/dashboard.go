package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/server/storage"
	"github.com/iudanet/bcp-audit/internal/validation"
	"github.com/iudanet/bcp-audit/pkg/api"
)

const (
	// DefaultTrendMonths период тренда по умолчанию
	DefaultTrendMonths = 6
	// MaxTrendMonths максимальный период тренда
	MaxTrendMonths = 24

	// статус события, если клиент его не передал
	defaultEventStatus = "open"
)

// DashboardHandler обслуживает ресурсы дашборда BCP
type DashboardHandler struct {
	store storage.DashboardStorage
	now   func() time.Time
	responder
}

// NewDashboardHandler создает новый handler для ресурсов дашборда
func NewDashboardHandler(logger *slog.Logger, store storage.DashboardStorage) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{logger: logger},
		store:     store,
		now:       time.Now,
	}
}

// Overview обрабатывает GET /dashboard/overview
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	forms, err := h.store.ListFormsAndLabels(ctx)
	if err != nil {
		h.internalError(w, r, "failed to list forms", err)
		return
	}
	departments, err := h.store.ListDepartments(ctx)
	if err != nil {
		h.internalError(w, r, "failed to list departments", err)
		return
	}
	events, err := h.store.ListDowntimeEvents(ctx)
	if err != nil {
		h.internalError(w, r, "failed to list downtime events", err)
		return
	}

	h.sendJSON(w, buildOverview(forms, departments, events, h.now().UTC()), http.StatusOK)
}

// FormsAndLabels обрабатывает GET /forms-labels
func (h *DashboardHandler) FormsAndLabels(w http.ResponseWriter, r *http.Request) {
	forms, err := h.store.ListFormsAndLabels(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list forms", err)
		return
	}
	h.sendJSON(w, api.FormsLabelsResponse{Data: forms}, http.StatusOK)
}

// Departments обрабатывает GET /departments
func (h *DashboardHandler) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.store.ListDepartments(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list departments", err)
		return
	}
	h.sendJSON(w, api.DepartmentsResponse{Data: departments}, http.StatusOK)
}

// UpdatePreparedness обрабатывает PATCH /departments/{id}/preparedness
func (h *DashboardHandler) UpdatePreparedness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err == nil {
		err = validation.ValidateDepartmentID(id)
	}
	if err != nil {
		h.sendError(w, "department id must be a positive number", http.StatusBadRequest)
		return
	}

	// указатель отличает отсутствующее поле от false
	var req struct {
		Prepared *bool `json:"prepared"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode preparedness request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Prepared == nil {
		h.sendError(w, "prepared must be a boolean", http.StatusBadRequest)
		return
	}

	department, err := h.store.UpdateDepartmentPreparedness(ctx, id, *req.Prepared, h.now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrDepartmentNotFound) {
			h.sendError(w, "department not found", http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to update department", err)
		return
	}

	username, _ := GetUsername(ctx)
	h.logger.InfoContext(ctx, "department preparedness updated",
		slog.Int64("department_id", id),
		slog.Bool("prepared", department.Prepared),
		slog.String("username", username),
	)

	h.sendJSON(w, api.DepartmentResponse{Data: *department}, http.StatusOK)
}

// DowntimeEvents обрабатывает GET /downtime-events
func (h *DashboardHandler) DowntimeEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListDowntimeEvents(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list downtime events", err)
		return
	}
	h.sendJSON(w, api.DowntimeEventsResponse{Data: events}, http.StatusOK)
}

// CreateDowntimeEvent обрабатывает POST /downtime-events
func (h *DashboardHandler) CreateDowntimeEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateDowntimeEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode downtime event", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDowntimeEvent(req); err != nil {
		h.logger.WarnContext(ctx, "invalid downtime event", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	event := req.ToEvent()
	if event.Date == "" {
		event.Date = h.now().UTC().Format(validation.DateLayout)
	}
	if event.Status == "" {
		event.Status = defaultEventStatus
	}

	if err := h.store.CreateDowntimeEvent(ctx, &event); err != nil {
		h.internalError(w, r, "failed to create downtime event", err)
		return
	}

	h.logger.InfoContext(ctx, "downtime event created",
		slog.Int64("event_id", event.ID),
		slog.String("department", event.Department),
	)

	h.sendJSON(w, api.DowntimeEventResponse{Data: event}, http.StatusCreated)
}

// Trend обрабатывает GET /downtime-events/trend?months=N
func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	months := DefaultTrendMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.sendError(w, "months must be a positive integer", http.StatusBadRequest)
			return
		}
		months = min(n, MaxTrendMonths)
	}

	events, err := h.store.ListDowntimeEvents(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list downtime events", err)
		return
	}

	h.sendJSON(w, api.TrendResponse{Data: buildTrend(events, h.now().UTC(), months)}, http.StatusOK)
}

// Compliance обрабатывает GET /compliance/overview
func (h *DashboardHandler) Compliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	forms, err := h.store.ListFormsAndLabels(ctx)
	if err != nil {
		h.internalError(w, r, "failed to list forms", err)
		return
	}
	departments, err := h.store.ListDepartments(ctx)
	if err != nil {
		h.internalError(w, r, "failed to list departments", err)
		return
	}

	schedule, err := h.store.GetAuditSchedule(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuditScheduleNotFound) {
		h.internalError(w, r, "failed to get audit schedule", err)
		return
	}

	h.sendJSON(w, api.ComplianceResponse{
		Data: buildCompliance(forms, departments, schedule, h.now().UTC()),
	}, http.StatusOK)
}

func (h *DashboardHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}

func buildOverview(forms []models.FormOrLabel, departments []models.Department, events []models.DowntimeEvent, now time.Time) models.Overview {
	completed, pending := countForms(forms)
	prepared := countPrepared(departments)

	return models.Overview{
		TotalForms:           len(forms),
		TotalDepartments:     len(departments),
		ComplianceRate:       percent(prepared, len(departments)),
		RecentDowntimeEvents: len(events),
		LastUpdated:          now,
		KPIs: models.OverviewKPIs{
			FormsCompleted:          completed,
			FormsPending:            pending,
			DepartmentsCompliant:    prepared,
			DepartmentsNonCompliant: len(departments) - prepared,
		},
		ComplianceScore: models.ComplianceScore{
			Completed:  completed,
			Total:      len(forms),
			Percentage: percent(completed, len(forms)),
		},
	}
}

func buildCompliance(forms []models.FormOrLabel, departments []models.Department, schedule *storage.AuditSchedule, now time.Time) models.ComplianceSummary {
	completed, _ := countForms(forms)
	prepared := countPrepared(departments)
	overall := percent(prepared, len(departments))

	summary := models.ComplianceSummary{
		Score:                float64(prepared),
		MaxScore:             float64(len(departments)),
		Status:               complianceStatus(overall),
		LastUpdated:          now,
		OverallCompliance:    overall,
		DepartmentsCompliant: prepared,
		TotalDepartments:     len(departments),
		FormsCompleted:       completed,
		TotalForms:           len(forms),
	}
	if schedule != nil {
		last, next := schedule.LastAudit, schedule.NextAudit
		summary.LastAuditDate = &last
		summary.NextAuditDate = &next
	}
	return summary
}

// buildTrend группирует события по календарным месяцам за последние months месяцев,
// включая текущий. События с неразборчивой датой пропускаются.
// avgDuration в часах с точностью до сотых.
func buildTrend(events []models.DowntimeEvent, now time.Time, months int) []models.TrendPoint {
	type bucket struct {
		count int
		timed int
		hours float64
		start time.Time
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	buckets := make([]bucket, months)
	for i := range buckets {
		buckets[i].start = current.AddDate(0, i-months+1, 0)
	}

	for _, ev := range events {
		date, err := validation.ParseEventDate(ev.Date)
		if err != nil {
			continue
		}
		date = date.UTC()
		month := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)

		for i := range buckets {
			if !buckets[i].start.Equal(month) {
				continue
			}
			buckets[i].count++
			if hours, err := validation.ParseDurationHours(ev.Duration); err == nil {
				buckets[i].hours += hours
				buckets[i].timed++
			}
			break
		}
	}

	points := make([]models.TrendPoint, 0, months)
	for _, b := range buckets {
		var avg float64
		if b.timed > 0 {
			avg = round2(b.hours / float64(b.timed))
		}
		points = append(points, models.TrendPoint{
			Month:       b.start.Month().String(),
			Events:      b.count,
			Count:       b.count,
			AvgDuration: avg,
		})
	}
	return points
}

func countForms(forms []models.FormOrLabel) (completed, pending int) {
	for _, f := range forms {
		switch f.Status {
		case "completed":
			completed++
		case "pending":
			pending++
		}
	}
	return completed, pending
}

func countPrepared(departments []models.Department) int {
	n := 0
	for _, d := range departments {
		if d.Prepared {
			n++
		}
	}
	return n
}

// complianceStatus Good от 80%, Fair от 60%, иначе Poor
func complianceStatus(pct float64) string {
	switch {
	case pct >= 80:
		return "Good"
	case pct >= 60:
		return "Fair"
	default:
		return "Poor"
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
