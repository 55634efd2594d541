package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/iudanet/bcp-audit/internal/models"
	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

// Login выполняет аутентификацию пользователя.
// Токен не сохраняется, это задача auth.Session.
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error) {
	var resp pkgapi.LoginResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/login", body: req, noAuth: true}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*pkgapi.HealthResponse, error) {
	var resp pkgapi.HealthResponse
	if err := c.do(ctx, request{path: "/health", noAuth: true}, &resp); err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	return &resp, nil
}

// DashboardOverview получает агрегированные KPI, посчитанные сервером
func (c *Client) DashboardOverview(ctx context.Context) (*models.Overview, error) {
	var resp models.Overview
	if err := c.Do(ctx, http.MethodGet, "/dashboard/overview", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard overview: %w", err)
	}
	return &resp, nil
}

// FormsAndLabels получает список форм и этикеток
func (c *Client) FormsAndLabels(ctx context.Context) ([]models.FormOrLabel, error) {
	var resp pkgapi.FormsLabelsResponse
	if err := c.Do(ctx, http.MethodGet, "/forms-labels", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch forms and labels: %w", err)
	}
	return nonNil(resp.Data), nil
}

// Departments получает список отделений
func (c *Client) Departments(ctx context.Context) ([]models.Department, error) {
	var resp pkgapi.DepartmentsResponse
	if err := c.Do(ctx, http.MethodGet, "/departments", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch departments: %w", err)
	}
	return nonNil(resp.Data), nil
}

// UpdateDepartmentPreparedness меняет флаг готовности отделения
func (c *Client) UpdateDepartmentPreparedness(ctx context.Context, id int64, prepared bool) (*models.Department, error) {
	var resp pkgapi.DepartmentResponse
	path := fmt.Sprintf("/departments/%d/preparedness", id)
	if err := c.Do(ctx, http.MethodPatch, path, pkgapi.PreparednessRequest{Prepared: prepared}, &resp); err != nil {
		return nil, fmt.Errorf("failed to update department preparedness: %w", err)
	}
	return &resp.Data, nil
}

// DowntimeEvents получает список зарегистрированных простоев
func (c *Client) DowntimeEvents(ctx context.Context) ([]models.DowntimeEvent, error) {
	var resp pkgapi.DowntimeEventsResponse
	if err := c.Do(ctx, http.MethodGet, "/downtime-events", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch downtime events: %w", err)
	}
	return nonNil(resp.Data), nil
}

// CreateDowntimeEvent регистрирует новый простой
func (c *Client) CreateDowntimeEvent(ctx context.Context, req pkgapi.CreateDowntimeEventRequest) (*models.DowntimeEvent, error) {
	var resp pkgapi.DowntimeEventResponse
	if err := c.Do(ctx, http.MethodPost, "/downtime-events", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create downtime event: %w", err)
	}
	return &resp.Data, nil
}

// DowntimeTrend получает помесячную статистику простоев за months месяцев
func (c *Client) DowntimeTrend(ctx context.Context, months int) ([]models.TrendPoint, error) {
	var resp pkgapi.TrendResponse
	path := "/downtime-events/trend?months=" + strconv.Itoa(months)
	if err := c.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch downtime trend: %w", err)
	}
	return nonNil(resp.Data), nil
}

// ComplianceOverview получает сводку соответствия
func (c *Client) ComplianceOverview(ctx context.Context) (*models.ComplianceSummary, error) {
	var resp pkgapi.ComplianceResponse
	if err := c.Do(ctx, http.MethodGet, "/compliance/overview", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch compliance data: %w", err)
	}
	return &resp.Data, nil
}

// CurrentUser получает профиль текущего пользователя
func (c *Client) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	var resp pkgapi.UserResponse
	if err := c.Do(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &resp.Data, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
