package storage

import (
	"context"
	"time"

	"github.com/iudanet/bcp-audit/internal/models"
)

// AuditSchedule даты последнего и следующего аудита BCP
type AuditSchedule struct {
	LastAudit time.Time
	NextAudit time.Time
}

// DashboardStorage defines interface for dashboard resources
type DashboardStorage interface {
	// ListFormsAndLabels returns all forms and labels ordered by id
	ListFormsAndLabels(ctx context.Context) ([]models.FormOrLabel, error)

	// ListDepartments returns all departments ordered by id
	ListDepartments(ctx context.Context) ([]models.Department, error)

	// UpdateDepartmentPreparedness sets prepared flag and lastUpdated
	// Returns ErrDepartmentNotFound if department doesn't exist
	UpdateDepartmentPreparedness(ctx context.Context, id int64, prepared bool, at time.Time) (*models.Department, error)

	// ListDowntimeEvents returns all downtime events ordered by id
	ListDowntimeEvents(ctx context.Context) ([]models.DowntimeEvent, error)

	// CreateDowntimeEvent appends event and sets event.ID
	CreateDowntimeEvent(ctx context.Context, event *models.DowntimeEvent) error

	// GetAuditSchedule returns the audit schedule
	// Returns ErrAuditScheduleNotFound if none is stored
	GetAuditSchedule(ctx context.Context) (*AuditSchedule, error)
}
