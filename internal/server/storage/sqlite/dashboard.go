package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/server/storage"
)

// ListFormsAndLabels returns all forms and labels ordered by id
func (s *Storage) ListFormsAndLabels(ctx context.Context) ([]models.FormOrLabel, error) {
	query := `SELECT id, name, department, type, status, last_updated FROM forms_labels ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query forms: %w", err)
	}
	defer rows.Close()

	items := make([]models.FormOrLabel, 0)
	for rows.Next() {
		var item models.FormOrLabel
		var itemType string
		var lastUpdated sql.NullString

		if err := rows.Scan(&item.ID, &item.Name, &item.Department, &itemType, &item.Status, &lastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan form: %w", err)
		}
		item.Type = models.ItemType(itemType)
		if item.LastUpdated, err = parseNullTime(lastUpdated); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate forms: %w", err)
	}

	return items, nil
}

const departmentColumns = `id, name, prepared, forms_count, last_audit, last_updated`

// ListDepartments returns all departments ordered by id
func (s *Storage) ListDepartments(ctx context.Context) ([]models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := make([]models.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// UpdateDepartmentPreparedness sets prepared flag and lastUpdated
func (s *Storage) UpdateDepartmentPreparedness(ctx context.Context, id int64, prepared bool, at time.Time) (*models.Department, error) {
	query := `
		UPDATE departments SET prepared = ?, last_updated = ?
		WHERE id = ?
		RETURNING ` + departmentColumns

	d, err := scanDepartment(s.db.QueryRowContext(ctx, query, prepared, formatTime(at), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDepartmentNotFound
		}
		return nil, err
	}

	return d, nil
}

func scanDepartment(row rowScanner) (*models.Department, error) {
	var d models.Department
	var lastAudit sql.NullString
	var lastUpdated string

	if err := row.Scan(&d.ID, &d.Name, &d.Prepared, &d.FormsCount, &lastAudit, &lastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan department: %w", err)
	}

	var err error
	if d.LastAudit, err = parseNullTime(lastAudit); err != nil {
		return nil, err
	}
	if d.LastUpdated, err = parseTime(lastUpdated); err != nil {
		return nil, err
	}

	return &d, nil
}

// ListDowntimeEvents returns all downtime events ordered by id
func (s *Storage) ListDowntimeEvents(ctx context.Context) ([]models.DowntimeEvent, error) {
	query := `
		SELECT id, department, type, description, duration, date, severity, status
		FROM downtime_events ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query downtime events: %w", err)
	}
	defer rows.Close()

	events := make([]models.DowntimeEvent, 0)
	for rows.Next() {
		var e models.DowntimeEvent
		if err := rows.Scan(&e.ID, &e.Department, &e.Type, &e.Description, &e.Duration, &e.Date, &e.Severity, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan downtime event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate downtime events: %w", err)
	}

	return events, nil
}

// CreateDowntimeEvent appends event and sets event.ID
func (s *Storage) CreateDowntimeEvent(ctx context.Context, event *models.DowntimeEvent) error {
	query := `
		INSERT INTO downtime_events (department, type, description, duration, date, severity, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		event.Department,
		event.Type,
		event.Description,
		event.Duration,
		event.Date,
		event.Severity,
		event.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert downtime event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	event.ID = id

	return nil
}

// GetAuditSchedule returns the audit schedule
func (s *Storage) GetAuditSchedule(ctx context.Context) (*storage.AuditSchedule, error) {
	var last, next string
	err := s.db.QueryRowContext(ctx, `SELECT last_audit, next_audit FROM audit_schedule WHERE id = 1`).Scan(&last, &next)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAuditScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get audit schedule: %w", err)
	}

	schedule := &storage.AuditSchedule{}
	if schedule.LastAudit, err = parseTime(last); err != nil {
		return nil, err
	}
	if schedule.NextAudit, err = parseTime(next); err != nil {
		return nil, err
	}

	return schedule, nil
}
