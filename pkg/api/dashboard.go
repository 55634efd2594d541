package api

import "github.com/iudanet/bcp-audit/internal/models"

// DataResponse представляет стандартный конверт ответа {"data": ...}
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// PreparednessRequest представляет запрос PATCH /departments/{id}/preparedness
type PreparednessRequest struct {
	Prepared bool `json:"prepared"`
}

// CreateDowntimeEventRequest представляет запрос POST /downtime-events
type CreateDowntimeEventRequest struct {
	Department  string `json:"department"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration"`
	Date        string `json:"date,omitempty"` // пустая дата, сегодня
	Severity    string `json:"severity,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ToEvent конвертирует запрос в событие без идентификатора
func (r CreateDowntimeEventRequest) ToEvent() models.DowntimeEvent {
	return models.DowntimeEvent{
		Department:  r.Department,
		Type:        r.Type,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        r.Date,
		Severity:    r.Severity,
		Status:      r.Status,
	}
}

// Ответы ресурсов дашборда
type (
	FormsLabelsResponse    = DataResponse[[]models.FormOrLabel]
	DepartmentsResponse    = DataResponse[[]models.Department]
	DepartmentResponse     = DataResponse[models.Department]
	DowntimeEventsResponse = DataResponse[[]models.DowntimeEvent]
	DowntimeEventResponse  = DataResponse[models.DowntimeEvent]
	TrendResponse          = DataResponse[[]models.TrendPoint]
	ComplianceResponse     = DataResponse[models.ComplianceSummary]
	UserResponse           = DataResponse[models.UserProfile]
)
