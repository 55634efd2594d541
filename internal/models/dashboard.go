package models

import "time"

// ItemType различает формы и этикетки downtime-пакета
type ItemType string

const (
	ItemTypeForm  ItemType = "Form"  // бумажная форма на время простоя
	ItemTypeLabel ItemType = "Label" // этикетка (specimen, patient, ...)
)

// FormOrLabel представляет форму или этикетку из BCP-пакета отделения.
// После загрузки в рамках сессии не изменяется.
type FormOrLabel struct {
	LastUpdated *time.Time `json:"lastUpdated,omitempty"` // время последнего изменения на сервере
	Name        string     `json:"name"`                  // название формы
	Department  string     `json:"department,omitempty"`  // отделение-владелец
	Type        ItemType   `json:"type,omitempty"`        // Form или Label
	Status      string     `json:"status"`                // active, completed, pending
	ID          int64      `json:"id"`
}

// Department представляет отделение больницы и его готовность к простою
type Department struct {
	LastUpdated time.Time  `json:"lastUpdated"`          // время последнего изменения готовности
	LastAudit   *time.Time `json:"lastAudit,omitempty"`  // время последнего аудита
	Name        string     `json:"name"`                 // название отделения
	ID          int64      `json:"id"`                   // идентификатор отделения
	FormsCount  int        `json:"formsCount,omitempty"` // количество форм в пакете отделения
	Prepared    bool       `json:"prepared"`             // отделение готово к работе в режиме простоя
}

// DowntimeEvent представляет зарегистрированный простой системы.
// События только добавляются, изменение и удаление не поддерживаются.
type DowntimeEvent struct {
	Department  string `json:"department"`            // отделение, где был простой
	Type        string `json:"type,omitempty"`        // тип простоя (Power Outage, Network Issue, ...)
	Description string `json:"description,omitempty"` // свободное описание
	Duration    string `json:"duration"`              // длительность в человекочитаемом виде ("2 hours")
	Date        string `json:"date"`                  // дата (YYYY-MM-DD) или RFC3339
	Severity    string `json:"severity,omitempty"`    // Low, Medium, High
	Status      string `json:"status,omitempty"`      // open, resolved
	ID          int64  `json:"id"`
}

// ComplianceSummary представляет сводную оценку соответствия BCP
type ComplianceSummary struct {
	LastUpdated          time.Time  `json:"lastUpdated"`
	LastAuditDate        *time.Time `json:"lastAuditDate,omitempty"`
	NextAuditDate        *time.Time `json:"nextAuditDate,omitempty"`
	Status               string     `json:"status"`                         // Good, Fair, Poor
	Score                float64    `json:"score"`                          // набранные баллы
	MaxScore             float64    `json:"maxScore"`                       // максимально возможные баллы
	OverallCompliance    float64    `json:"overallCompliance,omitempty"`    // процент соответствия
	DepartmentsCompliant int        `json:"departmentsCompliant,omitempty"` // готовых отделений
	TotalDepartments     int        `json:"totalDepartments,omitempty"`
	FormsCompleted       int        `json:"formsCompleted,omitempty"`
	TotalForms           int        `json:"totalForms,omitempty"`
}

// Percentage возвращает оценку в процентах от максимальной
func (c ComplianceSummary) Percentage() float64 {
	if c.MaxScore <= 0 {
		return 0
	}
	return c.Score / c.MaxScore * 100
}

// TrendPoint представляет агрегат простоев за календарный месяц
type TrendPoint struct {
	Month       string  `json:"month"`       // название месяца
	Events      int     `json:"events"`      // количество событий
	Count       int     `json:"count"`       // то же, что events (совместимость с графиком)
	AvgDuration float64 `json:"avgDuration"` // средняя длительность в часах
}

// Overview представляет ответ GET /dashboard/overview
type Overview struct {
	LastUpdated          time.Time       `json:"lastUpdated"`
	KPIs                 OverviewKPIs    `json:"kpis"`
	ComplianceScore      ComplianceScore `json:"complianceScore"`
	TotalForms           int             `json:"totalForms"`
	TotalDepartments     int             `json:"totalDepartments"`
	ComplianceRate       float64         `json:"complianceRate"`
	RecentDowntimeEvents int             `json:"recentDowntimeEvents"`
}

// OverviewKPIs содержит счетчики для KPI-карточек
type OverviewKPIs struct {
	FormsCompleted          int `json:"formsCompleted"`
	FormsPending            int `json:"formsPending"`
	DepartmentsCompliant    int `json:"departmentsCompliant"`
	DepartmentsNonCompliant int `json:"departmentsNonCompliant"`
}

// ComplianceScore содержит долю заполненных форм
type ComplianceScore struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
