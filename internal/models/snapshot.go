package models

import (
	"math"
	"slices"
	"time"
)

// Snapshot представляет согласованное состояние всех ресурсов дашборда.
// Владелец, dashboard.Service; снаружи выдаются только копии.
type Snapshot struct {
	LastUpdated    time.Time         `json:"lastUpdated"`
	Compliance     ComplianceSummary `json:"compliance"`
	FormsAndLabels []FormOrLabel     `json:"formsAndLabels"`
	Departments    []Department      `json:"departments"`
	DowntimeEvents []DowntimeEvent   `json:"downtimeEvents"`
	IsOffline      bool              `json:"isOffline"`
}

// Clone возвращает глубокую копию snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	clone := *s
	clone.FormsAndLabels = slices.Clone(s.FormsAndLabels)
	clone.Departments = slices.Clone(s.Departments)
	clone.DowntimeEvents = slices.Clone(s.DowntimeEvents)
	return &clone
}

// DepartmentIndex возвращает индекс отделения по id или -1
func (s *Snapshot) DepartmentIndex(id int64) int {
	return slices.IndexFunc(s.Departments, func(d Department) bool {
		return d.ID == id
	})
}

// KPIs содержит значения KPI-карточек, вычисленные из snapshot
type KPIs struct {
	TotalForms            int     // формы
	TotalLabels           int     // этикетки
	DepartmentsPrepared   int     // готовые отделения
	DepartmentsUnprepared int     // неготовые отделения
	PreparednessPercent   float64 // доля готовых отделений, %
	DowntimeEvents        int     // зарегистрированные простои
	CompliancePercent     float64 // оценка соответствия, %
}

// KPIs вычисляет значения KPI-карточек.
// Элементы без типа считаются формами, как в ответе сервера /forms-labels.
func (s *Snapshot) KPIs() KPIs {
	var k KPIs
	for _, item := range s.FormsAndLabels {
		if item.Type == ItemTypeLabel {
			k.TotalLabels++
			continue
		}
		k.TotalForms++
	}

	for _, d := range s.Departments {
		if d.Prepared {
			k.DepartmentsPrepared++
		} else {
			k.DepartmentsUnprepared++
		}
	}
	if total := len(s.Departments); total > 0 {
		k.PreparednessPercent = round1(float64(k.DepartmentsPrepared) / float64(total) * 100)
	}

	k.DowntimeEvents = len(s.DowntimeEvents)
	k.CompliancePercent = round1(s.Compliance.Percentage())
	return k
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
