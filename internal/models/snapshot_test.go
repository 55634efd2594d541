package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		FormsAndLabels: []FormOrLabel{
			{ID: 1, Name: "Admission Form", Type: ItemTypeForm, Status: "active"},
			{ID: 2, Name: "Lab Request Form", Type: ItemTypeForm, Status: "active"},
			{ID: 3, Name: "Specimen Downtime Label", Type: ItemTypeLabel, Status: "active"},
			{ID: 4, Name: "Blood Donor", Status: "pending"},
		},
		Departments: []Department{
			{ID: 1, Name: "ICU", Prepared: true},
			{ID: 2, Name: "Pharmacy", Prepared: true},
			{ID: 3, Name: "Finance", Prepared: false},
		},
		DowntimeEvents: []DowntimeEvent{
			{ID: 1, Department: "Laboratory", Duration: "2 hours", Date: "2024-01-15"},
		},
		Compliance:  ComplianceSummary{Score: 32, MaxScore: 40, Status: "Good"},
		LastUpdated: time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshot_Clone(t *testing.T) {
	original := testSnapshot()
	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original, clone)

	// Изменения копии не должны затрагивать оригинал
	clone.Departments[0].Prepared = false
	clone.DowntimeEvents = append(clone.DowntimeEvents, DowntimeEvent{ID: 2})
	clone.FormsAndLabels[0].Name = "changed"

	assert.True(t, original.Departments[0].Prepared)
	assert.Len(t, original.DowntimeEvents, 1)
	assert.Equal(t, "Admission Form", original.FormsAndLabels[0].Name)
}

func TestSnapshot_Clone_Nil(t *testing.T) {
	var s *Snapshot
	assert.Nil(t, s.Clone())
}

func TestSnapshot_DepartmentIndex(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, 1, s.DepartmentIndex(2))
	assert.Equal(t, -1, s.DepartmentIndex(42))
}

func TestSnapshot_KPIs(t *testing.T) {
	k := testSnapshot().KPIs()

	assert.Equal(t, 3, k.TotalForms)
	assert.Equal(t, 1, k.TotalLabels)
	assert.Equal(t, 2, k.DepartmentsPrepared)
	assert.Equal(t, 1, k.DepartmentsUnprepared)
	assert.InDelta(t, 66.7, k.PreparednessPercent, 0.001)
	assert.Equal(t, 1, k.DowntimeEvents)
	assert.InDelta(t, 80.0, k.CompliancePercent, 0.001)
}

func TestSnapshot_KPIs_Empty(t *testing.T) {
	k := (&Snapshot{}).KPIs()
	assert.Equal(t, KPIs{}, k)
}

func TestComplianceSummary_Percentage(t *testing.T) {
	tests := []struct {
		name    string
		summary ComplianceSummary
		want    float64
	}{
		{name: "regular", summary: ComplianceSummary{Score: 32, MaxScore: 40}, want: 80},
		{name: "zero max", summary: ComplianceSummary{Score: 5}, want: 0},
		{name: "full", summary: ComplianceSummary{Score: 10, MaxScore: 10}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.summary.Percentage(), 0.0001)
		})
	}
}
