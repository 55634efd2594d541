package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/pkg/api"
)

var testNow = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

func setupDashboardHandler(t *testing.T) *DashboardHandler {
	t.Helper()
	h := NewDashboardHandler(setupTestLogger(), setupTestStorage(t))
	h.now = func() time.Time { return testNow }
	return h
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestDashboardHandler_Overview(t *testing.T) {
	h := setupDashboardHandler(t)

	w := httptest.NewRecorder()
	h.Overview(w, httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil))

	require.Equal(t, http.StatusOK, w.Code)
	overview := decodeBody[models.Overview](t, w)

	assert.Equal(t, 31, overview.TotalForms)
	assert.Equal(t, 28, overview.TotalDepartments)
	assert.Equal(t, 15, overview.RecentDowntimeEvents)
	assert.Equal(t, 28, overview.KPIs.FormsCompleted)
	assert.Equal(t, 3, overview.KPIs.FormsPending)
	assert.Equal(t, 23, overview.KPIs.DepartmentsCompliant)
	assert.Equal(t, 5, overview.KPIs.DepartmentsNonCompliant)
	assert.Equal(t, 82.1, overview.ComplianceRate)
	assert.Equal(t, 90.3, overview.ComplianceScore.Percentage)
	assert.True(t, testNow.Equal(overview.LastUpdated))
}

func TestDashboardHandler_Lists(t *testing.T) {
	h := setupDashboardHandler(t)

	t.Run("forms and labels", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.FormsAndLabels(w, httptest.NewRequest(http.MethodGet, "/forms-labels", nil))
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[api.FormsLabelsResponse](t, w)
		assert.Len(t, resp.Data, 31)
	})

	t.Run("departments", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Departments(w, httptest.NewRequest(http.MethodGet, "/departments", nil))
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[api.DepartmentsResponse](t, w)
		assert.Len(t, resp.Data, 28)
	})

	t.Run("downtime events", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.DowntimeEvents(w, httptest.NewRequest(http.MethodGet, "/downtime-events", nil))
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[api.DowntimeEventsResponse](t, w)
		require.Len(t, resp.Data, 15)
		assert.Equal(t, "ICU", resp.Data[1].Department)
	})
}

func patchPreparedness(h *DashboardHandler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/departments/"+id+"/preparedness", bytes.NewBufferString(body))
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.UpdatePreparedness(w, req)
	return w
}

func TestDashboardHandler_UpdatePreparedness(t *testing.T) {
	h := setupDashboardHandler(t)

	w := patchPreparedness(h, "3", `{"prepared":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[api.DepartmentResponse](t, w)
	assert.Equal(t, int64(3), resp.Data.ID)
	assert.True(t, resp.Data.Prepared)
	assert.True(t, testNow.Equal(resp.Data.LastUpdated))

	// остальные отделения не меняются
	list := httptest.NewRecorder()
	h.Departments(list, httptest.NewRequest(http.MethodGet, "/departments", nil))
	departments := decodeBody[api.DepartmentsResponse](t, list).Data
	for _, d := range departments {
		if d.ID == 3 {
			assert.True(t, d.Prepared)
			continue
		}
		assert.False(t, testNow.Equal(d.LastUpdated), "department %d touched", d.ID)
	}
}

func TestDashboardHandler_UpdatePreparedness_Errors(t *testing.T) {
	h := setupDashboardHandler(t)

	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
	}{
		{"unknown department", "999", `{"prepared":true}`, http.StatusNotFound},
		{"non numeric id", "abc", `{"prepared":true}`, http.StatusBadRequest},
		{"zero id", "0", `{"prepared":true}`, http.StatusBadRequest},
		{"missing prepared", "3", `{}`, http.StatusBadRequest},
		{"prepared is not bool", "3", `{"prepared":"yes"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patchPreparedness(h, tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeBody[api.ErrorResponse](t, w)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestDashboardHandler_CreateDowntimeEvent(t *testing.T) {
	h := setupDashboardHandler(t)

	w := httptest.NewRecorder()
	h.CreateDowntimeEvent(w, postJSON(t, "/downtime-events", api.CreateDowntimeEventRequest{
		Department: "Pharmacy",
		Type:       "Network Issue",
		Duration:   "30 minutes",
		Severity:   "Medium",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[api.DowntimeEventResponse](t, w).Data
	assert.Equal(t, int64(16), created.ID)
	assert.Equal(t, "2024-02-10", created.Date)
	assert.Equal(t, "open", created.Status)

	list := httptest.NewRecorder()
	h.DowntimeEvents(list, httptest.NewRequest(http.MethodGet, "/downtime-events", nil))
	events := decodeBody[api.DowntimeEventsResponse](t, list).Data
	require.Len(t, events, 16)
	assert.Equal(t, "Pharmacy", events[15].Department)
}

func TestDashboardHandler_CreateDowntimeEvent_Invalid(t *testing.T) {
	h := setupDashboardHandler(t)

	tests := []struct {
		name string
		req  api.CreateDowntimeEventRequest
	}{
		{"missing department", api.CreateDowntimeEventRequest{Duration: "1 hour"}},
		{"missing duration", api.CreateDowntimeEventRequest{Department: "ICU"}},
		{"bad duration", api.CreateDowntimeEventRequest{Department: "ICU", Duration: "forever"}},
		{"bad date", api.CreateDowntimeEventRequest{Department: "ICU", Duration: "1 hour", Date: "15/01/2024"}},
		{"bad severity", api.CreateDowntimeEventRequest{Department: "ICU", Duration: "1 hour", Severity: "Extreme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.CreateDowntimeEvent(w, postJSON(t, "/downtime-events", tt.req))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDashboardHandler_Trend(t *testing.T) {
	h := setupDashboardHandler(t)

	w := httptest.NewRecorder()
	h.Trend(w, httptest.NewRequest(http.MethodGet, "/downtime-events/trend", nil))
	require.Equal(t, http.StatusOK, w.Code)

	points := decodeBody[api.TrendResponse](t, w).Data
	require.Len(t, points, DefaultTrendMonths)
	assert.Equal(t, "September", points[0].Month)
	assert.Equal(t, "February", points[5].Month)

	january := points[4]
	assert.Equal(t, "January", january.Month)
	assert.Equal(t, 3, january.Events)
	assert.Equal(t, 3, january.Count)
	// (2 + 0.75 + 1.5) / 3
	assert.Equal(t, 1.42, january.AvgDuration)

	assert.Zero(t, points[5].Events)
}

func TestDashboardHandler_Trend_SeededHistory(t *testing.T) {
	h := setupDashboardHandler(t)
	h.now = time.Now

	w := httptest.NewRecorder()
	h.Trend(w, httptest.NewRequest(http.MethodGet, "/downtime-events/trend", nil))
	require.Equal(t, http.StatusOK, w.Code)

	points := decodeBody[api.TrendResponse](t, w).Data
	require.Len(t, points, DefaultTrendMonths)

	wantEvents := []int{2, 1, 3, 2, 1, 3}
	wantAvg := []float64{1.5, 0.75, 2, 1.25, 0.5, 1.33}
	current := time.Now().UTC().Month()
	for i, p := range points {
		assert.Equal(t, wantEvents[i], p.Events, p.Month)
		assert.Equal(t, wantAvg[i], p.AvgDuration, p.Month)
	}
	assert.Equal(t, current.String(), points[5].Month)
}

func TestDashboardHandler_Trend_Months(t *testing.T) {
	h := setupDashboardHandler(t)

	tests := []struct {
		query      string
		wantStatus int
		wantLen    int
	}{
		{"?months=3", http.StatusOK, 3},
		{"?months=100", http.StatusOK, MaxTrendMonths},
		{"?months=0", http.StatusBadRequest, 0},
		{"?months=six", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Trend(w, httptest.NewRequest(http.MethodGet, "/downtime-events/trend"+tt.query, nil))
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, decodeBody[api.TrendResponse](t, w).Data, tt.wantLen)
			}
		})
	}
}

func TestDashboardHandler_Compliance(t *testing.T) {
	h := setupDashboardHandler(t)

	w := httptest.NewRecorder()
	h.Compliance(w, httptest.NewRequest(http.MethodGet, "/compliance/overview", nil))
	require.Equal(t, http.StatusOK, w.Code)

	summary := decodeBody[api.ComplianceResponse](t, w).Data
	assert.Equal(t, float64(23), summary.Score)
	assert.Equal(t, float64(28), summary.MaxScore)
	assert.Equal(t, 82.1, summary.OverallCompliance)
	assert.Equal(t, "Good", summary.Status)
	assert.Equal(t, 28, summary.FormsCompleted)
	assert.Equal(t, 31, summary.TotalForms)
	require.NotNil(t, summary.LastAuditDate)
	require.NotNil(t, summary.NextAuditDate)
	assert.Equal(t, "2024-01-15", summary.LastAuditDate.Format("2006-01-02"))
	assert.Equal(t, "2024-02-15", summary.NextAuditDate.Format("2006-01-02"))
}

func TestComplianceStatus(t *testing.T) {
	assert.Equal(t, "Good", complianceStatus(80))
	assert.Equal(t, "Fair", complianceStatus(79.9))
	assert.Equal(t, "Fair", complianceStatus(60))
	assert.Equal(t, "Poor", complianceStatus(59.9))
	assert.Equal(t, float64(0), percent(1, 0))
}
