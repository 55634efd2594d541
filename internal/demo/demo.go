// Package demo содержит встроенный набор данных, который подставляется,
// когда сервер недоступен или включен офлайн-режим.
package demo

import (
	"time"

	"github.com/iudanet/bcp-audit/internal/models"
)

// formDepartments формы в порядке id, id = индекс + 1
var formDepartments = []struct{ name, department string }{
	{"Admission Form", "Emergency Department"},
	{"Patient Transfer Form", "ICU"},
	{"Discharge Summary Form", "General Ward"},
	{"Medication Order Form", "Pharmacy"},
	{"Lab Request Form", "Laboratory"},
	{"Radiology Request Form", "Radiology"},
	{"Surgery Consent Form", "Surgery"},
	{"Anesthesia Form", "Anesthesiology"},
	{"Nursing Assessment Form", "Nursing"},
	{"Vital Signs Form", "General Ward"},
	{"Medication Administration Form", "Pharmacy"},
	{"Blood Transfusion Form", "Laboratory"},
	{"Infection Control Form", "Infection Control"},
	{"Quality Assurance Form", "Quality Management"},
	{"Incident Report Form", "Risk Management"},
	{"Patient Complaint Form", "Patient Relations"},
	{"Staff Training Form", "Human Resources"},
	{"Equipment Maintenance Form", "Biomedical Engineering"},
	{"Supply Request Form", "Materials Management"},
	{"Food Service Form", "Nutrition Services"},
	{"Housekeeping Form", "Environmental Services"},
	{"Security Incident Form", "Security"},
	{"IT Support Form", "Information Technology"},
	{"Finance Form", "Finance"},
	{"Legal Document Form", "Legal Services"},
	{"Research Protocol Form", "Research"},
	{"Education Form", "Education"},
	{"Volunteer Form", "Volunteer Services"},
}

var labelDepartments = []struct{ name, department string }{
	{"Specimen Downtime Label", "Laboratory"},
	{"Medication Downtime Label", "Pharmacy"},
	{"Patient Downtime Label", "General Ward"},
	{"Equipment Downtime Label", "Biomedical Engineering"},
}

// departmentNames в порядке id; первые preparedDepartments готовы
var departmentNames = []string{
	"Emergency Department", "Laboratory", "ICU", "Pharmacy", "General Ward",
	"Radiology", "Surgery", "Anesthesiology", "Nursing", "Infection Control",
	"Quality Management", "Risk Management", "Patient Relations", "Human Resources",
	"Biomedical Engineering", "Materials Management", "Nutrition Services",
	"Environmental Services", "Security", "Information Technology",
	"Finance", "Legal Services", "Research", "Education", "Volunteer Services",
	"Cardiology", "Neurology", "Oncology", "Pediatrics",
}

const preparedDepartments = 20

// departmentUpdateTimes повторяются по кругу, начиная с 2024-02-15 и уходя на день назад
var departmentUpdateTimes = []struct{ hour, minute int }{
	{10, 30}, {15, 45}, {9, 20}, {14, 15}, {11, 30}, {16, 45}, {8, 20}, {13, 15},
}

// TrendMonths подписи демо-тренда
var TrendMonths = []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}

// FormsAndLabels возвращает 28 форм и 4 этикетки
func FormsAndLabels() []models.FormOrLabel {
	items := make([]models.FormOrLabel, 0, len(formDepartments)+len(labelDepartments))
	for i, f := range formDepartments {
		items = append(items, models.FormOrLabel{
			ID:         int64(i + 1),
			Name:       f.name,
			Department: f.department,
			Type:       models.ItemTypeForm,
			Status:     "active",
		})
	}
	for i, l := range labelDepartments {
		items = append(items, models.FormOrLabel{
			ID:         int64(len(formDepartments) + i + 1),
			Name:       l.name,
			Department: l.department,
			Type:       models.ItemTypeLabel,
			Status:     "active",
		})
	}
	return items
}

// Departments возвращает 29 отделений, из них 20 готовых
func Departments() []models.Department {
	start := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	departments := make([]models.Department, 0, len(departmentNames))
	for i, name := range departmentNames {
		tm := departmentUpdateTimes[i%len(departmentUpdateTimes)]
		day := start.AddDate(0, 0, -i)
		departments = append(departments, models.Department{
			ID:          int64(i + 1),
			Name:        name,
			Prepared:    i < preparedDepartments,
			LastUpdated: day.Add(time.Duration(tm.hour)*time.Hour + time.Duration(tm.minute)*time.Minute),
		})
	}
	return departments
}

// DowntimeEvents возвращает два демо-события
func DowntimeEvents() []models.DowntimeEvent {
	return []models.DowntimeEvent{
		{ID: 1, Date: "2024-01-15", Department: "Laboratory", Duration: "2 hours", Severity: "Medium", Description: "Scheduled maintenance"},
		{ID: 2, Date: "2024-02-03", Department: "Pharmacy", Duration: "1.5 hours", Severity: "Low", Description: "System upgrade"},
	}
}

// Compliance возвращает демо-оценку соответствия 32/40
func Compliance() models.ComplianceSummary {
	return models.ComplianceSummary{
		Score:       32,
		MaxScore:    40,
		Status:      "Good",
		LastUpdated: time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC),
	}
}

// Snapshot собирает офлайн snapshot. Каждый вызов возвращает новые срезы,
// поэтому локальные изменения не затрагивают последующие вызовы.
func Snapshot(now time.Time) *models.Snapshot {
	return &models.Snapshot{
		FormsAndLabels: FormsAndLabels(),
		Departments:    Departments(),
		DowntimeEvents: DowntimeEvents(),
		Compliance:     Compliance(),
		IsOffline:      true,
		LastUpdated:    now,
	}
}

// Trend возвращает демо-тренд: последние два месяца по одному событию
func Trend() []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(TrendMonths))
	for i, month := range TrendMonths {
		count := 0
		if i >= len(TrendMonths)-2 {
			count = 1
		}
		points = append(points, models.TrendPoint{Month: month, Events: count, Count: count})
	}
	return points
}

// Profile возвращает профиль ICT-администратора для офлайн-режима
func Profile(now time.Time) models.UserProfile {
	return models.UserProfile{
		ID:         1,
		Username:   "admin",
		Name:       "ICT Administrator",
		Email:      "admin@hospital.com",
		Role:       models.RoleICTAdmin,
		Department: "Information Technology",
		LastLogin:  &now,
	}
}
