package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/validation"
)

func (c *Cli) runDashboard(ctx context.Context, refresh bool) error {
	var snap *models.Snapshot
	if refresh {
		snap = c.dashboard.Refresh(ctx)
	} else {
		snap = c.dashboard.Load(ctx)
	}

	c.io.Println("=== BCP Audit Dashboard ===")
	c.printSource(snap)
	c.io.Println()

	k := snap.KPIs()
	t := newTable(c.io)
	t.row("Forms", strconv.Itoa(k.TotalForms))
	t.row("Labels", strconv.Itoa(k.TotalLabels))
	t.row("Departments prepared", fmt.Sprintf("%d / %d (%.1f%%)",
		k.DepartmentsPrepared, k.DepartmentsPrepared+k.DepartmentsUnprepared, k.PreparednessPercent))
	t.row("Departments unprepared", strconv.Itoa(k.DepartmentsUnprepared))
	t.row("Downtime events", strconv.Itoa(k.DowntimeEvents))
	t.row("Compliance", fmt.Sprintf("%g / %g (%.1f%%) %s",
		snap.Compliance.Score, snap.Compliance.MaxScore, k.CompliancePercent, snap.Compliance.Status))
	return t.flush()
}

// printSource печатает происхождение данных и баннер офлайн-режима
func (c *Cli) printSource(snap *models.Snapshot) {
	source := c.dashboard.LastLoad().Source
	if snap.IsOffline {
		c.io.Println("⚠️  Offline mode: showing demo data")
	}
	c.io.Printf("Source: %s, last updated %s\n", source, formatTime(snap.LastUpdated))
}

func (c *Cli) runForms(ctx context.Context, itemType, status string) error {
	snap := c.dashboard.Load(ctx)

	c.io.Println("=== Forms & Labels ===")
	c.printSource(snap)
	c.io.Println()

	t := newTable(c.io)
	t.header("ID", "NAME", "TYPE", "STATUS", "LAST UPDATED")
	shown := 0
	for _, item := range snap.FormsAndLabels {
		typ := item.Type
		if typ == "" {
			typ = models.ItemTypeForm
		}
		if itemType != "" && !strings.EqualFold(string(typ), itemType) {
			continue
		}
		if status != "" && !strings.EqualFold(item.Status, status) {
			continue
		}
		updated := "-"
		if item.LastUpdated != nil {
			updated = formatDate(*item.LastUpdated)
		}
		t.row(strconv.FormatInt(item.ID, 10), item.Name, string(typ), item.Status, updated)
		shown++
	}
	if err := t.flush(); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Total: %d\n", shown)
	return nil
}

func (c *Cli) runDepartments(ctx context.Context, onlyUnprepared bool) error {
	snap := c.dashboard.Load(ctx)

	c.io.Println("=== Departments ===")
	c.printSource(snap)
	c.io.Println()

	t := newTable(c.io)
	t.header("ID", "NAME", "PREPARED", "FORMS", "LAST UPDATED")
	shown := 0
	for _, d := range snap.Departments {
		if onlyUnprepared && d.Prepared {
			continue
		}
		forms := "-"
		if d.FormsCount > 0 {
			forms = strconv.Itoa(d.FormsCount)
		}
		t.row(strconv.FormatInt(d.ID, 10), d.Name, yesNo(d.Prepared), forms, formatTime(d.LastUpdated))
		shown++
	}
	if err := t.flush(); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Total: %d\n", shown)
	return nil
}

func (c *Cli) runPrepare(ctx context.Context, rawID, rawPrepared string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid department id %q", rawID)
	}
	if err := validation.ValidateDepartmentID(id); err != nil {
		return err
	}
	prepared, err := strconv.ParseBool(rawPrepared)
	if err != nil {
		return fmt.Errorf("invalid preparedness %q: use true or false", rawPrepared)
	}

	action := fmt.Sprintf("update department %d preparedness", id)
	if err := c.requireAdmin(action); err != nil {
		return err
	}

	c.dashboard.Load(ctx)
	dept, err := c.dashboard.UpdateDepartmentPreparedness(ctx, id, prepared)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	state := "unprepared"
	if dept.Prepared {
		state = "prepared"
	}
	c.io.Printf("✓ %s marked as %s\n", dept.Name, state)
	if c.offline() {
		c.io.Println("Offline: the change is kept locally and not sent to the server.")
	}
	return nil
}

func (c *Cli) runTrend(ctx context.Context, months int) error {
	if months > 24 {
		months = 24
	}
	points := c.dashboard.Trend(ctx, months)

	c.io.Println("=== Downtime Trend ===")
	if c.dashboard.OfflineMode() {
		c.io.Println("⚠️  Offline mode: showing demo data")
	}
	c.io.Println()

	t := newTable(c.io)
	t.header("MONTH", "EVENTS", "AVG DURATION (h)")
	for _, p := range points {
		t.row(p.Month, strconv.Itoa(p.Events), strconv.FormatFloat(p.AvgDuration, 'f', 1, 64))
	}
	return t.flush()
}

func (c *Cli) runOverview(ctx context.Context) error {
	ov, err := c.remote.DashboardOverview(ctx)
	if err != nil {
		return fmt.Errorf("failed to get dashboard overview: %w", err)
	}

	c.io.Println("=== Overview ===")
	c.io.Printf("Last updated: %s\n", formatTime(ov.LastUpdated))
	c.io.Println()

	t := newTable(c.io)
	t.row("Total forms", strconv.Itoa(ov.TotalForms))
	t.row("Forms completed", strconv.Itoa(ov.KPIs.FormsCompleted))
	t.row("Forms pending", strconv.Itoa(ov.KPIs.FormsPending))
	t.row("Total departments", strconv.Itoa(ov.TotalDepartments))
	t.row("Departments compliant", strconv.Itoa(ov.KPIs.DepartmentsCompliant))
	t.row("Departments non-compliant", strconv.Itoa(ov.KPIs.DepartmentsNonCompliant))
	t.row("Compliance rate", fmt.Sprintf("%.1f%%", ov.ComplianceRate))
	t.row("Compliance score", fmt.Sprintf("%d / %d (%.1f%%)",
		ov.ComplianceScore.Completed, ov.ComplianceScore.Total, ov.ComplianceScore.Percentage))
	t.row("Recent downtime events", strconv.Itoa(ov.RecentDowntimeEvents))
	return t.flush()
}

// offline сообщает, работает ли текущий snapshot на демо-данных
func (c *Cli) offline() bool {
	if c.dashboard.OfflineMode() {
		return true
	}
	snap := c.dashboard.Current()
	return snap != nil && snap.IsOffline
}
