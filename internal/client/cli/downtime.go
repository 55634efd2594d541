package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/bcp-audit/internal/validation"
	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

type downtimeInput struct {
	Department  string
	Duration    string
	Type        string
	Date        string
	Severity    string
	Description string
}

func (c *Cli) runDowntimeList(ctx context.Context) error {
	snap := c.dashboard.Load(ctx)

	c.io.Println("=== Downtime Events ===")
	c.printSource(snap)
	c.io.Println()

	if len(snap.DowntimeEvents) == 0 {
		c.io.Println("No downtime events recorded.")
		return nil
	}

	t := newTable(c.io)
	t.header("ID", "DATE", "DEPARTMENT", "TYPE", "DURATION", "SEVERITY", "STATUS")
	for _, e := range snap.DowntimeEvents {
		t.row(strconv.FormatInt(e.ID, 10), e.Date, e.Department, dash(e.Type), e.Duration, dash(e.Severity), dash(e.Status))
	}
	if err := t.flush(); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Total: %d\n", len(snap.DowntimeEvents))
	return nil
}

func (c *Cli) runDowntimeAdd(ctx context.Context, in downtimeInput) error {
	var err error
	if in.Department == "" {
		if in.Department, err = c.io.ReadInput("Department: "); err != nil {
			return fmt.Errorf("failed to read department: %w", err)
		}
	}
	if in.Duration == "" {
		if in.Duration, err = c.io.ReadInput("Duration (e.g. 2 hours): "); err != nil {
			return fmt.Errorf("failed to read duration: %w", err)
		}
	}

	req := pkgapi.CreateDowntimeEventRequest{
		Department:  in.Department,
		Duration:    in.Duration,
		Type:        in.Type,
		Date:        in.Date,
		Severity:    in.Severity,
		Description: in.Description,
	}
	if err := validation.ValidateDowntimeEvent(req); err != nil {
		return err
	}

	if err := c.requireAdmin("record downtime event"); err != nil {
		return err
	}

	c.dashboard.Load(ctx)
	event, err := c.dashboard.CreateDowntimeEvent(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to record downtime event: %w", err)
	}

	c.io.Println("✓ Downtime event recorded")
	c.io.Printf("ID: %d\n", event.ID)
	c.io.Printf("Department: %s\n", event.Department)
	c.io.Printf("Date: %s\n", event.Date)
	c.io.Printf("Duration: %s\n", event.Duration)
	if c.offline() {
		c.io.Println("Offline: the event is kept locally and not sent to the server.")
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
