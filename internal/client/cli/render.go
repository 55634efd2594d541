package cli

import (
	"strings"
	"text/tabwriter"
	"time"

	"github.com/iudanet/bcp-audit/internal/client/iocli"
)

type table struct {
	w *tabwriter.Writer
}

func newTable(out iocli.IO) *table {
	return &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
}

func (t *table) header(cols ...string) {
	t.row(cols...)
}

func (t *table) row(cols ...string) {
	_, _ = t.w.Write([]byte(strings.Join(cols, "\t") + "\n"))
}

func (t *table) flush() error {
	return t.w.Flush()
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}

func formatDate(ts time.Time) string {
	return ts.Local().Format("2006-01-02")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
