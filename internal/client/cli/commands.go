package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/bcp-audit/internal/client/iocli"
)

func newLoginCommand(a *app) *cobra.Command {
	var (
		username string
		remember bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the server",
		Long:  "Login to the server. The password is read from " + PasswordEnv + " or prompted without echo.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runLogin(cmd.Context(), username, remember)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted if empty)")
	cmd.Flags().BoolVarP(&remember, "remember", "r", true, "keep the session between runs")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runLogout(cmd.Context())
		},
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, mode and cache status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runStatus(cmd.Context())
		},
	}
}

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"kpi"},
		Short:   "Show dashboard KPIs (cached for 5 minutes)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDashboard(cmd.Context(), false)
		},
	}
}

func newRefreshCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Clear the cache and reload dashboard data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDashboard(cmd.Context(), true)
		},
	}
}

func newFormsCommand(a *app) *cobra.Command {
	var itemType, status string
	cmd := &cobra.Command{
		Use:   "forms",
		Short: "List downtime forms and labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runForms(cmd.Context(), itemType, status)
		},
	}
	cmd.Flags().StringVar(&itemType, "type", "", "filter by type: form or label")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (completed, pending, active)")
	return cmd
}

func newDepartmentsCommand(a *app) *cobra.Command {
	var unprepared bool
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"depts"},
		Short:   "List departments and their preparedness",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDepartments(cmd.Context(), unprepared)
		},
	}
	cmd.Flags().BoolVar(&unprepared, "unprepared", false, "show only unprepared departments")
	return cmd
}

func newPrepareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prepare <department-id> <true|false>",
		Short:   "Set department preparedness (ict-admin)",
		Example: "  bcp-audit prepare 3 true",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runPrepare(cmd.Context(), args[0], args[1])
		},
	}
}

func newDowntimeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downtime",
		Short: "Downtime events",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded downtime events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDowntimeList(cmd.Context())
		},
	}

	var in downtimeInput
	add := &cobra.Command{
		Use:     "add",
		Short:   "Record a downtime event (ict-admin)",
		Example: "  bcp-audit downtime add --department ICU --duration \"45 minutes\" --type \"Power Outage\"",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDowntimeAdd(cmd.Context(), in)
		},
	}
	add.Flags().StringVar(&in.Department, "department", "", "department name (prompted if empty)")
	add.Flags().StringVar(&in.Duration, "duration", "", "duration, e.g. \"2 hours\" or 90m (prompted if empty)")
	add.Flags().StringVar(&in.Type, "type", "", "downtime type, e.g. \"Network Issue\"")
	add.Flags().StringVar(&in.Date, "date", "", "date YYYY-MM-DD (default today)")
	add.Flags().StringVar(&in.Severity, "severity", "", "Low, Medium, High or Critical")
	add.Flags().StringVar(&in.Description, "description", "", "free text description")

	cmd.AddCommand(list, add)
	return cmd
}

func newTrendCommand(a *app) *cobra.Command {
	var months int
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show monthly downtime trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runTrend(cmd.Context(), months)
		},
	}
	cmd.Flags().IntVar(&months, "months", 6, "number of months")
	return cmd
}

func newOverviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the server-side dashboard overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runOverview(cmd.Context())
		},
	}
}

func newMeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runMe(cmd.Context())
		},
	}
}

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runHealth(cmd.Context())
		},
	}
}

func newCacheCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local response cache",
	}

	var prefix string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runCacheClear(cmd.Context(), prefix)
		},
	}
	clearCmd.Flags().StringVar(&prefix, "prefix", "", "remove only keys with this prefix")

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Remove expired cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runCachePurge(cmd.Context())
		},
	}

	cmd.AddCommand(clearCmd, purge)
	return cmd
}

func newVersionCommand(info BuildInfo, io iocli.IO) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print client version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(_ *cobra.Command, _ []string) {
			io.Printf("bcp-audit client\n")
			io.Printf("Version:    %s\n", orNA(info.Version))
			io.Printf("Build date: %s\n", orNA(info.Date))
			io.Printf("Commit:     %s\n", orNA(info.Commit))
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
