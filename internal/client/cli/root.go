package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/bcp-audit/internal/client/api"
	"github.com/iudanet/bcp-audit/internal/client/auth"
	"github.com/iudanet/bcp-audit/internal/client/cache"
	"github.com/iudanet/bcp-audit/internal/client/dashboard"
	"github.com/iudanet/bcp-audit/internal/client/iocli"
	"github.com/iudanet/bcp-audit/internal/client/storage/boltdb"
	"github.com/iudanet/bcp-audit/internal/config"
	"github.com/iudanet/bcp-audit/internal/logger"
)

// Options глобальные флаги клиента, перекрывают конфиг и окружение
type Options struct {
	ConfigPath string
	ServerURL  string
	DBPath     string
	LogLevel   string
	Offline    bool
}

// Builder собирает Cli и функцию освобождения ресурсов
type Builder func(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error)

const skipSetup = "skip-setup"

type app struct {
	cli   *Cli
	close func() error
}

// Execute разбирает аргументы и выполняет команду клиента
func Execute(ctx context.Context, info BuildInfo, args []string) error {
	root, a := newRootCommand(info, iocli.NewStdio(), Setup)
	root.SetArgs(args)

	defer func() {
		if a.close != nil {
			if err := a.close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", err)
			}
		}
	}()

	return root.ExecuteContext(ctx)
}

func newRootCommand(info BuildInfo, io iocli.IO, build Builder) (*cobra.Command, *app) {
	opts := &Options{}
	a := &app{}

	root := &cobra.Command{
		Use:           "bcp-audit",
		Short:         "BCP audit dashboard client",
		Long:          "Console client for the hospital Business Continuity Plan audit dashboard.\nFalls back to offline demo data when the server is unreachable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[skipSetup]; ok {
				return nil
			}
			c, closer, err := build(cmd.Context(), opts, io)
			if err != nil {
				return err
			}
			a.cli = c
			a.close = closer
			return nil
		},
	}
	root.SetOut(io)
	root.SetErr(os.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to YAML config (default ~/.config/bcp-audit/config.yaml)")
	flags.StringVar(&opts.ServerURL, "server", "", "server URL (default http://localhost:3001)")
	flags.StringVar(&opts.DBPath, "db", "", "path to local database (default bcp-audit-client.db)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.Offline, "offline", false, "use offline demo data without contacting the server")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newStatusCommand(a),
		newDashboardCommand(a),
		newRefreshCommand(a),
		newFormsCommand(a),
		newDepartmentsCommand(a),
		newPrepareCommand(a),
		newDowntimeCommand(a),
		newTrendCommand(a),
		newOverviewCommand(a),
		newMeCommand(a),
		newHealthCommand(a),
		newCacheCommand(a),
		newVersionCommand(info, io),
	)

	return root, a
}

// Setup собирает клиент из конфигурации: bbolt, сессия, api.Client, кеш и dashboard.Service
func Setup(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error) {
	cfg, err := config.LoadClient(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.Server.URL = opts.ServerURL
	}
	if opts.DBPath != "" {
		cfg.Storage.Path = opts.DBPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Offline {
		cfg.Offline = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := boltdb.New(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	session, err := auth.NewSession(ctx, store, log)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to restore session: %w", err)
	}

	client := api.NewClient(cfg.Server.URL,
		api.WithTimeout(cfg.Server.Timeout),
		api.WithRetry(cfg.Server.RetryAttempts, cfg.Server.RetryDelay),
		api.WithTokenStore(session),
		api.WithLogger(log),
	)

	responses := cache.New(store, cache.WithTTL(cfg.Cache.TTL), cache.WithLogger(log))

	dash := dashboard.NewService(client, responses,
		dashboard.WithOfflineMode(cfg.Offline),
		dashboard.WithNotifier(NewNotifier(io)),
		dashboard.WithFlags(store),
		dashboard.WithLogger(log),
	)

	log.Debug("client configured",
		"server", cfg.Server.URL,
		"db", store.Path(),
		"offline", cfg.Offline)

	c := New(Deps{
		IO:        io,
		Remote:    client,
		Auth:      auth.NewService(client, session, log),
		Dashboard: dash,
		Cache:     responses,
		Meta:      store,
		ServerURL: cfg.Server.URL,
	})

	return c, store.Close, nil
}
