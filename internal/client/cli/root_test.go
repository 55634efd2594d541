package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bcp-audit/internal/client/dashboard"
	"github.com/iudanet/bcp-audit/internal/client/iocli"
)

func TestRootCommand_RunsSubcommand(t *testing.T) {
	f := newFixture(t, "")
	var gotOpts *Options
	build := func(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error) {
		gotOpts = opts
		return f.cli, func() error { return nil }, nil
	}

	root, a := newRootCommand(BuildInfo{}, iocli.NewStdioWith(strings.NewReader(""), f.out), build)
	root.SetArgs([]string{"--server", "http://10.0.0.1:3001", "departments", "--unprepared"})

	require.NoError(t, root.ExecuteContext(context.Background()))

	require.NotNil(t, gotOpts)
	assert.Equal(t, "http://10.0.0.1:3001", gotOpts.ServerURL)
	assert.False(t, gotOpts.Offline)
	assert.Same(t, f.cli, a.cli)
	assert.NotNil(t, a.close)
	assert.Contains(t, f.out.String(), "=== Departments ===")
}

func TestRootCommand_OfflineFlag(t *testing.T) {
	f := newFixture(t, "", dashboard.WithOfflineMode(true))
	var gotOpts *Options
	build := func(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error) {
		gotOpts = opts
		return f.cli, nil, nil
	}

	root, _ := newRootCommand(BuildInfo{}, iocli.NewStdioWith(strings.NewReader(""), f.out), build)
	root.SetArgs([]string{"--offline", "downtime", "list"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.True(t, gotOpts.Offline)
	assert.Contains(t, f.out.String(), "Offline mode")
	assert.Empty(t, f.api.DowntimeEventsCalls())
}

func TestRootCommand_VersionSkipsSetup(t *testing.T) {
	var out bytes.Buffer
	build := func(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error) {
		t.Fatal("version must not build the client")
		return nil, nil, nil
	}

	root, _ := newRootCommand(BuildInfo{Version: "1.2.0", Commit: "abc123"}, iocli.NewStdioWith(strings.NewReader(""), &out), build)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Version:    1.2.0")
	assert.Contains(t, out.String(), "Build date: N/A")
	assert.Contains(t, out.String(), "Commit:     abc123")
}

func TestRootCommand_SetupError(t *testing.T) {
	build := func(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error) {
		return nil, nil, errors.New("failed to open storage: timeout")
	}

	root, _ := newRootCommand(BuildInfo{}, iocli.NewStdioWith(strings.NewReader(""), &bytes.Buffer{}), build)
	root.SetArgs([]string{"status"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open storage")
}

func TestRootCommand_ArgsValidation(t *testing.T) {
	f := newFixture(t, "")
	build := func(ctx context.Context, opts *Options, io iocli.IO) (*Cli, func() error, error) {
		return f.cli, nil, nil
	}

	root, _ := newRootCommand(BuildInfo{}, iocli.NewStdioWith(strings.NewReader(""), f.out), build)
	root.SetArgs([]string{"prepare", "1"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSetup_OfflineWithTempDB(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BCP_SERVER_URL", "")
	t.Setenv("BCP_OFFLINE", "")

	var out bytes.Buffer
	opts := &Options{
		DBPath:   t.TempDir() + "/client.db",
		Offline:  true,
		LogLevel: "error",
	}

	c, closer, err := Setup(context.Background(), opts, iocli.NewStdioWith(strings.NewReader(""), &out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	assert.True(t, c.dashboard.OfflineMode())
	assert.Equal(t, "http://localhost:3001", c.serverURL)

	require.NoError(t, c.runDashboard(context.Background(), false))
	assert.Contains(t, out.String(), "Offline mode")
}

func TestSetup_InvalidFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, _, err := Setup(context.Background(), &Options{LogLevel: "loud", DBPath: t.TempDir() + "/c.db"}, iocli.NewStdioWith(strings.NewReader(""), &bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
