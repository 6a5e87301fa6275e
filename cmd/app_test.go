package cmd

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"solid-example/config"
	"solid-example/infrastructure/persistence/memory"
	apperrors "solid-example/pkg/errors"
	"solid-example/pkg/logger"
	ocpcompliant "solid-example/solid/ocp/compliant"
	srpcompliant "solid-example/solid/srp/compliant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "solid-example", Version: "test", Env: "development"},
		Storage: config.StorageConfig{
			Type:          "memory",
			SlowThreshold: 200 * time.Millisecond,
		},
		Demo: config.DemoConfig{
			Principles: []string{"dip", "isp", "ocp", "srp"},
			Variants:   []string{"violation", "compliant"},
			Payments: []config.PaymentConfig{
				{Method: "credit_card", Amount: 100},
				{Method: "paypal", Amount: 50},
			},
			Users: []config.UserConfig{{ID: 1, Name: "개발구루", Email: "guru@example.com"}},
		},
	}
}

func build(t *testing.T, cfg *config.Config, out io.Writer) *App {
	t.Helper()
	app, err := NewBuilder(cfg).WithOutput(out).SkipLoggerInit().Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestRunAllFromConfig(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logger.Replace(zap.New(core))()

	var out bytes.Buffer
	app := build(t, testConfig(), &out)

	require.NoError(t, app.Run(context.Background(), nil))

	text := out.String()
	assert.Equal(t, 8, strings.Count(text, "### "))
	assert.True(t, strings.HasPrefix(text, "### dip-violation (Dependency Inversion, violation)\n"))
	assert.Contains(t, text, "### srp-compliant (Single Responsibility, compliant)\n")
	assert.Contains(t, text, "Processing PayPal payment of $50\n")
	assert.Contains(t, text, "User not found.\n")

	runLogs := logs.FilterMessage("Running examples").All()
	require.Len(t, runLogs, 1)
	assert.NotEmpty(t, runLogs[0].ContextMap()["run_id"])
	assert.Equal(t, 8, logs.FilterMessage("Example finished").Len())
}

func TestRunSelectionFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Demo.Principles = []string{"ocp"}
	cfg.Demo.Variants = []string{"compliant"}

	var out bytes.Buffer
	require.NoError(t, build(t, cfg, &out).Run(context.Background(), nil))

	assert.Equal(t,
		"### ocp-compliant (Open/Closed, compliant)\n"+
			"Processing credit card payment of $100\n"+
			"Processing PayPal payment of $50\n",
		out.String())
}

func TestRunNamedExamples(t *testing.T) {
	var out bytes.Buffer
	app := build(t, testConfig(), &out)

	require.NoError(t, app.Run(context.Background(), []string{"dip-violation", "dip-compliant"}))
	assert.Equal(t, 2, strings.Count(out.String(), "### "))

	err := app.Run(context.Background(), []string{"lsp-violation"})
	assert.True(t, apperrors.Is(err, apperrors.CodeUnknownExample))
	assert.Equal(t, 3, apperrors.AsAppError(err).ExitCode())
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := build(t, testConfig(), &out).Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	build(t, testConfig(), &out).List()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "dip-violation"))
	assert.Contains(t, lines[7], "Single Responsibility")
}

func TestBuilderWithStoreAndStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Demo.Principles = []string{"ocp", "srp"}
	cfg.Demo.Variants = []string{"compliant"}
	cfg.Demo.Payments = []config.PaymentConfig{{Method: "voucher", Amount: 5}}

	store := memory.NewUserStore(srpcompliant.User{UserID: 1, Name: "seeded", Email: "s@example.com"})
	var out bytes.Buffer
	app, err := NewBuilder(cfg).
		WithOutput(&out).
		WithStore(store).
		WithStrategy("voucher", func(w io.Writer) ocpcompliant.PaymentStrategy { return voucher{w} }).
		SkipLoggerInit().
		Build()
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "voucher paid\n")
	assert.Contains(t, out.String(), "Name: seeded\n")

	saved, err := store.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, saved, "the SRP demo saved its new user into the injected store")
}

type voucher struct{ w io.Writer }

func (v voucher) Pay(float64) { io.WriteString(v.w, "voucher paid\n") }

func TestBuilderSQLiteStore(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Type = "sqlite"
	cfg.Storage.DSN = "file:cmd_builder_test?mode=memory&cache=shared"
	cfg.Demo.Principles = []string{"srp"}
	cfg.Demo.Variants = []string{"compliant"}

	var out bytes.Buffer
	app := build(t, cfg, &out)
	require.NoError(t, app.Run(context.Background(), nil))

	assert.Contains(t, out.String(), "Email: guru@example.com\n")
	assert.Contains(t, out.String(), "Name: 주니어개발자\n")
	assert.Contains(t, out.String(), "User not found.\n")
}

func TestBuilderRejectsUnknownStorage(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Type = "mysql"

	_, err := NewBuilder(cfg).SkipLoggerInit().Build()
	assert.True(t, apperrors.Is(err, apperrors.CodeConfig))
}

func TestBuilderInitializesLogger(t *testing.T) {
	defer logger.Replace(nil)()

	cfg := testConfig()
	cfg.Log = config.LogConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: filepath.Join(t.TempDir(), "solid.log"),
	}

	app, err := NewBuilder(cfg).WithOutput(io.Discard).Build()
	require.NoError(t, err)
	defer app.Close()

	assert.True(t, logger.Get().Core().Enabled(zapcore.DebugLevel))
}
