package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/gradstats/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig(root string) AppConfig {
	return AppConfig{
		DataRoot:    root,
		SiteName:    "Test",
		SessionKey:  devSessionKey,
		SessionName: "gradstats-page",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "dev defaults ok", env: "dev"},
		{name: "empty data root", env: "dev", mutate: func(c *AppConfig) { c.DataRoot = "" }, wantErr: "data_root"},
		{name: "empty session name", env: "dev", mutate: func(c *AppConfig) { c.SessionName = "" }, wantErr: "session_name"},
		{name: "dev key in prod", env: "prod", wantErr: "session_key"},
		{name: "real key in prod", env: "prod", mutate: func(c *AppConfig) { c.SessionKey = strings.Repeat("k", 48) }},
		{name: "negative audit interval", env: "dev", mutate: func(c *AppConfig) { c.AuditInterval = -time.Second }, wantErr: "audit_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig("data_analysis")
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, testLogger())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConnectDB_Defaults(t *testing.T) {
	deps, err := ConnectDB(context.Background(), &config.CoreConfig{}, validConfig("data_analysis"), testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Catalog == nil || deps.Resolver == nil {
		t.Fatal("deps not populated")
	}
	if deps.Resolver.Root() != "data_analysis" {
		t.Errorf("Root() = %q", deps.Resolver.Root())
	}
	if got := deps.Resolver.Resolve("Chi-Squared test").ImageFile; got != "chi-squared_test_plot.png" {
		t.Errorf("embedded exception table not applied, ImageFile = %q", got)
	}
}

func TestConnectDB_BadOverrideFile(t *testing.T) {
	cfg := validConfig("data_analysis")
	cfg.ExceptionsFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := ConnectDB(context.Background(), &config.CoreConfig{}, cfg, testLogger()); err == nil {
		t.Fatal("expected error for missing exceptions file")
	}

	cfg = validConfig("data_analysis")
	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := ConnectDB(context.Background(), &config.CoreConfig{}, cfg, testLogger()); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestEnsureSchema_MissingAssets(t *testing.T) {
	fx := testutil.NewFixtures(t)
	fx.WriteCategory("bar_chart", "Bars.")

	cfg := validConfig(fx.Root())
	deps, err := ConnectDB(context.Background(), &config.CoreConfig{}, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zap.WarnLevel)
	if err := EnsureSchema(context.Background(), &config.CoreConfig{}, cfg, deps, zap.New(core)); err != nil {
		t.Fatalf("lenient EnsureSchema returned %v", err)
	}
	if logs.FilterMessage("report asset missing").Len() == 0 {
		t.Error("expected missing assets to be logged")
	}

	cfg.StrictAssets = true
	if err := EnsureSchema(context.Background(), &config.CoreConfig{}, cfg, deps, testLogger()); err == nil {
		t.Fatal("strict EnsureSchema should fail on missing assets")
	}
}

func TestEnsureSchema_AllPresent(t *testing.T) {
	fx := testutil.NewFixtures(t)
	cfg := validConfig(fx.Root())
	cfg.StrictAssets = true

	deps, err := ConnectDB(context.Background(), &config.CoreConfig{}, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	for _, label := range deps.Catalog.Labels() {
		res := deps.Resolver.Resolve(label)
		fx.WriteImage(res.Dir, res.ImageFile)
		fx.WriteText(res.Dir, res.TextFile, "ok")
		for _, x := range res.Extras {
			fx.WriteImage(res.Dir, x.File)
		}
	}

	if err := EnsureSchema(context.Background(), &config.CoreConfig{}, cfg, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
}

func TestLifecycle_Watcher(t *testing.T) {
	fx := testutil.NewFixtures(t)
	cfg := validConfig(fx.Root())
	cfg.AuditInterval = time.Hour

	ctx := context.Background()
	core := &config.CoreConfig{}
	deps, err := ConnectDB(ctx, core, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if deps.Watcher == nil {
		t.Fatal("expected watcher when audit_interval > 0")
	}
	if err := EnsureSchema(ctx, core, cfg, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if deps.Watcher.MissingCount() == 0 {
		t.Error("watcher should have recorded missing assets")
	}
	if err := Startup(ctx, core, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if err := Shutdown(ctx, core, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
