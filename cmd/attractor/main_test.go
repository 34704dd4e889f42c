package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/storage"
)

func newFlagsCmd(t *testing.T, args ...string) (*cobra.Command, *simFlags) {
	t.Helper()
	var f simFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd, &f
}

func TestResolveDefaults(t *testing.T) {
	cmd, f := newFlagsCmd(t)
	cfg, err := f.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation != config.DefaultConfig().Simulation {
		t.Errorf("expected defaults, got %+v", cfg.Simulation)
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := "simulation:\n  population: 30\n  rho: 20\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cmd, f := newFlagsCmd(t, "--preset", "long", "--config", path, "--rho", "22", "--hide-paths")
	cfg, err := f.resolve(cmd)
	if err != nil {
		t.Fatal(err)
	}

	s := cfg.Simulation
	if s.TrailLength != 200 {
		t.Errorf("preset trail should survive, got %d", s.TrailLength)
	}
	if s.Population != 30 {
		t.Errorf("config file should override preset population, got %d", s.Population)
	}
	if s.Rho != 22 {
		t.Errorf("explicit flag should override config file, got %v", s.Rho)
	}
	if s.ShowPath {
		t.Error("--hide-paths should disable paths")
	}
	if s.Sigma != config.DefaultSigma {
		t.Errorf("unset flag default should not override, got sigma %v", s.Sigma)
	}
}

func TestResolveErrors(t *testing.T) {
	cmd, f := newFlagsCmd(t, "--preset", "nope")
	if _, err := f.resolve(cmd); err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("expected unknown preset error, got %v", err)
	}

	cmd, f = newFlagsCmd(t, "--population", "0")
	if _, err := f.resolve(cmd); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	return root.Execute()
}

func TestRunSavesTrace(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "run", "--data", dir, "--log-level", "error",
		"--ticks", "20", "--sample-every", "5", "--population", "3", "--seed", "9")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	st := storage.New(dir)
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	meta := runs[0]
	if meta.Seed != 9 || meta.Ticks != 20 || meta.Population != 3 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if _, ok := meta.Metrics["mean_z"]; !ok {
		t.Error("expected summary metrics")
	}

	trace, err := st.LoadTrace(meta.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(trace.Samples) != 15 {
		t.Errorf("expected 15 samples, got %d", len(trace.Samples))
	}
}

func TestSnapshotWritesSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")
	err := execute(t, "snapshot", "--log-level", "error", "--ticks", "50", "--population", "4", "--trail", "10", "--out", out)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), "<circle") {
		t.Error("expected an SVG document with circles")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attractor.yaml")
	if err := execute(t, "config", "init", path, "--preset", "sparse"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Simulation.Population != 25 {
		t.Errorf("expected sparse preset, got population %d", cfg.Simulation.Population)
	}

	if err := execute(t, "config", "init", path); err == nil {
		t.Error("expected error when file exists")
	}
	if err := execute(t, "config", "init", path, "--force"); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}
}

func TestExportJSONUnknownRun(t *testing.T) {
	err := execute(t, "export-json", "missing", "--data", t.TempDir())
	if !errors.Is(err, storage.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}
