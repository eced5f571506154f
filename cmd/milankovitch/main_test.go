package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/milankovitch/internal/config"
	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/series"
	"github.com/spf13/cobra"
)

func testCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	configFile, dataDir, timestep, preset = "", config.DefaultDataDir, config.DefaultTimestep, ""
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&configFile, "config", "", "")
	cmd.Flags().StringVar(&dataDir, "data", config.DefaultDataDir, "")
	cmd.Flags().IntVarP(&timestep, "timestep", "t", config.DefaultTimestep, "")
	cmd.Flags().StringVar(&preset, "preset", "", "")
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("timestep: 2000\ndata_dir: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		flags    []string
		args     []string
		wantStep int
		wantDir  string
	}{
		{"defaults", nil, nil, 1000, "data"},
		{"file", []string{"--config", path}, nil, 2000, "from-file"},
		{"preset over file", []string{"--config", path, "--preset", "fast"}, nil, 2500, "from-file"},
		{"flag over preset", []string{"--preset", "fast", "-t", "300"}, nil, 300, "data"},
		{"positional wins", []string{"-t", "300", "--data", "elsewhere"}, []string{"4000"}, 4000, "elsewhere"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(testCmd(t, tt.flags...), tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Timestep != tt.wantStep {
				t.Errorf("expected timestep %d, got %d", tt.wantStep, cfg.Timestep)
			}
			if cfg.DataDir != tt.wantDir {
				t.Errorf("expected data dir %s, got %s", tt.wantDir, cfg.DataDir)
			}
		})
	}
}

func TestLoadConfigRejectsBadTimestep(t *testing.T) {
	for _, args := range [][]string{{"99"}, {"5001"}, {"abc"}} {
		_, err := loadConfig(testCmd(t), args)
		if !errors.Is(err, series.ErrTimestep) {
			t.Errorf("%v: expected ErrTimestep, got %v", args, err)
		}
	}
	if _, err := loadConfig(testCmd(t, "--preset", "nope"), nil); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func writeTables(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	raw, err := series.Synthesize(401, series.DefaultSourceStep)
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if err := series.WriteRaw(dir, series.DefaultFiles(), raw); err != nil {
		t.Fatalf("write tables failed: %v", err)
	}
	return dir
}

func TestInsolationCommandWritesSeries(t *testing.T) {
	dir := writeTables(t)
	cmd := testCmd(t, "--data", dir, "-t", "5000")
	lat, lon, workers = 65, 90, 3
	insolOut = filepath.Join(t.TempDir(), "q65.csv")
	defer func() { insolOut = "" }()

	if err := insolationSeries(cmd, nil); err != nil {
		t.Fatalf("insolation command failed: %v", err)
	}

	got, err := series.ReadColumn(insolOut)
	if err != nil {
		t.Fatalf("read output failed: %v", err)
	}
	// 20 Myr at 5000 years per sample.
	if len(got) != 4000 {
		t.Fatalf("expected 4000 samples, got %d", len(got))
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	ds, err := cfg.LoadDataset()
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 1234, len(got) - 1} {
		want := insolation.At(insolation.OrbitAt(ds, i), 65, 90)
		if math.Abs(got[i]-want) > 1e-6*want {
			t.Errorf("sample %d: expected %.4f, got %.4f", i, want, got[i])
		}
	}
}

func TestInitConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milankovitch.yaml")
	if err := initConfig(testCmd(t, "-t", "2500", "--data", "tables"), []string{path}); err != nil {
		t.Fatalf("init-config failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Timestep != 2500 || cfg.DataDir != "tables" {
		t.Errorf("expected timestep 2500 in tables, got %d in %s", cfg.Timestep, cfg.DataDir)
	}
}
