package storage

import (
	"os"
	"path/filepath"
	"testing"

	"sphlab/internal/config"
	"sphlab/internal/solver"
)

func testResult() *solver.Result {
	return &solver.Result{
		Snapshots: []solver.Snapshot{
			{
				T:   0.0,
				X:   []float64{0.0, 0.5},
				Y:   []float64{0.0, -0.5},
				U:   []float64{0.0, -50.0},
				V:   []float64{0.0, -50.0},
				Rho: []float64{1.0, 1.0},
				P:   []float64{0.0, 0.0},
			},
			{
				T:   0.001,
				X:   []float64{0.01, 0.45},
				Y:   []float64{0.0, -0.55},
				U:   []float64{0.0, -45.0},
				V:   []float64{0.0, -55.0},
				Rho: []float64{1.01, 0.99},
				P:   []float64{10.0, -8.0},
			},
		},
		Metrics: map[string]float64{
			"kinetic_energy": 1.5,
		},
		StepsTaken: 200,
		FinalT:     0.001,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Case = "elliptical_drop"

	runID, err := st.Save(cfg, 2, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Case != "elliptical_drop" {
		t.Errorf("expected case 'elliptical_drop', got '%s'", meta.Case)
	}

	if meta.Particles != 2 {
		t.Errorf("expected 2 particles, got %d", meta.Particles)
	}

	if meta.Metrics["kinetic_energy"] != 1.5 {
		t.Errorf("expected kinetic_energy 1.5, got %f", meta.Metrics["kinetic_energy"])
	}
}

func TestStoreSnapshotsRoundtrip(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Case = "elliptical_drop"
	want := testResult()

	runID, err := st.Save(cfg, 2, want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	snaps, err := st.LoadSnapshots(runID)
	if err != nil {
		t.Fatalf("load snapshots failed: %v", err)
	}

	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}

	for k, snap := range snaps {
		if snap.T != want.Snapshots[k].T {
			t.Errorf("snapshot %d: expected t=%g, got %g", k, want.Snapshots[k].T, snap.T)
		}
		if len(snap.X) != 2 {
			t.Fatalf("snapshot %d: expected 2 particles, got %d", k, len(snap.X))
		}
		for i := range snap.X {
			if snap.X[i] != want.Snapshots[k].X[i] {
				t.Errorf("snapshot %d particle %d: x=%g, want %g", k, i, snap.X[i], want.Snapshots[k].X[i])
			}
			if snap.Rho[i] != want.Snapshots[k].Rho[i] {
				t.Errorf("snapshot %d particle %d: rho=%g, want %g", k, i, snap.Rho[i], want.Snapshots[k].Rho[i])
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	cfg := config.DefaultConfig()
	cfg.Case = "elliptical_drop"

	if _, err := st.Save(cfg, 2, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Case = "elliptical_drop"

	runID, err := st.Save(cfg, 2, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "snapshots.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("snapshots.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.json")

	cfg := config.DefaultConfig()
	cfg.Case = "elliptical_drop"

	if err := ExportJSON(path, cfg, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if len(data) == 0 {
		t.Error("expected non-empty export")
	}
}
