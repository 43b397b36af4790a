package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sphlab/internal/config"
	"sphlab/internal/solver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Case       string             `json:"case"`
	Timestamp  time.Time          `json:"timestamp"`
	Dx         float64            `json:"dx"`
	Dt         float64            `json:"dt"`
	TFinal     float64            `json:"tf"`
	Integrator string             `json:"integrator"`
	Particles  int                `json:"particles"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes one run as a directory holding metadata.json and a long-form
// snapshots.csv (one row per particle per output time).
func (s *Store) Save(cfg *config.Config, particles int, result *solver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Case, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Case:       cfg.Case,
		Timestamp:  time.Now(),
		Dx:         cfg.Dx,
		Dt:         cfg.Dt,
		TFinal:     cfg.TFinal,
		Integrator: cfg.Integrator,
		Particles:  particles,
		Metrics:    result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "snapshots.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"t", "i", "x", "y", "u", "v", "rho", "p"}); err != nil {
		return "", err
	}

	for _, snap := range result.Snapshots {
		ts := strconv.FormatFloat(snap.T, 'g', -1, 64)
		for i := range snap.X {
			row := []string{
				ts,
				strconv.Itoa(i),
				strconv.FormatFloat(snap.X[i], 'g', -1, 64),
				strconv.FormatFloat(snap.Y[i], 'g', -1, 64),
				strconv.FormatFloat(snap.U[i], 'g', -1, 64),
				strconv.FormatFloat(snap.V[i], 'g', -1, 64),
				strconv.FormatFloat(snap.Rho[i], 'g', -1, 64),
				strconv.FormatFloat(snap.P[i], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSnapshots reads snapshots.csv back into solver snapshots, grouping
// consecutive rows with the same time value.
func (s *Store) LoadSnapshots(runID string) ([]solver.Snapshot, error) {
	csvPath := filepath.Join(s.baseDir, runID, "snapshots.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []solver.Snapshot{}, nil
	}

	snaps := make([]solver.Snapshot, 0)
	var cur *solver.Snapshot

	for _, record := range records[1:] {
		if len(record) < 8 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		vals := make([]float64, 6)
		ok := true
		for j := 0; j < 6; j++ {
			v, err := strconv.ParseFloat(record[j+2], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		if cur == nil || cur.T != t {
			snaps = append(snaps, solver.Snapshot{T: t})
			cur = &snaps[len(snaps)-1]
		}
		cur.X = append(cur.X, vals[0])
		cur.Y = append(cur.Y, vals[1])
		cur.U = append(cur.U, vals[2])
		cur.V = append(cur.V, vals[3])
		cur.Rho = append(cur.Rho, vals[4])
		cur.P = append(cur.P, vals[5])
	}

	return snaps, nil
}
