package storage

import (
	"encoding/json"
	"io"
	"os"

	"sphlab/internal/config"
	"sphlab/internal/solver"
)

type ExportData struct {
	Case       string             `json:"case"`
	Integrator string             `json:"integrator"`
	Dx         float64            `json:"dx"`
	Dt         float64            `json:"dt"`
	TFinal     float64            `json:"tf"`
	Steps      int                `json:"steps"`
	Snapshots  []ExportSnapshot   `json:"snapshots"`
	Metrics    map[string]float64 `json:"metrics"`
}

type ExportSnapshot struct {
	T   float64   `json:"t"`
	X   []float64 `json:"x"`
	Y   []float64 `json:"y"`
	U   []float64 `json:"u"`
	V   []float64 `json:"v"`
	Rho []float64 `json:"rho"`
	P   []float64 `json:"p"`
}

func exportData(cfg *config.Config, result *solver.Result) ExportData {
	data := ExportData{
		Case:       cfg.Case,
		Integrator: cfg.Integrator,
		Dx:         cfg.Dx,
		Dt:         cfg.Dt,
		TFinal:     cfg.TFinal,
		Steps:      result.StepsTaken,
		Snapshots:  make([]ExportSnapshot, len(result.Snapshots)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.Snapshots {
		data.Snapshots[i] = ExportSnapshot{
			T: s.T, X: s.X, Y: s.Y, U: s.U, V: s.V, Rho: s.Rho, P: s.P,
		}
	}
	return data
}

func writeJSON(w io.Writer, cfg *config.Config, result *solver.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(cfg, result))
}

func ExportJSON(path string, cfg *config.Config, result *solver.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, cfg, result)
}

func ExportJSONStdout(cfg *config.Config, result *solver.Result) error {
	return writeJSON(os.Stdout, cfg, result)
}
