package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/traject/internal/motion"
)

type ExportData struct {
	ID        string             `json:"id"`
	Generator string             `json:"generator"`
	Dt        float64            `json:"dt"`
	PhysicsDt float64            `json:"physics_dt"`
	Duration  float64            `json:"duration"`
	Frames    int                `json:"frames"`
	Times     []float64          `json:"times"`
	Points    [][3]float64       `json:"points"`
	Metrics   map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, points []motion.Point, times []float64) ExportData {
	data := ExportData{
		ID:        meta.ID,
		Generator: meta.Generator,
		Dt:        meta.Dt,
		PhysicsDt: meta.PhysicsDt,
		Duration:  meta.Duration,
		Frames:    meta.Frames,
		Times:     times,
		Points:    make([][3]float64, len(points)),
		Metrics:   meta.Metrics,
	}
	for i, p := range points {
		data.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return data
}

// ExportJSON writes a full run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, points []motion.Point, times []float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, points, times))
}

// ExportJSONStdout is a convenience wrapper for the CLI.
func ExportJSONStdout(meta *RunMetadata, points []motion.Point, times []float64) error {
	return ExportJSON(os.Stdout, meta, points, times)
}
