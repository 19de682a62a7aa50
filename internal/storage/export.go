package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/numkit/internal/calculus"
)

type ExportIterate struct {
	N   int    `json:"n"`
	X   string `json:"x"`
	FX  string `json:"fx"`
	DFX string `json:"dfx"`
}

type ExportData struct {
	RunMetadata
	Steps []ExportIterate `json:"steps"`
}

func NewExportData(meta *RunMetadata, iterates []calculus.Iterate) ExportData {
	data := ExportData{
		RunMetadata: *meta,
		Steps:       make([]ExportIterate, len(iterates)),
	}
	for i, it := range iterates {
		data.Steps[i] = ExportIterate{N: it.N, X: it.X.String(), FX: it.FX.String(), DFX: it.DFX.String()}
	}
	return data
}

// ExportJSON writes a saved run to path, or to stdout when path is "-".
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	iterates, err := s.LoadIterates(runID)
	if err != nil {
		return err
	}
	data := NewExportData(meta, iterates)

	if path == "-" {
		return writeJSON(os.Stdout, data)
	}

	return writeFile(path, func(w io.Writer) error {
		return writeJSON(w, data)
	})
}

func writeJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
