package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Run     RunMetadata `json:"run"`
	Samples []Sample    `json:"samples"`
}

// ExportJSON writes a run and its trace as one indented JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	data := ExportData{Run: *meta, Samples: trace.Samples}
	if data.Samples == nil {
		data.Samples = []Sample{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
