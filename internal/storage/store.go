package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/vecmath"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

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
	ID           string             `json:"id"`
	Label        string             `json:"label,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         uint64             `json:"seed"`
	Population   int                `json:"population"`
	TrailLength  int                `json:"trail_length"`
	Params       attractor.Params   `json:"params"`
	PhysicsScale float32            `json:"physics_scale"`
	Dt           float64            `json:"dt"`
	Ticks        int                `json:"ticks"`
	SampleEvery  int                `json:"sample_every"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes meta and the trace into a new run directory and returns its id.
func (s *Store) Save(meta RunMetadata, trace *Trace) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("lorenz_%d", now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)
	for i := 1; exists(runDir); i++ {
		runID = fmt.Sprintf("lorenz_%d_%d", now.UnixMilli(), i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(runDir, samplesFile), trace); err != nil {
		return "", err
	}
	return runID, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSamples(path string, trace *Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"tick", "time", "trajectory", "x", "y", "z"}); err != nil {
		return err
	}
	if trace != nil {
		for _, smp := range trace.Samples {
			row := []string{
				strconv.FormatUint(smp.Tick, 10),
				strconv.FormatFloat(smp.Time, 'g', -1, 64),
				strconv.Itoa(smp.Trajectory),
				formatFloat(smp.Position.X),
				formatFloat(smp.Position.Y),
				formatFloat(smp.Position.Z),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// formatFloat writes the shortest text that parses back to the same float32.
func formatFloat(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

// List returns every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads the sampled positions of a run. Malformed rows are skipped.
func (s *Store) LoadTrace(runID string) (*Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	trace := &Trace{}
	for i := 1; i < len(records); i++ {
		smp, ok := parseSample(records[i])
		if !ok {
			continue
		}
		trace.Samples = append(trace.Samples, smp)
	}
	return trace, nil
}

func parseSample(record []string) (Sample, bool) {
	if len(record) != 6 {
		return Sample{}, false
	}
	tick, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return Sample{}, false
	}
	t, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return Sample{}, false
	}
	idx, err := strconv.Atoi(record[2])
	if err != nil || idx < 0 {
		return Sample{}, false
	}
	var xyz [3]float32
	for k := range xyz {
		v, err := strconv.ParseFloat(record[3+k], 32)
		if err != nil {
			return Sample{}, false
		}
		xyz[k] = float32(v)
	}
	return Sample{
		Tick:       tick,
		Time:       t,
		Trajectory: idx,
		Position:   vecmath.New(xyz[0], xyz[1], xyz[2]),
	}, true
}
