package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/epicycle/internal/fourier"
)

// Store keeps computed runs under baseDir, one directory per run holding
// metadata.json, curve.csv and coefficients.csv.
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
	ID        string             `json:"id"`
	Shape     string             `json:"shape"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	K         int                `json:"k"`
	Mode      string             `json:"mode"`
	Bounds    []int              `json:"bounds"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run and returns its id. meta.ID and meta.Timestamp are
// filled in.
func (s *Store) Save(meta RunMetadata, curve fourier.Curve, set *fourier.CoefficientSet) (string, error) {
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Shape, meta.Timestamp.UnixNano())
	meta.Samples = len(curve)
	if set != nil {
		meta.K = set.K
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := WritePoints(filepath.Join(runDir, "curve.csv"), curve); err != nil {
		return "", err
	}
	if err := WriteCoefficients(filepath.Join(runDir, "coefficients.csv"), set); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns saved runs, newest first.
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadCurve(runID string) (fourier.Curve, error) {
	return ReadPoints(filepath.Join(s.baseDir, runID, "curve.csv"))
}

func (s *Store) LoadCoefficients(runID string) (*fourier.CoefficientSet, error) {
	return ReadCoefficients(filepath.Join(s.baseDir, runID, "coefficients.csv"))
}
