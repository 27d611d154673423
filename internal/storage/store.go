package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
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

// ConstraintRecord is the persisted view of one built boundary constraint.
// Bound slices hold one entry for all elements or one per element.
type ConstraintRecord struct {
	Name   string    `json:"name"`
	Loc    string    `json:"loc"`
	Output string    `json:"output"`
	Shape  []int     `json:"shape"`
	Units  string    `json:"units,omitempty"`
	Lower  []float64 `json:"lower,omitempty"`
	Upper  []float64 `json:"upper,omitempty"`
	Equals []float64 `json:"equals,omitempty"`
	Linear bool      `json:"linear,omitempty"`
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Phase       string             `json:"phase"`
	Timestamp   time.Time          `json:"timestamp"`
	Constraints []ConstraintRecord `json:"constraints"`
}

// Save writes one evaluation report: metadata.json describing the built
// constraints, values.csv holding the evaluated output values.
func (s *Store) Save(phase string, records []ConstraintRecord, values map[string][]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", phase, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	// UnixNano makes same-second saves distinct; refuse to clobber if a
	// run with this ID somehow exists already.
	if _, err := os.Stat(runDir); err == nil {
		return "", fmt.Errorf("storage: run %s already exists", runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Phase:       phase,
		Timestamp:   time.Now(),
		Constraints: records,
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

	csvFile, err := os.Create(filepath.Join(runDir, "values.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"output", "index", "value"}); err != nil {
		return "", err
	}
	for _, rec := range records {
		for i, v := range values[rec.Output] {
			row := []string{rec.Output, strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

// List returns the metadata of every saved run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
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
	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// LoadValues reads back the evaluated values of one run, keyed by output.
func (s *Store) LoadValues(runID string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "values.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	values := make(map[string][]float64)
	for i, row := range rows {
		if i == 0 || len(row) != 3 {
			continue
		}
		v, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: run %s row %d: %w", runID, i, err)
		}
		values[row[0]] = append(values[row[0]], v)
	}
	return values, nil
}
