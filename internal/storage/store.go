package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/numkit/internal/calculus"
	"github.com/san-kum/numkit/internal/numeric"
)

const (
	metadataFile   = "metadata.json"
	iterationsFile = "iterations.csv"
)

var iterationsHeader = []string{"n", "x", "fx", "dfx"}

// Store keeps Newton traces on disk, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved run. Decimal values are kept as strings so
// no digits are lost.
type RunMetadata struct {
	ID         string    `json:"id"`
	Function   string    `json:"function"`
	Timestamp  time.Time `json:"timestamp"`
	Guess      string    `json:"guess"`
	Root       string    `json:"root"`
	Iterations int       `json:"iterations"`
	Step       string    `json:"step"`
	Precision  int       `json:"precision"`
	Round      bool      `json:"round"`
}

func (s *Store) Save(function string, opts calculus.Options, res *calculus.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", slug(function), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Function:   function,
		Timestamp:  now,
		Guess:      res.Guess.String(),
		Root:       res.Root.String(),
		Iterations: len(res.Iterates),
		Step:       opts.Step.String(),
		Precision:  opts.Precision,
		Round:      opts.Round,
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}

	err = writeFile(filepath.Join(runDir, iterationsFile), func(f io.Writer) error {
		w := csv.NewWriter(f)
		if err := w.Write(iterationsHeader); err != nil {
			return err
		}
		for _, it := range res.Iterates {
			row := []string{strconv.Itoa(it.N), it.X.String(), it.FX.String(), it.DFX.String()}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
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
			slog.Warn("skipping run", "dir", entry.Name(), "error", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadIterates reads back the iterates of a run. Next is rebuilt from the
// following row, and from the recorded root for the last one.
func (s *Store) LoadIterates(runID string) ([]calculus.Iterate, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, iterationsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(iterationsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []calculus.Iterate{}, nil
	}

	iterates := make([]calculus.Iterate, 0, len(records)-1)
	for i, record := range records[1:] {
		it, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", iterationsFile, i+1, err)
		}
		iterates = append(iterates, it)
	}

	root, err := numeric.Parse(meta.Root)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	for i := range iterates {
		if i+1 < len(iterates) {
			iterates[i].Next = iterates[i+1].X
		} else {
			iterates[i].Next = root
		}
	}

	return iterates, nil
}

func parseRow(record []string) (calculus.Iterate, error) {
	n, err := strconv.Atoi(record[0])
	if err != nil {
		return calculus.Iterate{}, err
	}
	var vals [3]numeric.Scalar
	for i := range vals {
		if vals[i], err = numeric.Parse(record[i+1]); err != nil {
			return calculus.Iterate{}, err
		}
	}
	return calculus.Iterate{N: n, X: vals[0], FX: vals[1], DFX: vals[2]}, nil
}

// writeFile creates path and fills it with write. A failed close is
// reported, since buffered data may not have reached the disk.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	return write(file)
}

func slug(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, name)
}
