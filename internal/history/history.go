// Package history records every conversion applied to a case so that a
// later reader can tell which derived fields came from which parameters.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/fluxconv/internal/convert"
)

// Dir is the directory inside a case that holds the records.
const Dir = ".fluxconv"

type FieldRecord struct {
	Field            string `json:"field"`
	Kind             string `json:"kind"`
	Dimensions       string `json:"dimensions"`
	Outcome          string `json:"outcome"`
	Output           string `json:"output,omitempty"`
	OutputDimensions string `json:"output_dimensions,omitempty"`
}

type Record struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Format    string        `json:"format"`
	Time      string        `json:"time"`
	RhoRef    float64       `json:"rho_ref"`
	POffset   float64       `json:"poffset"`
	Direction string        `json:"direction"`
	Fields    []FieldRecord `json:"fields"`
}

// Outputs lists the derived fields written by the run.
func (r *Record) Outputs() []string {
	var out []string
	for _, f := range r.Fields {
		if f.Output != "" {
			out = append(out, f.Output)
		}
	}
	return out
}

type Store struct {
	baseDir string
}

func New(caseDir string) *Store {
	return &Store{baseDir: filepath.Join(caseDir, Dir)}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// NewRecord turns a conversion report into a record with a fresh id.
func NewRecord(format string, report *convert.Report) *Record {
	rec := &Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Format:    format,
		Time:      report.Time.Name,
		RhoRef:    report.Params.RhoRef,
		POffset:   report.Params.POffset,
		Direction: report.Direction.String(),
	}
	for _, res := range report.Results {
		fr := FieldRecord{
			Field:      res.Field,
			Kind:       res.Kind.String(),
			Dimensions: res.Dimensions.String(),
			Outcome:    res.Outcome.String(),
		}
		if res.Written {
			fr.Output = res.Output
			fr.OutputDimensions = res.OutputDimensions.String()
		}
		rec.Fields = append(rec.Fields, fr)
	}
	return rec
}

func (s *Store) Save(rec *Record) error {
	if err := s.Init(); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(s.baseDir, rec.ID+".json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// List returns every readable record, oldest first.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

func (s *Store) Load(id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid record id %q: %w", id, err)
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
