// Package export writes a field to JSON or CSV for use outside fluxconv.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/fluxconv/internal/field"
)

type Data struct {
	Name       string        `json:"name"`
	Time       string        `json:"time"`
	Class      string        `json:"class"`
	Dimensions string        `json:"dimensions"`
	Kind       string        `json:"kind"`
	Summary    field.Summary `json:"summary"`
	Values     []float64     `json:"values"`
}

func dataOf(f *field.Field, kind string) Data {
	values := f.Values
	if values == nil {
		values = []float64{}
	}
	return Data{
		Name:       f.Name,
		Time:       f.Time.Name,
		Class:      string(f.Class),
		Dimensions: f.Dimensions.String(),
		Kind:       kind,
		Summary:    f.Summary(),
		Values:     values,
	}
}

func JSON(w io.Writer, f *field.Field, kind string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dataOf(f, kind))
}

// CSV writes one row per element: index,value.
func CSV(w io.Writer, f *field.Field) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", f.Name}); err != nil {
		return err
	}
	for i, v := range f.Values {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// File writes f to path, as CSV when the extension is .csv and as JSON
// otherwise.
func File(path string, f *field.Field, kind string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		err = CSV(file, f)
	} else {
		err = JSON(file, f, kind)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", f.Name, err)
	}
	return file.Close()
}
