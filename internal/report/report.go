// Package report prints what a conversion did, one line per field.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fluxconv/internal/convert"
	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/timesel"
)

// Printer writes human-readable progress and implements convert.Reporter.
type Printer struct {
	w io.Writer
}

var _ convert.Reporter = (*Printer)(nil)

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Params(params convert.Params, dir convert.Direction) {
	fmt.Fprintf(p.w, "%s %s\n", Label.Render("Reference density ="), Value.Render(formatFloat(params.RhoRef)))
	fmt.Fprintf(p.w, "%s %s\n", Label.Render("pressure offset ="), Value.Render(formatFloat(params.POffset)))
	fmt.Fprintf(p.w, "%s %s\n", Label.Render("direction ="), Value.Render(dir.String()))
}

func (p *Printer) Time(t timesel.Instant) {
	fmt.Fprintf(p.w, "\n%s\n\n", Header.Render("Time = "+t.Name))
}

func (p *Printer) Reading(_ convert.Quantity, name string, _ timesel.Instant) {
	fmt.Fprintf(p.w, "    Reading %s\n", name)
}

func (p *Printer) Result(r convert.Result) {
	fmt.Fprintln(p.w, Describe(r))
}

func (p *Printer) End(dryRun bool) {
	if dryRun {
		fmt.Fprintln(p.w, Subtle.Render("\ndry run, nothing written"))
	}
	fmt.Fprintln(p.w, "\nEnd")
}

// Describe renders a single field outcome.
func Describe(r convert.Result) string {
	switch r.Outcome {
	case convert.Converted:
		verb := "Correcting"
		if !r.Written {
			verb = "Would correct"
		}
		return StatusConverted.Render(fmt.Sprintf("%s %s %s into %s %s",
			verb, r.Kind, r.Field, r.Transform.Output(), r.Output))
	case convert.NoOp:
		return StatusNoOp.Render(fmt.Sprintf("%s %s is a %s.  Nothing to do",
			capitalize(r.Quantity.String()), r.Field, r.Kind))
	}
	return StatusUnrecognized.Render(fmt.Sprintf("Cannot recognise dimensions of %s field %s: %s.  Ignoring",
		r.Quantity, r.Field, r.Dimensions))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// Summary prints the statistics of a field.
func Summary(w io.Writer, f *field.Field) {
	s := f.Summary()
	fmt.Fprintf(w, "%s %s\n", Header.Render(f.Name), Subtle.Render(string(f.Class)))
	fmt.Fprintf(w, "  %s %s (%s)\n", Label.Render("dimensions:"), f.Dimensions, dimension.Classify(f.Dimensions))
	fmt.Fprintf(w, "  %s %d\n", Label.Render("values:"), s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Fprintf(w, "  %s %g\n", Label.Render("min:"), s.Min)
	fmt.Fprintf(w, "  %s %g\n", Label.Render("max:"), s.Max)
	fmt.Fprintf(w, "  %s %g\n", Label.Render("mean:"), s.Mean)
	fmt.Fprintf(w, "  %s %g\n", Label.Render("stddev:"), s.StdDev)
}

// Plot renders the values of a field against their element index.
func Plot(f *field.Field, width, height int) string {
	if len(f.Values) == 0 {
		return ""
	}
	data := f.Values
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s at time %s", f.Name, f.Time)),
	)
}
