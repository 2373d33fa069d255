package convert

import (
	"context"
	"fmt"

	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/storage"
	"github.com/san-kum/fluxconv/internal/timesel"
	"go.uber.org/zap"
)

const (
	DefaultPressureName = "p"
	DefaultFluxName     = "phi"
)

// Quantity selects which classifier a field goes through.
type Quantity int

const (
	PressureQuantity Quantity = iota
	FluxQuantity
)

func (q Quantity) String() string {
	if q == FluxQuantity {
		return "flux"
	}
	return "pressure"
}

func (q Quantity) classify(d dimension.Dimension) dimension.Kind {
	if q == FluxQuantity {
		return dimension.ClassifyFlux(d)
	}
	return dimension.ClassifyPressure(d)
}

// Result describes what happened to one field.
type Result struct {
	Quantity         Quantity
	Field            string
	Dimensions       dimension.Dimension
	Kind             dimension.Kind
	Outcome          Outcome
	Transform        Transform
	Output           string
	OutputDimensions dimension.Dimension
	Written          bool
}

type Report struct {
	Time      timesel.Instant
	Params    Params
	Direction Direction
	DryRun    bool
	Results   []Result
}

// Converted returns the results that produced a derived field.
func (r *Report) Converted() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Outcome == Converted {
			out = append(out, res)
		}
	}
	return out
}

// Reporter receives human-readable progress. It never affects the run.
type Reporter interface {
	Reading(q Quantity, name string, t timesel.Instant)
	Result(r Result)
}

type nopReporter struct{}

func (nopReporter) Reading(Quantity, string, timesel.Instant) {}
func (nopReporter) Result(Result)                             {}

type Option func(*Converter)

func WithFieldNames(pressure, flux string) Option {
	return func(c *Converter) {
		if pressure != "" {
			c.pressureName = pressure
		}
		if flux != "" {
			c.fluxName = flux
		}
	}
}

// WithDryRun plans and reports every field without writing.
func WithDryRun(dryRun bool) Option {
	return func(c *Converter) {
		c.dryRun = dryRun
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

func WithReporter(r Reporter) Option {
	return func(c *Converter) {
		if r != nil {
			c.reporter = r
		}
	}
}

// Converter runs one conversion over the pressure and flux fields of a
// store. It holds no per-run state; the time is passed to Run.
type Converter struct {
	store        storage.Store
	params       Params
	dir          Direction
	pressureName string
	fluxName     string
	dryRun       bool
	log          *zap.SugaredLogger
	reporter     Reporter
}

func New(store storage.Store, params Params, dir Direction, opts ...Option) (*Converter, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c := &Converter{
		store:        store,
		params:       params,
		dir:          dir,
		pressureName: DefaultPressureName,
		fluxName:     DefaultFluxName,
		log:          zap.NewNop().Sugar(),
		reporter:     nopReporter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run converts the pressure field and then the flux field at t. A missing
// field or a failed write aborts the run; unrecognized or already
// converted fields are reported and skipped.
func (c *Converter) Run(ctx context.Context, t timesel.Instant) (*Report, error) {
	report := &Report{
		Time:      t,
		Params:    c.params,
		Direction: c.dir,
		DryRun:    c.dryRun,
	}

	c.log.Infow("starting conversion",
		"time", t.Name,
		"rhoRef", c.params.RhoRef,
		"poffset", c.params.POffset,
		"direction", c.dir.String(),
		"dryRun", c.dryRun,
	)

	steps := []struct {
		q    Quantity
		name string
	}{
		{PressureQuantity, c.pressureName},
		{FluxQuantity, c.fluxName},
	}

	for _, step := range steps {
		res, err := c.convertField(ctx, step.q, step.name, t)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)
		c.reporter.Result(res)
	}

	return report, nil
}

func (c *Converter) convertField(ctx context.Context, q Quantity, name string, t timesel.Instant) (Result, error) {
	c.reporter.Reading(q, name, t)

	f, err := c.store.ReadField(ctx, name, t)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s field: %w", q, err)
	}

	kind := q.classify(f.Dimensions)
	action := Plan(kind, c.dir)
	res := Result{
		Quantity:   q,
		Field:      f.Name,
		Dimensions: f.Dimensions,
		Kind:       kind,
		Outcome:    action.Outcome,
	}

	log := c.log.With("field", f.Name, "kind", kind.String(), "dimensions", f.Dimensions.String())

	switch action.Outcome {
	case Converted:
		out := action.Transform.Apply(f, c.params)
		res.Transform = action.Transform
		res.Output = out.Name
		res.OutputDimensions = out.Dimensions

		if c.dryRun {
			log.Infow("dry run, not writing", "output", out.Name)
			return res, nil
		}
		if err := c.write(ctx, out); err != nil {
			return res, err
		}
		res.Written = true
		log.Infow("wrote converted field", "output", out.Name, "values", out.Len())
	case NoOp:
		log.Infow("field already in target convention", "direction", c.dir.String())
	case Unrecognized:
		log.Infow("cannot recognise field dimensions, ignoring")
	}

	return res, nil
}

func (c *Converter) write(ctx context.Context, f *field.Field) error {
	if err := c.store.WriteField(ctx, f); err != nil {
		return fmt.Errorf("writing %s: %w", f.Name, err)
	}
	return nil
}
