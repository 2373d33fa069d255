package main

import (
	"context"
	"fmt"

	"github.com/san-kum/fluxconv/internal/config"
	"github.com/san-kum/fluxconv/internal/convert"
	"github.com/san-kum/fluxconv/internal/history"
	"github.com/san-kum/fluxconv/internal/logging"
	"github.com/san-kum/fluxconv/internal/report"
	"github.com/san-kum/fluxconv/internal/storage"
	"github.com/san-kum/fluxconv/internal/timesel"
	"github.com/san-kum/fluxconv/internal/tui"
	"github.com/spf13/cobra"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Parameters are checked before the case is touched.
	params, err := conversionParams(cfg)
	if err != nil {
		return err
	}
	dir := convert.DirectionOf(cfg.Inverse)

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	st, fmtName, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := commandContext(cmd)

	t, err := resolveTime(ctx, cfg, st, pick)
	if err != nil {
		return err
	}

	out := report.New(cmd.OutOrStdout())
	out.Params(params, dir)
	out.Time(t)

	conv, err := convert.New(st, params, dir,
		convert.WithFieldNames(cfg.Fields.Pressure, cfg.Fields.Flux),
		convert.WithDryRun(dryRun),
		convert.WithLogger(log),
		convert.WithReporter(out),
	)
	if err != nil {
		return err
	}

	rep, err := conv.Run(ctx, t)
	if err != nil {
		log.Errorw("conversion failed", "time", t.Name, "error", err)
		return err
	}

	if !dryRun {
		rec := history.NewRecord(string(fmtName), rep)
		if err := history.New(cfg.Case).Save(rec); err != nil {
			log.Warnw("could not record conversion", "error", err)
		} else {
			log.Debugw("recorded conversion", "id", rec.ID)
		}
	}

	out.End(dryRun)
	return nil
}

// resolveTime picks the time to work on, interactively when interactive
// is set.
func resolveTime(ctx context.Context, cfg *config.Config, st storage.Store, interactive bool) (timesel.Instant, error) {
	series, err := st.Times(ctx)
	if err != nil {
		return timesel.Instant{}, fmt.Errorf("listing times: %w", err)
	}

	if interactive {
		sorted := make([]timesel.Instant, len(series))
		copy(sorted, series)
		timesel.Sort(sorted)
		return tui.PickTime(cfg.Case, sorted)
	}

	opts, err := timeOptions(cfg)
	if err != nil {
		return timesel.Instant{}, err
	}
	t, err := timesel.Select(series, opts)
	if err != nil {
		return timesel.Instant{}, fmt.Errorf("%s: %w", cfg.Case, err)
	}
	return t, nil
}
