package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/fluxconv/internal/config"
	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/export"
	"github.com/san-kum/fluxconv/internal/history"
	"github.com/san-kum/fluxconv/internal/report"
	"github.com/san-kum/fluxconv/internal/timesel"
	"github.com/spf13/cobra"
)

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func listTimes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	series, err := st.Times(commandContext(cmd))
	if err != nil {
		return err
	}
	if len(series) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no times found")
		return nil
	}
	timesel.Sort(series)

	opts, err := timeOptions(cfg)
	if err != nil {
		return err
	}
	selected, _ := timesel.Select(series, opts)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tVALUE\tSELECTED")
	for _, t := range series {
		mark := ""
		if t.Name == selected.Name {
			mark = "*"
		}
		value := fmt.Sprintf("%g", t.Value)
		if t.IsConstant() {
			value = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, value, mark)
	}
	return w.Flush()
}

func inspectField(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := commandContext(cmd)
	t, err := resolveTime(ctx, cfg, st, false)
	if err != nil {
		return err
	}
	f, err := st.ReadField(ctx, args[0], t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Summary(out, f)
	if plot := report.Plot(f, plotWidth, plotHeight); plot != "" {
		fmt.Fprintf(out, "\n%s\n", plot)
	}

	if exportPath != "" {
		if err := export.File(exportPath, f, dimension.Classify(f.Dimensions).String()); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nexported to %s\n", exportPath)
	}
	return nil
}

func listHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	records, err := history.New(cfg.Case).List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no conversions recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tDIRECTION\tRHOREF\tPOFFSET\tOUTPUTS")
	for _, rec := range records {
		outputs := strings.Join(rec.Outputs(), ",")
		if outputs == "" {
			outputs = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%g\t%s\n",
			rec.ID,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Time,
			rec.Direction,
			rec.RhoRef,
			rec.POffset,
			outputs,
		)
	}
	return w.Flush()
}

func showHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rec, err := history.New(cfg.Case).Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id:\t%s\n", rec.ID)
	fmt.Fprintf(w, "date:\t%s\n", rec.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "format:\t%s\n", rec.Format)
	fmt.Fprintf(w, "time:\t%s\n", rec.Time)
	fmt.Fprintf(w, "direction:\t%s\n", rec.Direction)
	fmt.Fprintf(w, "rhoRef:\t%g\n", rec.RhoRef)
	fmt.Fprintf(w, "poffset:\t%g\n", rec.POffset)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tKIND\tDIMENSIONS\tOUTCOME\tOUTPUT")
	for _, f := range rec.Fields {
		output := f.Output
		if output == "" {
			output = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.Field, f.Kind, f.Dimensions, f.Outcome, output)
	}
	return w.Flush()
}

func listFluids(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRHOREF\tDESCRIPTION")
	for _, name := range config.ListFluids() {
		fl, _ := config.GetFluid(name)
		fmt.Fprintf(w, "%s\t%.6g\t%s\n", fl.Name, fl.RhoRef, fl.Description)
	}
	return w.Flush()
}
