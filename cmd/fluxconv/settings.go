package main

import (
	"fmt"

	"github.com/san-kum/fluxconv/internal/config"
	"github.com/san-kum/fluxconv/internal/convert"
	"github.com/san-kum/fluxconv/internal/storage"
	"github.com/san-kum/fluxconv/internal/timesel"
	"github.com/spf13/cobra"
)

// loadConfig reads --config, or the defaults, and lays every flag the user
// set on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("case") {
		cfg.Case = caseDir
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("time") {
		cfg.Time.Select = timeRanges.String()
	}
	if flags.Changed("latestTime") {
		cfg.Time.Latest = latestTime
	}
	if flags.Changed("noZero") {
		cfg.Time.NoZero = noZero
	}
	if flags.Changed("constant") {
		cfg.Time.Constant = constant
	}

	if flags.Lookup("rhoRef") == nil {
		return cfg, nil
	}
	if flags.Changed("rhoRef") {
		v := rhoRef
		cfg.RhoRef = &v
	} else if flags.Changed("fluid") {
		cfg.RhoRef = nil
		cfg.Fluid = fluid
	}
	if flags.Changed("poffset") {
		cfg.POffset = poffset
	}
	if flags.Changed("inverse") {
		cfg.Inverse = inverse
	}
	if flags.Changed("pName") {
		cfg.Fields.Pressure = pName
	}
	if flags.Changed("phiName") {
		cfg.Fields.Flux = phiName
	}
	return cfg, nil
}

func timeOptions(cfg *config.Config) (timesel.Options, error) {
	opts := timesel.Options{
		Latest:   cfg.Time.Latest,
		NoZero:   cfg.Time.NoZero,
		Constant: cfg.Time.Constant,
	}
	if cfg.Time.Select != "" {
		rs, err := timesel.ParseRanges(cfg.Time.Select)
		if err != nil {
			return timesel.Options{}, err
		}
		opts.Ranges = rs
	}
	return opts, nil
}

func conversionParams(cfg *config.Config) (convert.Params, error) {
	rho, err := cfg.ReferenceDensity()
	if err != nil {
		return convert.Params{}, err
	}
	return convert.NewParams(rho, cfg.POffset)
}

func openStore(cfg *config.Config) (storage.Store, storage.Format, error) {
	f, err := storage.ParseFormat(cfg.Format)
	if err != nil {
		return nil, "", err
	}
	st, err := storage.Open(f, cfg.Case)
	if err != nil {
		return nil, "", err
	}
	return st, f, nil
}
