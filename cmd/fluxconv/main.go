package main

import (
	"os"

	"github.com/san-kum/fluxconv/internal/convert"
	"github.com/san-kum/fluxconv/internal/timesel"
	"github.com/spf13/cobra"
)

var (
	caseDir    string
	format     string
	configFile string
	debug      bool
	// time selection
	timeRanges timesel.Ranges
	latestTime bool
	noZero     bool
	constant   bool
	// conversion
	rhoRef  float64
	poffset float64
	inverse bool
	fluid   string
	pName   string
	phiName string
	dryRun  bool
	pick    bool
	// inspect
	plotWidth  int
	plotHeight int
	exportPath string
)

// main runs the root command and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	timeRanges = nil

	rootCmd := &cobra.Command{
		Use:   "fluxconv",
		Short: "convert pressure and flux fields between kinematic and dynamic form",
		Long: `fluxconv reads the pressure and flux fields of one time of a case and
writes rho-prefixed copies in the other convention.

Without --inverse, kinematic pressure (m2/s2) and volume flux (m3/s) become
dynamic pressure (Pa) and mass flux (kg/s). With --inverse the opposite
conversion is made. Fields already in the target convention are left alone.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runConvert,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&caseDir, "case", ".", "case directory")
	pf.StringVar(&format, "format", "yaml", "field storage format (yaml, hdf5, sqlite)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.BoolVar(&debug, "debug", false, "verbose logging")
	pf.Var(timesel.RangesValue{Ranges: &timeRanges}, "time", "comma separated times and ranges, e.g. '0.5,1:2'")
	pf.BoolVar(&latestTime, "latestTime", false, "select the latest time")
	pf.BoolVar(&noZero, "noZero", false, "exclude time 0")
	pf.BoolVar(&constant, "constant", false, "include the constant directory")

	f := rootCmd.Flags()
	f.Float64Var(&rhoRef, "rhoRef", 0, "reference density (required unless set by config or fluid)")
	f.Float64Var(&poffset, "poffset", 0, "pressure offset")
	f.BoolVar(&inverse, "inverse", false, "convert dynamic fields back to kinematic")
	f.StringVar(&fluid, "fluid", "", "take the reference density from a fluid preset")
	f.StringVar(&pName, "pName", convert.DefaultPressureName, "pressure field name")
	f.StringVar(&phiName, "phiName", convert.DefaultFluxName, "flux field name")
	f.BoolVar(&dryRun, "dry-run", false, "report what would be converted without writing")
	f.BoolVar(&pick, "pick", false, "choose the time interactively")

	timesCmd := &cobra.Command{
		Use:   "times",
		Short: "list the times of a case",
		Args:  cobra.NoArgs,
		RunE:  listTimes,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [field]",
		Short: "summarize and plot a field at the selected time",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectField,
	}
	inspectCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	inspectCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	inspectCmd.Flags().StringVar(&exportPath, "export", "", "also write the field to a .json or .csv file")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list past conversions of a case",
		Args:  cobra.NoArgs,
		RunE:  listHistory,
	}
	historyCmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "show one recorded conversion",
		Args:  cobra.ExactArgs(1),
		RunE:  showHistory,
	})

	fluidsCmd := &cobra.Command{
		Use:   "fluids",
		Short: "list fluid presets",
		Args:  cobra.NoArgs,
		RunE:  listFluids,
	}

	rootCmd.AddCommand(timesCmd, inspectCmd, historyCmd, fluidsCmd)
	return rootCmd
}
