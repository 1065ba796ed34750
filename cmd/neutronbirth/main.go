package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"
	"github.com/lukaszgryglicki/neutronbirth/internal/neutronbirth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath   string
	samples   int
	seed      int64
	noShow    bool
	debug     bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "neutronbirth [config]",
	Short: "Plot neutron birth locations sampled from a parametric plasma source",
	Long: `neutronbirth draws neutron births from a parametric plasma source and
writes an interactive 3D scatter plot of their locations, coloured by energy.

Example:
  neutronbirth
  neutronbirth -c configs/plasma.json -n 2000 --no-show`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (JSON, YAML or TOML); defaults reproduce the reference plasma")
	rootCmd.Flags().IntVarP(&samples, "samples", "n", -1, "number of neutron births to draw (overrides config)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config; 0 keeps config/clock)")
	rootCmd.Flags().BoolVar(&noShow, "no-show", false, "do not open the viewer")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "verbose debug output (or set DEBUG)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", neutronbirth.LogFormat, "log format: console or json")
}

func run(cmd *cobra.Command, args []string) error {
	debug = debug || os.Getenv("DEBUG") != ""
	neutronbirth.Debug = debug
	if err := neutronbirth.InitLogger(logFormat); err != nil {
		return err
	}
	defer func() { _ = neutronbirth.Sync() }()

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if cfgPath == "" && len(args) > 0 {
		cfgPath = args[0]
	}
	cfg, err := neutronbirth.LoadConfig(cfgPath)
	if err != nil {
		neutronbirth.Log.Error("Cannot load config", zap.String("path", cfgPath), zap.Error(err))
		return err
	}
	if samples >= 0 {
		cfg.Samples = samples
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if noShow {
		cfg.Show = false
	}
	return neutronbirth.RunConfig(cfg)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
