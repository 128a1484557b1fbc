package commands

import (
	"github.com/spf13/cobra"

	"bluechips/internal/app"
)

// defaultLogLevel is the CLI level when no config source sets one.
const defaultLogLevel = "warn"

var (
	configPath string
	logLevel   string
	marker     string
	appCtx     *app.Wire
)

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "bluechips",
		Short:        "Split an amount by share expressions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			base := app.DefaultConfig()
			base.Logging.Level = defaultLogLevel
			cfg, err := app.LoadOver(configPath, base)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if cmd.Flags().Changed("marker") {
				cfg.Split.IndeterminateMarker = marker
			}
			// The CLI has no /metrics endpoint to serve.
			cfg.Server.Metrics = false
			if err := cfg.Validate(); err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&marker, "marker", "", "text shown for indeterminate results (default native NaN/Infinity)")

	root.AddCommand(splitCmd(), evalCmd(), renderCmd(), evenCmd())
	return root
}
