package commands

import (
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"roomkey/internal/app"
	"roomkey/internal/services/catalog"
)

var (
	cfgPath   string
	inputPath string
	verbose   bool
	noColor   bool
	appCtx    *app.Wire
)

// NewRootCmd builds the roomkey command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "roomkey",
		Short:        "Validate and decrypt room identifiers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input") {
				cfg.Input = inputPath
			}
			log, err := app.NewLogger(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			if noColor {
				color.Enable = false
			}

			appCtx = app.NewWire(cfg, log)
			appCtx.Input.Stdin = cmd.InOrStdin()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "input file (- for stdin)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(sumCmd(), findCmd(), listCmd(), decryptCmd(), checksumCmd(), fingerprintCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return Run(NewRootCmd())
}

// Run executes root and flushes the logger whether or not the command failed.
func Run(root *cobra.Command) error {
	appCtx = nil
	err := root.Execute()
	if appCtx != nil {
		_ = appCtx.Log.Sync()
	}
	return err
}

// loadCatalog reads the configured input once and parses it.
func loadCatalog() (*catalog.Catalog, error) {
	return appCtx.Catalog.Load()
}
