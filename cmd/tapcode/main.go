package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danmuck/tapcode/internal/config"
	"github.com/danmuck/tapcode/internal/logging"
	"github.com/danmuck/tapcode/internal/shell"
	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	alphabetFlag string
	markerFlag   string
	gridFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "tapcode",
	Short: "Encode and decode text with the Tap Code cipher",
	Long: `Tap Code maps each letter of a 5x5 grid to a pair of tap counts (row, column).

Run without a subcommand to start the interactive menu. Words in tapcode are
separated by '|', taps by spaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, active, err := resolve(cmd)
		if err != nil {
			return err
		}
		noColor := cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
		styles := shell.NewStyles(lipgloss.NewRenderer(cmd.OutOrStdout()), noColor)
		app := shell.NewApp(cmd.InOrStdin(), cmd.OutOrStdout(), active, config.Store(cfg), styles)
		return app.Run()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	flags.StringVar(&alphabetFlag, "alphabet", "", "25 character grid alphabet (overrides config)")
	flags.StringVar(&markerFlag, "marker", "", "tap marker character (overrides config)")
	flags.StringVar(&gridFileFlag, "grid-file", "", "grid file used by save/load (overrides config)")
}

// resolve loads config, applies flag overrides and builds the startup grid.
// Persistent flags are merged into cmd's flag set by the time RunE runs.
func resolve(cmd *cobra.Command) (config.Config, *tapcode.Active, error) {
	flags := cmd.Flags()
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flags.Changed("alphabet") {
		cfg.Alphabet = strings.TrimSpace(alphabetFlag)
	}
	if flags.Changed("marker") {
		cfg.TapMarker = markerFlag
	}
	if flags.Changed("grid-file") {
		cfg.GridFile = strings.TrimSpace(gridFileFlag)
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, nil, err
	}
	g, err := config.Grid(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	log.Debug().Str("grid", g.Alphabet()).Str("marker", string(g.Marker())).Msg("config resolved")
	return cfg, tapcode.NewActive(g), nil
}

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
