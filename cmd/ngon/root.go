package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/ngon"
	"github.com/gogpu/ngon/internal/config"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	sides      int
	background string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "ngon",
		Short:         "Draw a regular N-gon with a rainbow triangle fan",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setupLogging(stderr, g.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.IntVarP(&g.sides, "sides", "n", ngon.DefaultSides, "initial number of sides")
	pf.StringVar(&g.background, "background", "", "background color name or #rrggbb")

	run := newRunCmd(g)
	root.RunE = run.RunE
	root.Flags().AddFlagSet(run.Flags())

	root.AddCommand(
		run,
		newRenderCmd(g, stdout),
		newMeshCmd(g, stdout),
		newVersionCmd(stdout),
	)
	return root
}

// setupLogging installs a text handler on w at the named level.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	ngon.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadConfig reads the config file and applies explicitly set flags.
func loadConfig(cmd *cobra.Command, g *globalFlags) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("sides") {
		cfg.Sides = g.sides
	}
	if flags.Changed("background") {
		cfg.Background = g.background
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newController builds the side-count controller described by cfg.
func newController(cfg config.Config) *ngon.Controller {
	return ngon.NewController(ngon.NewCounter(cfg.Sides, cfg.MaxSides), nil, cfg.Options()...)
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(stdout, "ngon %s\n", ngon.Version)
			return err
		},
	}
}
