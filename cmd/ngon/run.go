package main

import (
	"github.com/gogpu/ngon/internal/config"
	"github.com/gogpu/ngon/internal/ebitenwin"
	"github.com/spf13/cobra"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open an interactive window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = backend
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runWindow(cfg)
		},
	}
	cmd.Flags().StringVarP(&backend, "backend", "b", config.BackendGoGPU, "window backend: gogpu or ebiten")
	return cmd
}

func runWindow(cfg config.Config) error {
	ctrl := newController(cfg)
	if cfg.Backend == config.BackendEbiten {
		return ebitenwin.Run(ctrl, ebitenwin.Options{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Background: cfg.BackgroundColor(),
		})
	}
	return runGoGPU(ctrl, cfg)
}
