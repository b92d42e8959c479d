//go:build !nogpu

package main

import (
	"github.com/gogpu/ngon"
	"github.com/gogpu/ngon/internal/config"
	"github.com/gogpu/ngon/internal/window"
)

func runGoGPU(ctrl *ngon.Controller, cfg config.Config) error {
	return window.New(ctrl, window.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: cfg.BackgroundColor(),
	}).Run()
}
