//go:build nogpu

package main

import (
	"errors"

	"github.com/gogpu/ngon"
	"github.com/gogpu/ngon/internal/config"
)

func runGoGPU(*ngon.Controller, config.Config) error {
	return errors.New("built with -tags nogpu; use --backend ebiten")
}
