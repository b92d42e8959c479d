package main

import (
	"fmt"
	"io"

	"github.com/gogpu/ngon"
	"github.com/gogpu/ngon/internal/snapshot"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	output   string
	width    int
	height   int
	caption  string
	fontPath string
	fontSize float64
	outline  float64
}

func newRenderCmd(g *globalFlags, stdout io.Writer) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the polygon to a PNG file without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			ctrl := newController(cfg)
			mesh := ctrl.Mesh()

			caption := f.caption
			if caption == "" && f.fontPath != "" {
				caption = fmt.Sprintf("Sides: %d", mesh.Sides())
			}

			width, height := f.width, f.height
			if width == 0 {
				width = cfg.Window.Width
			}
			if height == 0 {
				height = cfg.Window.Height
			}

			img, err := snapshot.Render(mesh, snapshot.Options{
				Width:        width,
				Height:       height,
				Background:   cfg.BackgroundColor(),
				Outline:      f.outline,
				OutlineColor: ngon.White,
				Caption:      caption,
				FontPath:     f.fontPath,
				FontSize:     f.fontSize,
			})
			if err != nil {
				return err
			}
			defer img.Close()

			if f.output == "-" {
				return img.EncodePNG(stdout)
			}
			if err := img.SavePNG(f.output); err != nil {
				return err
			}
			ngon.Logger().Info("render: saved", "path", f.output, "sides", mesh.Sides(), "width", width, "height", height)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "ngon.png", `output PNG path, or "-" for stdout`)
	fl.IntVar(&f.width, "width", 0, "image width (default: window width)")
	fl.IntVar(&f.height, "height", 0, "image height (default: window height)")
	fl.StringVar(&f.caption, "caption", "", `caption text (default "Sides: N" when --font is set)`)
	fl.StringVar(&f.fontPath, "font", "", "TrueType/OpenType font for the caption")
	fl.Float64Var(&f.fontSize, "font-size", snapshot.DefaultFontSize, "caption size in points")
	fl.Float64Var(&f.outline, "outline", 0, "perimeter outline width in pixels (0 disables)")
	return cmd
}
