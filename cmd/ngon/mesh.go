package main

import (
	"fmt"
	"io"

	"github.com/gogpu/ngon"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type meshDoc struct {
	Sides     int         `yaml:"sides"`
	Vertices  []vertexDoc `yaml:"vertices"`
	Triangles [][3]uint32 `yaml:"triangles"`
}

type vertexDoc struct {
	Position [3]float32 `yaml:"position,flow"`
	Color    [3]float32 `yaml:"color,flow"`
}

func newMeshDoc(m ngon.Mesh) meshDoc {
	doc := meshDoc{
		Sides:     m.Sides(),
		Vertices:  make([]vertexDoc, len(m.Vertices)),
		Triangles: make([][3]uint32, len(m.Triangles)),
	}
	for i, v := range m.Vertices {
		doc.Vertices[i] = vertexDoc{
			Position: v.Position,
			Color:    [3]float32{v.Color.R, v.Color.G, v.Color.B},
		}
	}
	for i, t := range m.Triangles {
		doc.Triangles[i] = t
	}
	return doc
}

func newMeshCmd(g *globalFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "mesh",
		Short: "Print the generated vertices and triangles as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(stdout)
			enc.SetIndent(2)
			if err := enc.Encode(newMeshDoc(newController(cfg).Mesh())); err != nil {
				return fmt.Errorf("encode mesh: %w", err)
			}
			return enc.Close()
		},
	}
}
