//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/ngon.wgsl
var fanShaderSource string

// ValidateShader compiles the fan shader with naga. The HAL backend compiles
// WGSL again at pipeline creation; this catches shader errors before a
// window is opened.
func ValidateShader() error {
	if fanShaderSource == "" {
		return fmt.Errorf("fan shader source is empty")
	}
	if _, err := naga.Compile(fanShaderSource); err != nil {
		return fmt.Errorf("compile fan shader: %w", err)
	}
	return nil
}
