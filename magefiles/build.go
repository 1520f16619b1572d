//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gekko3d/brushrt/meshrt/rt/shaders"
	"github.com/gogpu/naga"
	"github.com/magefile/mage/mg"
)

const (
	binaryPath = "bin/meshrt"
	spirvDir   = "bin/shaders"
)

type Build mg.Namespace

// Compiles the demo binary into bin/.
func (Build) Binary() error {
	mg.Deps(Build.Shaders)
	_, err := executeCmd("go", withArgs("build", "-o", binaryPath, "./meshrt"), withEnv("CGO_ENABLED=1"), withStream())
	return err
}

// Validates the embedded WGSL by compiling it to SPIR-V under bin/shaders.
func (Build) Shaders() error {
	if err := os.MkdirAll(spirvDir, 0o755); err != nil {
		return err
	}
	for name, src := range map[string]string{
		"mesh":  shaders.MeshWGSL,
		"brush": shaders.BrushWGSL,
	} {
		spirv, err := naga.Compile(src)
		if err != nil {
			return fmt.Errorf("%s.wgsl: %w", name, err)
		}
		out := filepath.Join(spirvDir, name+".spv")
		if err := os.WriteFile(out, spirv, 0o644); err != nil {
			return err
		}
		fmt.Printf("%s.wgsl -> %s (%d bytes)\n", name, out, len(spirv))
	}
	return nil
}
