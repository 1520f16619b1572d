//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and starts the demo with debug logging.
func (Run) Demo() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run meshrt...")
	_, err := executeCmd(binaryPath, withArgs("-config", "brushrt.toml", "-debug"), withStream())
	return err
}
