//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package's tests.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the GPU-free packages only, for machines without a display.
func (Test) Core() error {
	_, err := executeCmd("go", withArgs("test", ".", "./meshrt/rt/core/...", "./meshrt/rt/shaders/..."), withStream())
	return err
}
