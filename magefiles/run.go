//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Compiles the shaders and runs the teapot example.
func (Run) Teapot() error {
	if err := buildShaders(); err != nil {
		return err
	}
	fmt.Println("Run teapot...")
	if _, err := executeCmd("go", withArgs("run", "."), withDir("examples/teapot"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the test suite.
func (Run) Tests() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
