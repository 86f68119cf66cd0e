//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the example shaders to SPIR-V with glslc.
func (Build) Shaders() error {
	return buildShaders()
}

func buildShaders() error {
	if _, err := executeCmd("glslc",
		withArgs("shaders/shader.vert", "-o", "shaders/vert.spv"),
		withDir("examples/teapot"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("glslc",
		withArgs("shaders/shader.frag", "-o", "shaders/frag.spv"),
		withDir("examples/teapot"), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds every package in the module.
func (Build) All() error {
	if _, err := executeCmd("go", withArgs("build", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
