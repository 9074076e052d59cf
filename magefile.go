// +build mage

// This is a magefile, and is a "makefile for go".
// See https://magefile.org/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carolynvs/magex/shx"
	"github.com/magefile/mage/mg"
)

// Any commands executed by "must" (as opposed to shx.RunV for example), will stop
// the build immediately when the command fails.
var must = shx.CommandBuilder{StopOnError: true}

const versionPkg = "github.com/lovethedrake/pigjob/pkg/version"

// Check that go.mod and go.sum are tidy
func VerifyTidy() error {
	must.RunV("go", "mod", "tidy")
	output, _ := must.OutputE("git", "status", "--porcelain", "go.mod", "go.sum")
	if output != "" {
		return fmt.Errorf("go.mod is not tidy:\n%s", output)
	}
	return nil
}

// Compile the pigjob CLI into bin/
func Build() {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "edge"
	}
	commit, _ := must.OutputE("git", "rev-parse", "--short", "HEAD")
	ldflags := fmt.Sprintf(
		"-X %s.version=%s -X %s.commit=%s",
		versionPkg, version, versionPkg, commit,
	)
	must.RunV("go", "build", "-ldflags", ldflags,
		"-o", filepath.Join("bin", "pigjob"), "./cmd/pigjob")
}

// Run unit tests
func Test() {
	coverageFile := filepath.Join(getOutputDir(), "coverage.txt")
	must.RunV("go", "test", "-timeout=30s", "-race", "-coverprofile", coverageFile, "-covermode=atomic", "./cmd/...", "./pkg/...")
}

// Build and test
func All() {
	mg.SerialDeps(Test, Build)
}

var outDir = ""

func getOutputDir() string {
	if outDir != "" {
		return outDir
	}
	const sharedVolume = "/shared"
	if _, err := os.Stat(sharedVolume); err == nil {
		return sharedVolume
	}

	return "."
}
