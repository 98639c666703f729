//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var commands = []string{"cleaner", "lexicon-builder", "lookup"}

// Default target to run when none is specified
var Default = Build

// Build compiles all commands into bin/
func Build() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	for _, name := range commands {
		fmt.Println("Building", name)
		// go-sqlite3 needs cgo
		env := map[string]string{"CGO_ENABLED": "1"}
		if err := sh.RunWith(env, "go", "build", "-o", filepath.Join("bin", name), "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install installs all commands into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	for _, name := range commands {
		if err := sh.RunV("go", "install", "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
