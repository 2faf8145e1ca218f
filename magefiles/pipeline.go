//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// defaultSheet is imported by Pipeline unless PLACEBOOK_SOURCE names another file.
const defaultSheet = "data/places.csv"

// Pipeline runs import, geocode, and catalog build against the local data directory.
func Pipeline() error {
	mg.Deps(Build)

	sheet := os.Getenv("PLACEBOOK_SOURCE")
	if sheet == "" {
		sheet = defaultSheet
	}

	steps := [][]string{
		{"import", sheet},
		{"geocode"},
		{"catalog", "build"},
	}
	for _, args := range steps {
		fmt.Printf("==> placebook %v\n", args)
		if err := sh.RunV(binPath(), args...); err != nil {
			return err
		}
	}
	return nil
}
