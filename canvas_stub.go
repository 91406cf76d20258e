//go:build !ebiten

package main

import "github.com/pkg/errors"

// runCanvas reports that the binary was built without window support
func runCanvas(*driver) error {
	return errors.New("[runCanvas] the canvas renderer requires building with -tags ebiten")
}
