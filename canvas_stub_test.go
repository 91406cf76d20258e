//go:build !ebiten

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCanvasWithoutTag(t *testing.T) {
	d, err := initializeGame(testConfig())
	require.NoError(t, err)
	require.ErrorContains(t, runCanvas(d), "-tags ebiten")
}
