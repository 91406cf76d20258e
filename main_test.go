package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

func TestLoadConfigFlags(t *testing.T) {
	config, err := loadConfig([]string{"-renderer", "canvas", "-resolution", "20"})
	require.NoError(t, err)
	require.Equal(t, utils.RendererCanvas, config.Renderer)
	columns, rows := config.GridSize()
	require.Equal(t, 50, columns)
	require.Equal(t, 50, rows)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := loadConfig([]string{"-renderer", "opengl"})
	require.Error(t, err)

	_, err = loadConfig([]string{"-no-such-flag"})
	require.Error(t, err)
}
