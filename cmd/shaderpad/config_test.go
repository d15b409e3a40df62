package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "shaderpad", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, "shaders/shader.wgsl", cfg.ShaderPath)
	assert.True(t, cfg.VSync)
	assert.False(t, cfg.Watch)
	assert.False(t, cfg.Profile)
	assert.Zero(t, cfg.FrameLimit)
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigFileOverridesBase(t *testing.T) {
	path := writeConfig(t, `
title: demo
width: 1920
height: 1080
shader_path: my/shader.wgsl
watch: true
frame_limit: 60
`)

	cfg, err := loadConfigFile(path, defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, "my/shader.wgsl", cfg.ShaderPath)
	assert.True(t, cfg.Watch)
	assert.Equal(t, float64(60), cfg.FrameLimit)

	// Fields absent from the file keep their base values.
	assert.True(t, cfg.VSync)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"), defaultConfig())
	assert.Error(t, err)
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := writeConfig(t, "title: [unclosed")
	_, err := loadConfigFile(path, defaultConfig())
	assert.Error(t, err)
}

func TestLoadConfigFileRejectsBadDimensions(t *testing.T) {
	path := writeConfig(t, "width: -1\nheight: 720\n")
	_, err := loadConfigFile(path, defaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}
