package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Values come from defaults, then an
// optional YAML config file, then command-line flags, each layer overriding
// the one below it.
type Config struct {
	Title       string  `yaml:"title"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ShaderPath  string  `yaml:"shader_path"`
	TexturePath string  `yaml:"texture_path"`
	VSync       bool    `yaml:"vsync"`
	Watch       bool    `yaml:"watch"`
	Profile     bool    `yaml:"profile"`
	FrameLimit  float64 `yaml:"frame_limit"`
}

// defaultConfig returns the built-in settings used when neither the config
// file nor flags say otherwise.
func defaultConfig() Config {
	return Config{
		Title:      "shaderpad",
		Width:      1280,
		Height:     720,
		ShaderPath: "shaders/shader.wgsl",
		VSync:      true,
	}
}

// loadConfigFile reads a YAML config file over the given base config.
// Fields absent from the file keep their base values.
func loadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return base, fmt.Errorf("config file %q: window dimensions must be positive", path)
	}

	return cfg, nil
}
