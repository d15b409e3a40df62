package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/shaderpad/engine"
	"github.com/Carmen-Shannon/shaderpad/engine/renderer"
	"github.com/Carmen-Shannon/shaderpad/engine/viewer"
	"github.com/Carmen-Shannon/shaderpad/engine/window"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("shaderpad: %v", err)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		shaderPath = flag.String("path", "", "WGSL shader file to load and watch")
		texture    = flag.String("texture", "", "optional image (PNG or JPEG) bound as a texture at group 2")
		title      = flag.String("title", "", "window title")
		width      = flag.Int("width", 0, "window width in pixels")
		height     = flag.Int("height", 0, "window height in pixels")
		vsync      = flag.Bool("vsync", true, "wait for vertical blank when presenting")
		watch      = flag.Bool("watch", false, "reload the shader automatically when the file changes")
		profile    = flag.Bool("profile", false, "log FPS and memory stats once per second")
		frameLimit = flag.Float64("fps", 0, "frame rate cap (0 = uncapped)")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfigFile(*configPath, cfg); err != nil {
			return err
		}
	}

	// Explicitly passed flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "path":
			cfg.ShaderPath = *shaderPath
		case "texture":
			cfg.TexturePath = *texture
		case "title":
			cfg.Title = *title
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "vsync":
			cfg.VSync = *vsync
		case "watch":
			cfg.Watch = *watch
		case "profile":
			cfg.Profile = *profile
		case "fps":
			cfg.FrameLimit = *frameLimit
		}
	})

	w, err := window.NewWindow(
		window.WithTitle(cfg.Title),
		window.WithWidth(cfg.Width),
		window.WithHeight(cfg.Height),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	rendererOptions := []renderer.RendererBuilderOption{}
	if !cfg.VSync {
		rendererOptions = append(rendererOptions, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}
	rend, err := renderer.NewRenderer(renderer.BackendTypeWGPU, w, rendererOptions...)
	if err != nil {
		return err
	}

	viewerOptions := []viewer.ViewerBuilderOption{
		viewer.WithShaderPath(cfg.ShaderPath),
	}
	if cfg.TexturePath != "" {
		viewerOptions = append(viewerOptions, viewer.WithTexture(cfg.TexturePath))
	}
	if cfg.Watch {
		viewerOptions = append(viewerOptions, viewer.WithFileWatching())
	}
	v := viewer.NewViewer(viewerOptions...)
	if err := v.Init(rend); err != nil {
		return err
	}
	defer v.Close()

	log.Printf("shaderpad: rendering %s (Enter or R reloads, Space cycles pipelines, Esc quits)", cfg.ShaderPath)

	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithViewer(v),
		engine.WithProfiling(cfg.Profile),
		engine.WithFrameLimit(cfg.FrameLimit),
	)
	e.Run()

	return nil
}
