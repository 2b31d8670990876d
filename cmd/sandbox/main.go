package main

import (
	"flag"

	"github.com/kataras/golog"

	"github.com/hubastard/groveinput/cmd/sandbox/demo"
	"github.com/hubastard/groveinput/engine/config"
	"github.com/hubastard/groveinput/engine/core"
	glbackend "github.com/hubastard/groveinput/engine/gfx/gl"
	"github.com/hubastard/groveinput/engine/platform"
)

func main() {
	cfgPath := flag.String("config", "", "path to a .yaml, .yml or .toml config file")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			golog.Fatal(err)
		}
	}
	golog.SetLevel(cfg.Logging.Level)

	app, err := demo.NewApp(cfg)
	if err != nil {
		golog.Fatal(err)
	}

	if *cfgPath != "" {
		w, err := config.Watch(*cfgPath, func(f *config.File) {
			if err := app.Apply(f); err != nil {
				golog.Errorf("keeping previous bindings: %v", err)
				return
			}
			golog.SetLevel(f.Logging.Level)
		})
		if err != nil {
			golog.Warnf("config hot reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	backend := cfg.Window.Backend
	newWindow := func(ec core.Config) (core.Window, error) {
		if backend == config.BackendSDL {
			w, err := platform.NewSDLWindow(ec, nil)
			if err != nil {
				return nil, err
			}
			return w, nil
		}
		w, err := platform.NewGLFWWindow(ec, nil)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	newRenderer := func(win core.Window, ec core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win, ec)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	if err := core.Run(app, cfg.EngineConfig(), newWindow, newRenderer); err != nil {
		golog.Fatal(err)
	}
}
