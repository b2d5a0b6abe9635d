package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/mxtt-mmxix/GameProject-1/config"
	"github.com/mxtt-mmxix/GameProject-1/event"
	"github.com/mxtt-mmxix/GameProject-1/graphics"
	"github.com/mxtt-mmxix/GameProject-1/window"
)

func init() {
	// The window and its GL context live on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "sandbox.yaml", "path to the window settings file")
	flag.Parse()

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	events := event.NewHandler()
	win := window.New(cfg.WindowData(), events)
	if err := win.Init(); err != nil {
		log.Fatalf("init window: %v", err)
	}
	defer win.DeInit()

	ctx, err := graphics.Attach(win)
	if err != nil {
		log.Fatalf("attach graphics context: %v", err)
	}
	win.SetVSync(cfg.VSync)

	for !win.IsCloseRequested() {
		win.OnUpdate()
		events.Dispatch(func(e event.Event) {
			switch e := e.(type) {
			case event.WindowResize:
				log.Printf("resized to %dx%d", e.Width, e.Height)
				ctx.Viewport()
			case event.KeyPressed:
				if !e.Repeat {
					log.Printf("key %d pressed", e.Key)
				}
			}
		})

		ctx.Clear(0.1, 0.1, 0.12, 1)
		ctx.SwapBuffers()
	}
}
