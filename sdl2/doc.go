// Package sdl2 creates and drives an OS window through SDL2
package sdl2

import (
	"github.com/ignite-laboratories/core"
	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

var ModuleName = "sdl2"

func init() {
	gp1.Report()
	core.SubmoduleReport(gp1.ModuleName, ModuleName)
}

func Report() {}
