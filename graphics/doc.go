// Package graphics attaches an OpenGL context to a window's native handle
package graphics

import (
	"github.com/ignite-laboratories/core"
	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

var ModuleName = "graphics"

func init() {
	gp1.Report()
	core.SubmoduleReport(gp1.ModuleName, ModuleName)
}

func Report() {}
