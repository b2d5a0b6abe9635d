// Package window creates and drives an OS window through GLFW
package window

import (
	"github.com/ignite-laboratories/core"
	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

var ModuleName = "window"

func init() {
	gp1.Report()
	core.SubmoduleReport(gp1.ModuleName, ModuleName)
}

func Report() {}
