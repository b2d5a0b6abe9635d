// Package gp1 provides the windowing and input layer of the GameProject-1 engine.
package gp1

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "gp1"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
