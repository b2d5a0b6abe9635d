// Package event carries input and window notifications between engine subsystems
package event

import (
	"github.com/ignite-laboratories/core"
	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

var ModuleName = "event"

func init() {
	gp1.Report()
	core.SubmoduleReport(gp1.ModuleName, ModuleName)
}

func Report() {}
