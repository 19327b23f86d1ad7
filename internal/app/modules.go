package app

import (
	"io"

	"github.com/vk/temples/internal/registry"
	"github.com/vk/temples/modules/linreg"
	"github.com/vk/temples/modules/print"
)

// coreModules is the definitive list of all modules that are compiled into
// the temples binary.
func coreModules(outW io.Writer) []registry.Module {
	return []registry.Module{
		&linreg.Module{},
		&print.Module{Out: outW},
	}
}
