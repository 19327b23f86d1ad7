package app

import (
	"fmt"

	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/hcl_adapter"
)

// formatFor maps a -config-format value to its implementation.
func formatFor(name string) (config.Format, error) {
	switch name {
	case "toml":
		return config.TOML{}, nil
	case "json":
		return config.JSON{}, nil
	case "hcl":
		return hcl_adapter.NewFormat(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want toml, json or hcl)", config.ErrUnknownFormat, name)
	}
}
