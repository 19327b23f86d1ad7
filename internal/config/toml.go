package config

import (
	"github.com/BurntSushi/toml"
)

// TOML decodes documents written in TOML. It is the default format.
type TOML struct{}

func (TOML) Name() string { return "toml" }

func (TOML) Ext() string { return "toml" }

func (TOML) Decode(_ string, data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
