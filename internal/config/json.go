package config

import (
	"errors"

	"github.com/tidwall/gjson"
)

// JSON decodes documents written in JSON. The top-level value must be an
// object. Numbers decode as float64; Value converts them to integer kinds.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Ext() string { return "json" }

func (JSON) Decode(_ string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, errors.New("top-level JSON value must be an object")
	}
	values, ok := res.Value().(map[string]any)
	if !ok {
		return nil, errors.New("top-level JSON value must be an object")
	}
	return values, nil
}
