package main

import (
	"fmt"
	"os"

	"github.com/bitly/go-simplejson"
)

// Config is the on-disk shape of .xdrc.json: a scratch two-key project
// file with no fixed schema worth declaring a struct for beyond what
// go-simplejson's ad hoc accessors already give us.
type Config struct {
	Schemas []string
	Out     string
}

// defaultConfigPath is the project file cmd/xdrc looks for when --config
// is not given.
const defaultConfigPath = ".xdrc.json"

// loadConfig reads path with go-simplejson. A missing file is not an
// error — it means "no project file, rely on CLI flags and arguments".
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Out: "."}, nil
		}
		return nil, fmt.Errorf("xdrc: reading %s: %w", path, err)
	}

	js, err := simplejson.NewJson(data)
	if err != nil {
		return nil, fmt.Errorf("xdrc: parsing %s: %w", path, err)
	}

	schemas, err := js.Get("schemas").StringArray()
	if err != nil {
		schemas = nil
	}
	out := js.Get("out").MustString(".")

	return &Config{Schemas: schemas, Out: out}, nil
}
