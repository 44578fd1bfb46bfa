package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Insert []int
	Find   []int
	Remove []int
	Style  string
	Debug  bool
}

// loadConfig reads the demo settings from v. Value lists are comma separated so
// that they can come from either flags or BSTDEMO_* environment variables.
func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Style: v.GetString("style"),
		Debug: v.GetBool("debug"),
	}

	var err error
	if cfg.Insert, err = parseValues(v.GetString("insert")); err != nil {
		return nil, errors.Wrap(err, "insert")
	}
	if cfg.Find, err = parseValues(v.GetString("find")); err != nil {
		return nil, errors.Wrap(err, "find")
	}
	if cfg.Remove, err = parseValues(v.GetString("remove")); err != nil {
		return nil, errors.Wrap(err, "remove")
	}
	if len(cfg.Insert) == 0 {
		return nil, errors.New("at least one insert value is required")
	}
	return cfg, nil
}
