package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meetslot/internal/api"
	"github.com/nikmy/meetslot/internal/calendar"
	"github.com/nikmy/meetslot/internal/finder"
	"github.com/nikmy/meetslot/pkg/environment"
	"github.com/nikmy/meetslot/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Finder      finder.Config   `yaml:"Finder"`
	API         api.Config      `yaml:"API"`
	Calendar    calendar.Config `yaml:"Calendar"`

	ShutdownTimeout time.Duration `yaml:"ShutdownTimeout"`
}

type flags struct {
	config string
	env    string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "config.yaml", "path to config file")
	flag.StringVar(&f.env, "env", "", "environment (dev, prod)")
	flag.Parse()
	return f
}

func loadConfig(f flags) (*Config, error) {
	path, err := filepath.Abs(f.config)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	cfg := Config{ShutdownTimeout: 5 * time.Second}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	return &cfg, nil
}
