package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the resolved command-line surface: two required positional paths
// plus optional conversion settings. Defaults for the optional settings may
// come from ~/.config/termscribe/config.
type Config struct {
	InputPath   string
	OutputPath  string
	Verbose     bool
	ProfilePath string
	IndexPath   string
	ConfigPath  string
}

func Load() (*Config, error) {
	cfg := &Config{}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	cfg.ConfigPath = filepath.Join(homeDir, ".config", "termscribe", "config")

	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	flag.BoolVar(&cfg.Verbose, "v", false, "print a conversion summary on success")
	flag.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "prompt profile YAML file (optional)")
	flag.StringVar(&cfg.IndexPath, "index", cfg.IndexPath, "sqlite database to archive the run into (optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input> <output>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		return nil, fmt.Errorf("expected input and output paths, got %d arguments", len(args))
	}
	cfg.InputPath = args[0]
	cfg.OutputPath = args[1]

	return cfg, nil
}

func (c *Config) loadFromFile() error {
	data, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		switch key {
		case "ProfilePath":
			c.ProfilePath = value
		case "IndexPath":
			c.IndexPath = value
		}
	}
	return nil
}
