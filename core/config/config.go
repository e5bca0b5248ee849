package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tristendillon/umdgen/core/loader"
	"github.com/tristendillon/umdgen/core/logger"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoMarker = errors.New("no umdgen marker found")

	reMarker = regexp.MustCompile(`(?m)^\s*//\s*umdgen\s+(\{.*\})\s*$`)
)

// DefaultFiles are looked up in the working directory when no path is given.
var DefaultFiles = []string{"umd.yaml", "umd.yml"}

type Config struct {
	Name            string              `yaml:"name"`
	Depends         map[string][]string `yaml:"depends"`
	FunctionsNeeded map[string]bool     `yaml:"-"`
}

var _ loader.Config = (*Config)(nil)

func Default() *Config {
	return &Config{
		Name:            "module",
		Depends:         map[string][]string{},
		FunctionsNeeded: map[string]bool{},
	}
}

// Load reads the config at path. An empty path falls back to DefaultFiles
// and then to Default(). JavaScript sources are scanned for a marker comment.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := FindDefault()
		if err != nil {
			return nil, err
		}
		if found == "" {
			logger.Debug("No config file found, using default config")
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".js") {
		cfg, err = ParseMarker(data)
	} else {
		cfg, err = parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", *cfg)
	return cfg, nil
}

// ParseMarker decodes the JSON object of the first `// umdgen {...}` comment.
func ParseMarker(content []byte) (*Config, error) {
	m := reMarker.FindSubmatch(content)
	if m == nil {
		return nil, ErrNoMarker
	}
	// JSON is a subset of YAML
	return parse(m[1])
}

func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if cfg.Depends == nil {
		cfg.Depends = map[string][]string{}
	}
	return cfg, nil
}

// FindDefault returns the first of DefaultFiles present in the working
// directory, or "" when there is none.
func FindDefault() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working dir: %w", err)
	}
	for _, name := range DefaultFiles {
		p := filepath.Join(wd, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// DependsProperty returns a copy of the dependency list stored under name.
func (c *Config) DependsProperty(name string) []string {
	deps, ok := c.Depends[name]
	if !ok {
		return nil
	}
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

func (c *Config) NeedFunction(name string) {
	if c.FunctionsNeeded == nil {
		c.FunctionsNeeded = map[string]bool{}
	}
	c.FunctionsNeeded[name] = true
}

// NeededFunctions lists the flagged helper functions in sorted order.
func (c *Config) NeededFunctions() []string {
	names := make([]string, 0, len(c.FunctionsNeeded))
	for name, needed := range c.FunctionsNeeded {
		if needed {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
