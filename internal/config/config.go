// Package config loads the tlbind.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// FileName is the name of the configuration file
const FileName = "tlbind.json"

// Config represents the tlbind.json configuration file
type Config struct {
	Schema       string             `json:"schema"`
	FileBase     string             `json:"fileBase"`
	Comments     bool               `json:"comments"`
	Binding      BindingConfig      `json:"binding"`
	Declarations DeclarationsConfig `json:"declarations"`
	Verify       VerifyConfig       `json:"verify"`
	Dev          DevConfig          `json:"dev"`
}

// BindingConfig contains options of the Go binding
type BindingConfig struct {
	Output        string `json:"output"`
	Package       string `json:"package"`
	APIImport     string `json:"apiImport"`
	RuntimeImport string `json:"runtimeImport"`
}

// DeclarationsConfig contains options of the external declarations
type DeclarationsConfig struct {
	Output     string `json:"output"`
	ClientName string `json:"clientName"`
}

// VerifyConfig controls the reference converter round trip run before writing
type VerifyConfig struct {
	Enabled bool  `json:"enabled"`
	Samples int   `json:"samples"`
	Seed    int64 `json:"seed"`
}

// DevConfig contains watch mode configuration
type DevConfig struct {
	Watch   []string `json:"watch"`
	Exclude []string `json:"exclude"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfigFromPath loads a configuration file. Relative paths in the file
// are resolved against the directory that contains it.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.resolve(filepath.Dir(path))
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Schema == "" {
		c.Schema = "./schema.json"
	}
	if c.Binding.Output == "" {
		c.Binding.Output = "./binding"
	}
	if c.Binding.Package == "" {
		c.Binding.Package = PackageName(c.Binding.Output)
	}
	if c.Declarations.Output == "" {
		c.Declarations.Output = "./types"
	}
	if c.Verify.Samples <= 0 {
		c.Verify.Samples = 16
	}
	if c.Verify.Seed == 0 {
		c.Verify.Seed = 1
	}
	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = []string{filepath.Base(c.Schema)}
	}
	if len(c.Dev.Exclude) == 0 {
		c.Dev.Exclude = []string{".git/", "*.d.ts", "*_types.go", "*_convert.go"}
	}
}

// PackageName derives a Go package name from an output directory. Names
// that cannot be made into an identifier fall back to "binding".
func PackageName(dir string) string {
	base := strings.ToLower(filepath.Base(filepath.Clean(dir)))
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, base)
	if name == "" || unicode.IsDigit(rune(name[0])) {
		return "binding"
	}
	return name
}

// SetPaths replaces the schema and output locations, as given on the
// command line. The watch list follows the new schema.
func (c *Config) SetPaths(schema, bindingOut, declarationsOut string) {
	c.Schema = schema
	c.Binding.Output = bindingOut
	c.Declarations.Output = declarationsOut
	c.Dev.Watch = []string{filepath.Base(schema)}
}

// resolve makes the relative paths of c relative to dir
func (c *Config) resolve(dir string) {
	for _, p := range []*string{&c.Schema, &c.Binding.Output, &c.Declarations.Output} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
