package config

import (
	"fmt"
	"os"
	"strings"

	"dngen/pkg/log"
	"dngen/pkg/model"
	"dngen/pkg/runner"
	"dngen/pkg/system"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile = "./dngen.yaml"
	DefaultTool = "dotnet"
	DefaultVerb = "generate"
)

// Config controls how the generator tool is located and invoked.
type Config struct {
	Tool        string   `yaml:"tool"`
	Verb        string   `yaml:"verb"`
	Shell       bool     `yaml:"shell"`
	Workspaces  []string `yaml:"workspaces"`
	ShowChanges bool     `yaml:"show_changes"`
}

func Default() *Config {
	return &Config{
		Tool: DefaultTool,
		Verb: DefaultVerb,
	}
}

// LoadConfig reads filename from system.AppFs on top of the defaults.
// A missing file is only tolerated when it is the default location.
func LoadConfig(filename string, logger log.Logger) (*Config, error) {
	cfg := Default()

	content, err := afero.ReadFile(system.AppFs, filename)
	if err != nil {
		if os.IsNotExist(err) && filename == DefaultFile {
			logger.Debug("No config file found, using defaults", "path", filename)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	logger.Debug("Loaded config", "path", filename, "tool", cfg.Tool, "verb", cfg.Verb)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

func (c *Config) Validate() model.ValidationErrors {
	var errs model.ValidationErrors
	switch {
	case strings.TrimSpace(c.Tool) == "":
		errs = append(errs, model.ValidationError{Field: "tool", Message: "must not be empty"})
	case strings.ContainsAny(c.Tool, " \t\n") && !toolExists(c.Tool):
		// Paths with spaces are fine as long as they name a file.
		errs = append(errs, model.ValidationError{Field: "tool", Message: "must be a single executable path, not a command line"})
	}
	switch {
	case strings.TrimSpace(c.Verb) == "":
		errs = append(errs, model.ValidationError{Field: "verb", Message: "must not be empty"})
	case strings.ContainsAny(c.Verb, " \t\n"):
		errs = append(errs, model.ValidationError{Field: "verb", Message: "must not contain whitespace"})
	}
	for i, ws := range c.Workspaces {
		if strings.TrimSpace(ws) == "" {
			errs = append(errs, model.ValidationError{Field: fmt.Sprintf("workspaces[%d]", i), Message: "must not be empty"})
		}
	}
	return errs
}

func toolExists(path string) bool {
	ok, err := afero.Exists(system.AppFs, path)
	return err == nil && ok
}

// Command builds "<tool> <verb> <kind> <fileName>". The file name is a
// single argument and is never split or interpreted.
func (c *Config) Command(schematic model.Schematic, fileName string) runner.Command {
	return runner.Command{
		Name:  c.Tool,
		Args:  []string{c.Verb, schematic.Value, fileName},
		Shell: c.Shell,
	}
}
