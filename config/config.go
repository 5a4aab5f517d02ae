package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "wren.yaml"
	DefaultInputFile  = "input.txt"

	DefaultTokensFile  = "tokens.txt"
	DefaultRulesFile   = "parse.txt"
	DefaultSymbolsFile = "symbol_table.txt"
)

type Config struct {
	// Grammar report path.  Empty selects the embedded report.
	Grammar string `yaml:"grammar"`

	OutputDir   string `yaml:"output_dir"`
	TokensFile  string `yaml:"tokens_file"`
	RulesFile   string `yaml:"rules_file"`
	SymbolsFile string `yaml:"symbols_file"`

	// When set, each input's reports are written to a subdirectory named
	// after the input.
	PerFileDir bool `yaml:"per_file_dir"`
}

func Default() *Config {
	return &Config{
		OutputDir:   ".",
		TokensFile:  DefaultTokensFile,
		RulesFile:   DefaultRulesFile,
		SymbolsFile: DefaultSymbolsFile,
	}
}

// Load reads the configuration file on top of the defaults.  A missing file
// is only an error when required is set.
func Load(path string, required bool) (*Config, error) {
	config := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	err = config.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

func (config *Config) Parse(content []byte) error {
	err := yaml.Unmarshal(content, config)
	if err != nil {
		return err
	}

	return config.Validate()
}

func (config *Config) Validate() error {
	if config.OutputDir == "" {
		config.OutputDir = "."
	}

	names := map[string]string{
		"tokens_file":  config.TokensFile,
		"rules_file":   config.RulesFile,
		"symbols_file": config.SymbolsFile,
	}

	seen := map[string]string{}
	for _, field := range []string{"tokens_file", "rules_file", "symbols_file"} {
		name := names[field]
		if name == "" {
			return fmt.Errorf("%s must not be empty", field)
		}

		other, ok := seen[name]
		if ok {
			return fmt.Errorf("%s and %s both write %s", other, field, name)
		}
		seen[name] = field
	}

	return nil
}
