// Package config loads gzmsgs.yml.
package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/internal/relocate"
)

// FileName is the config file looked up in the working directory.
const FileName = "gzmsgs.yml"

// EnvPrefix prefixes environment overrides, e.g. GZMSGS_OUTPUT_DIR.
const EnvPrefix = "GZMSGS"

// Config represents gzmsgs.yml.
type Config struct {
	Schema   SchemaConfig   `mapstructure:"schema" yaml:"schema"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Compat   CompatConfig   `mapstructure:"compat" yaml:"compat"`
	Compiler CompilerConfig `mapstructure:"compiler" yaml:"compiler"`
	Relocate RelocateConfig `mapstructure:"relocate" yaml:"relocate"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, empty when running on defaults.
	File string `mapstructure:"-" yaml:"-"`
}

// SchemaConfig selects the schema sources.
type SchemaConfig struct {
	Paths    []string `mapstructure:"paths" yaml:"paths"`
	Ignore   []string `mapstructure:"ignore" yaml:"ignore,omitempty"`
	Package  string   `mapstructure:"package" yaml:"package"`
	IndexDir string   `mapstructure:"index_dir" yaml:"index_dir,omitempty"`
}

// OutputConfig places the generated registration artifacts.
type OutputConfig struct {
	Dir          string `mapstructure:"dir" yaml:"dir"`
	Package      string `mapstructure:"package" yaml:"package"`
	Declarations string `mapstructure:"declarations" yaml:"declarations"`
	Definitions  string `mapstructure:"definitions" yaml:"definitions"`
	Compat       string `mapstructure:"compat" yaml:"compat"`
	Template     string `mapstructure:"template" yaml:"template,omitempty"`
}

// CompatConfig registers every message a second time under a legacy namespace.
type CompatConfig struct {
	Package string `mapstructure:"package" yaml:"package,omitempty"`
}

// CompilerConfig selects the external schema compiler.
type CompilerConfig struct {
	Preset  string   `mapstructure:"preset" yaml:"preset"`
	Command string   `mapstructure:"command" yaml:"command,omitempty"`
	Args    []string `mapstructure:"args" yaml:"args,omitempty"`
	OutDir  string   `mapstructure:"out_dir" yaml:"out_dir"`
	Spinner bool     `mapstructure:"spinner" yaml:"spinner"`
}

// RelocateConfig shapes the public header installed over a C++ compiler
// output. Relocation is opt-in: Dir is empty unless a C++ plugin writes
// headers somewhere for it to scan.
type RelocateConfig struct {
	Dir           string `mapstructure:"dir" yaml:"dir"`
	Primary       string `mapstructure:"primary" yaml:"primary"`
	Extension     string `mapstructure:"extension" yaml:"extension"`
	DetailDir     string `mapstructure:"detail_dir" yaml:"detail_dir"`
	IncludeFormat string `mapstructure:"include_format" yaml:"include_format"`
	CommentPrefix string `mapstructure:"comment_prefix" yaml:"comment_prefix"`
	Marker        string `mapstructure:"marker" yaml:"marker"`
}

// LogConfig sets the logger level.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Schema: SchemaConfig{
			Paths:   []string{"proto"},
			Package: "gz.msgs",
		},
		Output: OutputConfig{
			Dir:          "msgs",
			Package:      "msgs",
			Declarations: "message_types.gen.go",
			Definitions:  "register.gen.go",
			Compat:       "compat.gen.go",
		},
		Compiler: CompilerConfig{
			Preset:  "protoc",
			OutDir:  ".",
			Spinner: true,
		},
		Relocate: RelocateConfig{
			Primary:       relocate.DefaultSuffixes.Primary,
			Extension:     relocate.DefaultSuffixes.Extension,
			DetailDir:     "details",
			IncludeFormat: `#include "%s"`,
			CommentPrefix: "//",
			Marker:        "Automatically generated public header. Do not edit.",
		},
		Log: LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("schema.paths", d.Schema.Paths)
	v.SetDefault("schema.ignore", d.Schema.Ignore)
	v.SetDefault("schema.package", d.Schema.Package)
	v.SetDefault("schema.index_dir", d.Schema.IndexDir)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.package", d.Output.Package)
	v.SetDefault("output.declarations", d.Output.Declarations)
	v.SetDefault("output.definitions", d.Output.Definitions)
	v.SetDefault("output.compat", d.Output.Compat)
	v.SetDefault("output.template", d.Output.Template)
	v.SetDefault("compat.package", d.Compat.Package)
	v.SetDefault("compiler.preset", d.Compiler.Preset)
	v.SetDefault("compiler.command", d.Compiler.Command)
	v.SetDefault("compiler.args", d.Compiler.Args)
	v.SetDefault("compiler.out_dir", d.Compiler.OutDir)
	v.SetDefault("compiler.spinner", d.Compiler.Spinner)
	v.SetDefault("relocate.dir", d.Relocate.Dir)
	v.SetDefault("relocate.primary", d.Relocate.Primary)
	v.SetDefault("relocate.extension", d.Relocate.Extension)
	v.SetDefault("relocate.detail_dir", d.Relocate.DetailDir)
	v.SetDefault("relocate.include_format", d.Relocate.IncludeFormat)
	v.SetDefault("relocate.comment_prefix", d.Relocate.CommentPrefix)
	v.SetDefault("relocate.marker", d.Relocate.Marker)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the config file at path, or gzmsgs.yml in the working
// directory when path is empty. A missing gzmsgs.yml is not an error; a
// missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		if cfg.File != "" {
			return nil, fmt.Errorf("%s: %w", cfg.File, err)
		}
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if len(c.Schema.Paths) == 0 {
		return fmt.Errorf("schema.paths must list at least one directory or file")
	}
	if err := validateNamespace("schema.package", c.Schema.Package); err != nil {
		return err
	}
	if err := validateNamespace("compat.package", c.Compat.Package); err != nil {
		return err
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if !token.IsIdentifier(c.Output.Package) {
		return fmt.Errorf("output.package %q is not a valid Go package name", c.Output.Package)
	}
	names := map[string]string{}
	for key, name := range map[string]string{
		"output.declarations": c.Output.Declarations,
		"output.definitions":  c.Output.Definitions,
		"output.compat":       c.Output.Compat,
	} {
		if filepath.Ext(name) != ".go" || filepath.Base(name) != name {
			return fmt.Errorf("%s %q must be a .go file name", key, name)
		}
		if other, dup := names[name]; dup {
			return fmt.Errorf("%s and %s both name %q", other, key, name)
		}
		names[name] = key
	}
	switch c.Compiler.Preset {
	case "protoc", "buf":
	case "custom":
		if c.Compiler.Command == "" {
			return fmt.Errorf("compiler.command is required for the custom preset")
		}
	default:
		return fmt.Errorf("compiler.preset %q is not one of protoc, buf, custom", c.Compiler.Preset)
	}
	if n := strings.Count(c.Relocate.IncludeFormat, "%s"); n != 1 || strings.Count(c.Relocate.IncludeFormat, "%") != 1 {
		return fmt.Errorf("relocate.include_format %q must contain exactly one %%s", c.Relocate.IncludeFormat)
	}
	if c.Relocate.Primary == "" || c.Relocate.Extension == "" {
		return fmt.Errorf("relocate.primary and relocate.extension are required")
	}
	if c.Relocate.Primary == c.Relocate.Extension {
		return fmt.Errorf("relocate.primary and relocate.extension must differ, both are %q", c.Relocate.Primary)
	}
	if c.Relocate.DetailDir == "" || filepath.IsAbs(c.Relocate.DetailDir) {
		return fmt.Errorf("relocate.detail_dir must be a relative directory")
	}
	if c.Relocate.Marker == "" {
		return fmt.Errorf("relocate.marker is required")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Namespace splits schema.package into its segments.
func (c *Config) Namespace() []string {
	return splitNamespace(c.Schema.Package)
}

// CompatNamespace splits compat.package into its segments.
func (c *Config) CompatNamespace() []string {
	return splitNamespace(c.Compat.Package)
}

func splitNamespace(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

func validateNamespace(key, ns string) error {
	if ns == "" {
		return nil
	}
	for _, seg := range strings.Split(ns, ".") {
		if !token.IsIdentifier(seg) {
			return fmt.Errorf("%s %q has an invalid segment %q", key, ns, seg)
		}
	}
	return nil
}

// Marshal renders cfg as YAML, the form `gzmsgs config` prints.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
