package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Output, cfg.Output)
	assert.Equal(t, []string{"proto"}, cfg.Schema.Paths)
	assert.Equal(t, []string{"gz", "msgs"}, cfg.Namespace())
	assert.Nil(t, cfg.CompatNamespace())
	assert.Empty(t, cfg.File)
	assert.Equal(t, ".", cfg.Compiler.OutDir)
	assert.Empty(t, cfg.Relocate.Dir)
	assert.Equal(t, ".pb.h", cfg.Relocate.Primary)
	assert.Equal(t, ".gz.h", cfg.Relocate.Extension)
}

func TestLoad_FileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
schema:
  paths: [schemas]
  package: gz.msgs
compat:
  package: ignition.msgs
output:
  dir: gen
relocate:
  dir: build/include
  primary: .pb.hh
  detail_dir: impl
log:
  level: debug
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"schemas"}, cfg.Schema.Paths)
	assert.Equal(t, "gen", cfg.Output.Dir)
	assert.Equal(t, "msgs", cfg.Output.Package)
	assert.Equal(t, "impl", cfg.Relocate.DetailDir)
	assert.Equal(t, "build/include", cfg.Relocate.Dir)
	assert.Equal(t, ".pb.hh", cfg.Relocate.Primary)
	assert.Equal(t, ".gz.h", cfg.Relocate.Extension)
	assert.Equal(t, `#include "%s"`, cfg.Relocate.IncludeFormat)
	assert.Equal(t, []string{"ignition", "msgs"}, cfg.CompatNamespace())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FileName, filepath.Base(cfg.File))
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output:\n  dir: gen\n")
	t.Setenv("GZMSGS_OUTPUT_DIR", "from-env")
	t.Setenv("GZMSGS_COMPILER_PRESET", "buf")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.Equal(t, "buf", cfg.Compiler.Preset)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "compiler:\n  preset: bazel\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `compiler.preset "bazel"`)
	assert.Contains(t, err.Error(), FileName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no paths", func(c *Config) { c.Schema.Paths = nil }, "schema.paths"},
		{"bad namespace", func(c *Config) { c.Schema.Package = "gz..msgs" }, "invalid segment"},
		{"root namespace", func(c *Config) { c.Schema.Package = "" }, ""},
		{"bad compat", func(c *Config) { c.Compat.Package = "ignition-msgs" }, "compat.package"},
		{"bad go package", func(c *Config) { c.Output.Package = "gz-msgs" }, "output.package"},
		{"not a go file", func(c *Config) { c.Output.Definitions = "register.txt" }, "output.definitions"},
		{"nested file", func(c *Config) { c.Output.Declarations = "sub/types.go" }, "output.declarations"},
		{"same file twice", func(c *Config) { c.Output.Compat = "register.gen.go" }, "both name"},
		{"custom without command", func(c *Config) { c.Compiler.Preset = "custom" }, "compiler.command"},
		{"custom with command", func(c *Config) {
			c.Compiler.Preset = "custom"
			c.Compiler.Command = "gz-protoc"
		}, ""},
		{"include format", func(c *Config) { c.Relocate.IncludeFormat = "#include <x>" }, "include_format"},
		{"include format extra verb", func(c *Config) { c.Relocate.IncludeFormat = "#include %s %d" }, "include_format"},
		{"absolute detail dir", func(c *Config) { c.Relocate.DetailDir = "/tmp/details" }, "detail_dir"},
		{"empty marker", func(c *Config) { c.Relocate.Marker = "" }, "marker"},
		{"empty primary suffix", func(c *Config) { c.Relocate.Primary = "" }, "relocate.primary"},
		{"same suffixes", func(c *Config) { c.Relocate.Extension = c.Relocate.Primary }, "must differ"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "declarations: message_types.gen.go")
	assert.Contains(t, string(data), "detail_dir: details")
	assert.NotContains(t, string(data), "file:")
}
