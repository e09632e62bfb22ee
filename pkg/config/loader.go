// Package config loads form definitions and other settings from YAML, JSON
// or CUE, using CUE as the underlying parser.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
)

// Format names a source syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks a Format from a file extension. Unknown extensions
// are treated as YAML, which also accepts JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".cue":
		return FormatCUE
	default:
		return FormatYAML
	}
}

// LoadValueFromReader parses r in the given format and returns a CUE value.
// CUE sources read this way cannot use imports; use LoadValue for that.
func LoadValueFromReader(r io.Reader, format Format) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return compile(data, format, "")
}

// LoadValue loads a file or directory and returns a CUE value.
//
// Directories and .cue files go through load.Instances so CUE packages and
// imports work. Everything else is parsed as a standalone data file.
func LoadValue(path string) (cue.Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if !info.IsDir() && FormatFromPath(path) != FormatCUE {
		data, err := os.ReadFile(path)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
		}
		return compile(data, FormatFromPath(path), path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}
	args := []string{absPath}
	if info.IsDir() {
		cfg.Dir = absPath
		args = []string{"."}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}
	if inst := instances[0]; inst.Err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", inst.Err)
	}

	val := cuecontext.New().BuildInstance(instances[0])
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

// LoadFromFile loads a file or directory into a T.
//
//	f, err := config.LoadFromFile[form.Form]("signup.yaml")
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}
	return decode[T](val)
}

// LoadFromReader parses r in the given format into a T.
func LoadFromReader[T any](r io.Reader, format Format) (*T, error) {
	val, err := LoadValueFromReader(r, format)
	if err != nil {
		return nil, err
	}
	return decode[T](val)
}

func compile(data []byte, format Format, filename string) (cue.Value, error) {
	ctx := cuecontext.New()

	var val cue.Value
	switch format {
	case FormatJSON, FormatCUE:
		val = ctx.CompileBytes(data, cue.Filename(filename))
	default:
		file, err := yaml.Extract(filename, data)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
		val = ctx.BuildFile(file)
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func decode[T any](val cue.Value) (*T, error) {
	var out T
	if err := val.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &out, nil
}
