package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"balde-template-gen/internal/build"
	"balde-template-gen/internal/gen"
)

// File is the on-disk configuration.
type File struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
	// Concurrency bounds parallel builds in batch mode; 0 means one per CPU.
	Concurrency int `yaml:"concurrency,omitempty"`
	// Generator overrides the generated code conventions.
	Generator gen.GeneratorConfig `yaml:"generator"`
	// Jobs lists template/output pairs for batch mode.
	Jobs []build.Job `yaml:"jobs,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// LoadFile loads and parses a YAML configuration file from the given path.
// Relative job paths are made relative to the file's directory.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	resolveJobs(f, filepath.Dir(path))

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	// An empty document decodes to io.EOF and means "all defaults".
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// applyDefaults fills in default values for fields left empty.
func applyDefaults(f *File) {
	def := gen.DefaultGeneratorConfig()
	g := &f.Generator

	setDefault(&g.ToolName, def.ToolName)
	setDefault(&g.FunctionPrefix, def.FunctionPrefix)
	setDefault(&g.ContextType, def.ContextType)
	setDefault(&g.ContextParam, def.ContextParam)
	setDefault(&g.LookupFunc, def.LookupFunc)
	setDefault(&g.AppendFunc, def.AppendFunc)

	if g.RequiredIncludes == nil {
		g.RequiredIncludes = def.RequiredIncludes
	}

	if g.DeclarationIncludes == nil {
		g.DeclarationIncludes = def.DeclarationIncludes
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func validate(f *File) error {
	if f.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", f.Concurrency)
	}

	for i, job := range f.Jobs {
		if job.Template == "" || job.Output == "" {
			return fmt.Errorf("jobs[%d]: template and output are required", i)
		}
	}

	return nil
}

func resolveJobs(f *File, dir string) {
	for i := range f.Jobs {
		job := &f.Jobs[i]
		job.Template = resolve(dir, job.Template)
		job.Output = resolve(dir, job.Output)
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
