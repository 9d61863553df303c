// Package config loads identifier and label overrides from YAML files.
//
//	separator: ", "
//	parse:
//	  minute: [minutes, minute, min]
//	  hour: [hours, hour, hr, h]
//	format:
//	  minute: min
//	  hour: hr
//
// Units are named by their canonical name. Each entry replaces the default
// aliases or label of that unit only; units left out keep their defaults.
package config

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/lucrnz/readable"
)

// File is the decoded form of a config file.
type File struct {
	Separator string              `yaml:"separator"`
	Parse     map[string][]string `yaml:"parse"`
	Format    map[string]string   `yaml:"format"`
}

// Load reads and decodes the YAML file at path from fs.
func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", path, err)
	}
	return &f, nil
}

// Identifiers returns the default aliases with the file's parse table applied.
func (f *File) Identifiers() (readable.Identifiers, error) {
	ids := readable.DefaultIdentifiers()
	for name, aliases := range f.Parse {
		u, ok := readable.ParseUnit(name)
		if !ok {
			return nil, fmt.Errorf("parse: unknown unit %q", name)
		}
		ids[u] = aliases
	}
	return ids, nil
}

// Labels returns the default labels with the file's format table applied.
func (f *File) Labels() (readable.Labels, error) {
	labels := readable.DefaultLabels()
	for name, label := range f.Format {
		u, ok := readable.ParseUnit(name)
		if !ok {
			return nil, fmt.Errorf("format: unknown unit %q", name)
		}
		labels[u] = label
	}
	return labels, nil
}

// ParseOptions builds parser options from the file.
func (f *File) ParseOptions() (readable.ParseOptions, error) {
	ids, err := f.Identifiers()
	if err != nil {
		return readable.ParseOptions{}, err
	}
	return readable.ParseOptions{Separator: f.Separator, Identifiers: ids}, nil
}

// FormatOptions builds formatter options from the file.
func (f *File) FormatOptions() (readable.FormatOptions, error) {
	labels, err := f.Labels()
	if err != nil {
		return readable.FormatOptions{}, err
	}
	return readable.FormatOptions{Separator: f.Separator, Labels: labels}, nil
}
