package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML level and validates it
// Unknown keys are rejected
func Parse(r io.Reader) (Level, error) {
	l, err := decode(r)
	if err != nil {
		return Level{}, err
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

func decode(r io.Reader) (Level, error) {
	var l Level
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Level{}, fmt.Errorf("parse level: %w", err)
	}
	return l, nil
}

// LoadFile reads one YAML level; the file name stem is used when the level has no name
func LoadFile(path string) (Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return Level{}, fmt.Errorf("read level: %w", err)
	}
	defer f.Close()

	l, err := decode(f)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

// LoadDir reads every .yaml and .yml file in dir in lexical order
// A missing directory yields no levels and no error
func LoadDir(dir string) ([]Level, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read levels dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		switch filepath.Ext(name) {
		case ".yaml", ".yml":
			names = append(names, name)
		}
	}
	slices.Sort(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		l, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}
