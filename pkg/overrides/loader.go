package overrides

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

type documentFile struct {
	Models map[string]Model `yaml:"models"`
}

// Load parses the override document at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("overrides: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks fsys and merges every JSON/YAML document it finds. A model
// declared by more than one file is an error. A nil fsys yields an empty
// store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{models: make(map[string]Model)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverrideFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("overrides: read %s: %w", path, err)
		}
		parsed, err := Parse(data, path)
		if err != nil {
			return err
		}
		for name, model := range parsed.models {
			if existing, exists := store.models[name]; exists {
				return fmt.Errorf("overrides: duplicate model %q (files %s and %s)", name, existing.Source, path)
			}
			store.models[name] = model
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes one YAML or JSON document. source names the document in
// errors.
func Parse(data []byte, source string) (*Store, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("overrides: file %s is empty", source)
	}

	var doc documentFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("overrides: parse %s: %w", source, err)
	}

	store := &Store{models: make(map[string]Model, len(doc.Models))}
	for rawName, model := range doc.Models {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return nil, fmt.Errorf("overrides: file %s defines an empty model name", source)
		}
		if err := structValidator().Struct(model); err != nil {
			return nil, fmt.Errorf("overrides: %s: model %s: %w", source, name, err)
		}
		model.Name = name
		model.Source = source
		store.models[name] = model
	}
	return store, nil
}

func isOverrideFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func sortedStrings(values []string) []string {
	sort.Strings(values)
	return values
}
