package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a scaffold configuration file.
// Unknown keys and wrongly typed values are rejected as *ValidationErrors
// wrapping ErrInvalidYAML. A missing file returns ErrConfigNotFound.
func LoadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a scaffold configuration document.
// An empty document yields an empty FileConfig.
func Parse(data []byte) (*FileConfig, error) {
	cfg := &FileConfig{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, &ValidationErrors{Errors: []ValidationError{{
			Field:   "file",
			Message: err.Error(),
			Wrapped: ErrInvalidYAML,
		}}}
	}

	var errs []ValidationError
	for k, v := range cfg.Decisions {
		if k == "" {
			errs = append(errs, ValidationError{
				Field:   "decisions",
				Message: "question name must not be empty",
				Value:   v,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	return cfg, nil
}
