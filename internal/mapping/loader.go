package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML script from the given path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Script.
func Parse(data []byte) (*Script, error) {
	var s Script

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Script) {
	if s.Version == "" {
		s.Version = SupportedVersion
	}
}

// Marshal serializes a Script to YAML.
func Marshal(s *Script) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Script to the given path.
func WriteFile(s *Script, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal script: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write script %s: %w", path, err)
	}

	return nil
}
