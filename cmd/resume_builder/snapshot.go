package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"gopkg.in/yaml.v3"
)

// loadSnapshot reads a snapshot file. YAML files are converted to JSON so both
// formats go through the same schema check.
func loadSnapshot(path string) (*types.Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	document := content
	if isYAML(path) {
		if document, err = yamlToJSON(content); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
		}
	}

	if err := schemas.ValidateSnapshot(document); err != nil {
		return nil, err
	}

	var snap types.Snapshot
	if err := json.Unmarshal(document, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot JSON: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid section order: %w", err)
	}
	return &snap, nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// writeOutput writes content to path, creating parent directories
func writeOutput(path string, content []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
