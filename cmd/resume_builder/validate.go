package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a snapshot file",
	Long:  "Checks a resume snapshot against the JSON schema and the section order rules without rendering it.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to snapshot JSON or YAML file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Additional JSON schema file the snapshot must also satisfy")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateSchema != "" {
		if err := checkSchemaFile(validateSchema, validateInput); err != nil {
			return validationFailed(err)
		}
	}

	snap, err := loadSnapshot(validateInput)
	if err != nil {
		return validationFailed(err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "✓ %s is valid\n", validateInput)
	observability.NewPrinter(os.Stdout).PrintSnapshot(snap)
	return nil
}

// checkSchemaFile validates the snapshot at inputPath against a schema on disk.
// Relative schema paths are also tried from the parent directories.
func checkSchemaFile(schemaPath, inputPath string) error {
	resolved := schemas.ResolveSchemaPath(schemaPath)
	if resolved == "" {
		return fmt.Errorf("schema file not found: %s", schemaPath)
	}
	if !isYAML(inputPath) {
		return schemas.ValidateJSON(resolved, inputPath)
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}
	document, err := yamlToJSON(content)
	if err != nil {
		return fmt.Errorf("failed to parse snapshot YAML: %w", err)
	}
	schemaContent, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	return schemas.ValidateJSONString(string(schemaContent), string(document))
}

func validationFailed(err error) error {
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(os.Stdout, "  %s: %s\n", fe.Field, fe.Message)
		}
	}
	return fmt.Errorf("validation failed: %w", err)
}
