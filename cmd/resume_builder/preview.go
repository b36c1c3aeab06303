package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a snapshot to an HTML preview",
	Long:  "Writes the sanitized HTML preview fragment for a resume snapshot. With --source the fragment shows the generated LaTeX instead.",
	RunE:  runPreview,
}

var (
	previewInput  string
	previewOutput string
	previewSource bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "in", "i", "", "Path to snapshot JSON or YAML file (required)")
	previewCmd.Flags().StringVarP(&previewOutput, "out", "o", "", "Path to output HTML file (required)")
	previewCmd.Flags().BoolVar(&previewSource, "source", false, "Show the generated LaTeX source instead of the rendered view")

	if err := previewCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := previewCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(previewInput)
	if err != nil {
		return err
	}

	opts := rendering.PreviewOptions{View: rendering.ViewRendered}
	if previewSource {
		opts.View = rendering.ViewSource
	}

	html, err := rendering.RenderPreview(snap, opts)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if err := writeOutput(previewOutput, []byte(html)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered preview\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", previewOutput)
	return nil
}
