package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderLaTeXCmd = &cobra.Command{
	Use:   "render-latex",
	Short: "Render a snapshot to LaTeX source",
	Long:  "Generates escaped LaTeX source from a resume snapshot, following its section order. A custom text/template file may replace the built-in layout.",
	RunE:  runRenderLaTeX,
}

var (
	renderLaTeXInput    string
	renderLaTeXOutput   string
	renderLaTeXTemplate string
)

func init() {
	renderLaTeXCmd.Flags().StringVarP(&renderLaTeXInput, "in", "i", "", "Path to snapshot JSON or YAML file (required)")
	renderLaTeXCmd.Flags().StringVarP(&renderLaTeXOutput, "out", "o", "", "Path to output LaTeX file (required)")
	renderLaTeXCmd.Flags().StringVarP(&renderLaTeXTemplate, "template", "t", "", "Path to a custom LaTeX template (defaults to RESUME_TEMPLATE, then the built-in layout)")

	if err := renderLaTeXCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := renderLaTeXCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderLaTeXCmd)
}

func runRenderLaTeX(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(renderLaTeXInput)
	if err != nil {
		return err
	}

	templatePath := renderLaTeXTemplate
	if templatePath == "" {
		templatePath = os.Getenv("RESUME_TEMPLATE")
	}

	var latex string
	if templatePath == "" {
		latex = rendering.GenerateLaTeX(snap)
	} else if latex, err = rendering.RenderTemplate(templatePath, snap); err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}

	if err := writeOutput(renderLaTeXOutput, []byte(latex)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered LaTeX resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderLaTeXOutput)
	return nil
}
