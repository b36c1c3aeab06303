package main

import (
	"errors"
	"fmt"
	"net/mail"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter snapshot interactively",
	Long:  "Prompts for personal details and writes a starter YAML snapshot holding the default sections and section order.",
	RunE:  runInit,
}

var (
	initOutput string
	initForce  bool
)

// askPersonal collects the header fields. Tests replace it.
var askPersonal = promptPersonal

func init() {
	initCmd.Flags().StringVarP(&initOutput, "out", "o", "snapshot.yaml", "Path to output snapshot file")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
	}

	personal, err := askPersonal()
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return errors.New("aborted")
		}
		return fmt.Errorf("failed to read answers: %w", err)
	}

	content, err := starterSnapshot(personal)
	if err != nil {
		return err
	}
	if err := writeOutput(initOutput, content); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote starter snapshot to %s\n", initOutput)
	return nil
}

// starterSnapshot renders the blank form state with personal filled in
func starterSnapshot(personal types.PersonalInfo) ([]byte, error) {
	resume := types.NewResume()
	resume.Personal = personal

	content, err := yaml.Marshal(resume.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot YAML: %w", err)
	}
	return content, nil
}

func promptPersonal() (types.PersonalInfo, error) {
	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Full name:"},
			Validate: survey.Required,
		},
		{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email:"},
			Validate: optionalEmail,
		},
		{Name: "phone", Prompt: &survey.Input{Message: "Phone:"}},
		{Name: "address", Prompt: &survey.Input{Message: "Location:", Help: "City and state or country"}},
		{Name: "linkedin", Prompt: &survey.Input{Message: "LinkedIn URL:"}},
		{Name: "github", Prompt: &survey.Input{Message: "GitHub URL:"}},
		{Name: "website", Prompt: &survey.Input{Message: "Website URL:"}},
	}

	var answers struct {
		Name     string `survey:"name"`
		Email    string `survey:"email"`
		Phone    string `survey:"phone"`
		Address  string `survey:"address"`
		LinkedIn string `survey:"linkedin"`
		GitHub   string `survey:"github"`
		Website  string `survey:"website"`
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return types.PersonalInfo{}, err
	}

	return types.PersonalInfo{
		Name:     answers.Name,
		Email:    answers.Email,
		Phone:    answers.Phone,
		Address:  answers.Address,
		LinkedIn: answers.LinkedIn,
		GitHub:   answers.GitHub,
		Website:  answers.Website,
	}, nil
}

func optionalEmail(ans interface{}) error {
	s, _ := ans.(string)
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("not a valid email address")
	}
	return nil
}
