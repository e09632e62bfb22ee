package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/config"
	"github.com/bustyanimebabesdotcom/safeinput/pkg/form"
)

type FormCmd struct {
	File     string `arg:"" help:"Form definition (YAML, JSON or CUE)" type:"existingfile"`
	Template string `help:"Mustache template for the answers" short:"t" type:"existingfile"`
	JSON     bool   `help:"Print answers as JSON instead of a template"`
}

// Run asks the questions and prints the answers. If input ends early the
// answers read so far are still printed and the error is returned.
func (c *FormCmd) Run(logger *slog.Logger, env *Env) error {
	f, err := config.LoadFromFile[form.Form](c.File)
	if err != nil {
		return fmt.Errorf("unable to load form: %w", err)
	}
	logger.Info("form loaded", "path", c.File, "questions", len(f.Questions))

	tmpl := form.DefaultTemplate
	if c.Template != "" {
		data, err := os.ReadFile(c.Template)
		if err != nil {
			return fmt.Errorf("unable to read template: %w", err)
		}
		tmpl = string(data)
	}

	runner := form.NewRunner(env.scanner(), form.WithPrompt(env.Prompt), form.WithLogger(logger))
	answers, runErr := runner.Run(context.Background(), f)
	if runErr != nil && !errors.Is(runErr, form.ErrIncomplete) {
		return runErr
	}
	if runErr != nil {
		logger.Warn("form incomplete", "answered", answers.Len(), "questions", len(f.Questions))
	}

	if err := c.print(env, answers, tmpl); err != nil {
		return err
	}
	return runErr
}

func (c *FormCmd) print(env *Env, answers *form.Answers, tmpl string) error {
	if c.JSON {
		data, err := json.Marshal(answers)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout, string(data))
		return err
	}

	out, err := answers.Render(tmpl)
	if err != nil {
		return fmt.Errorf("unable to render answers: %w", err)
	}
	_, err = fmt.Fprint(env.Stdout, out)
	return err
}
