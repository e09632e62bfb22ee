package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/form"
)

// errNoInput is returned when stdin ends before a valid value was read.
var errNoInput = errors.New("no input")

type ReadCmd struct {
	Type    string `arg:"" help:"Value type: ${types}" enum:"${types}"`
	Allowed string `help:"Allowed characters for charf" short:"a"`
	Prompt  string `help:"Text shown before reading" short:"p"`
}

func (c *ReadCmd) Run(logger *slog.Logger, env *Env) error {
	if c.Prompt != "" {
		fmt.Fprint(env.Prompt, c.Prompt)
	}

	s := env.scanner()
	v, err := form.Read(s, c.Type, c.Allowed)
	if errors.Is(err, io.EOF) {
		return errNoInput
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Type, err)
	}
	logger.Info("read", "type", c.Type, "bytes", s.Offset())

	_, err = fmt.Fprintln(env.Stdout, v)
	return err
}
