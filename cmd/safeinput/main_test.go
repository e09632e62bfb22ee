package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

type testEnv struct {
	*Env
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(stdin string, interactive bool) *testEnv {
	return newTestEnvColor(stdin, interactive, false)
}

func newTestEnvColor(stdin string, interactive, color bool) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Env: &Env{
			Stdin:      strings.NewReader(stdin),
			Stdout:     stdout,
			Stderr:     stderr,
			IsTerminal: func() bool { return interactive },
			ColorLogs:  func() bool { return color },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead_Int(t *testing.T) {
	env := newTestEnv("12abc\n\n42\n", false)

	err := run([]string{"read", "int"}, env.Env)
	assert.NilError(t, err)
	assert.Equal(t, "42\n", env.stdout.String())
	assert.Equal(t, "Invalid input. Try again.\nInvalid input. Try again.\n", env.stderr.String())
}

func TestRead_UIntNegative(t *testing.T) {
	env := newTestEnv("-1\n1\n", false)

	assert.NilError(t, run([]string{"read", "uint"}, env.Env))
	assert.Equal(t, "1\n", env.stdout.String())
	assert.Assert(t, cmp.Contains(env.stderr.String(), "Value can not be negative."))
}

func TestRead_CharFiltered(t *testing.T) {
	env := newTestEnv("q\nb\n", false)

	assert.NilError(t, run([]string{"read", "charf", "--allowed", "abc"}, env.Env))
	assert.Equal(t, "b\n", env.stdout.String())
	assert.Assert(t, cmp.Contains(env.stderr.String(), "Invalid input. Allowed: abc"))
}

func TestRead_CharFilteredWithoutAllowed(t *testing.T) {
	env := newTestEnv("a\n", false)

	err := run([]string{"read", "charf"}, env.Env)
	assert.ErrorContains(t, err, "no allowed characters")
}

func TestRead_EOF(t *testing.T) {
	env := newTestEnv("", false)

	err := run([]string{"read", "double"}, env.Env)
	assert.Assert(t, errors.Is(err, errNoInput), "got %v", err)
	assert.Equal(t, "", env.stdout.String())
}

func TestRead_BoolEOF(t *testing.T) {
	env := newTestEnv("", false)

	err := run([]string{"read", "bool"}, env.Env)
	assert.Assert(t, errors.Is(err, errNoInput), "got %v", err)
	assert.Assert(t, cmp.Contains(env.stderr.String(), "EOF detected. Returning false by default."))
}

func TestRead_UnknownType(t *testing.T) {
	env := newTestEnv("1\n", false)

	err := run([]string{"read", "complex"}, env.Env)
	assert.ErrorContains(t, err, "complex")
}

func TestRead_Prompts(t *testing.T) {
	tests := []struct {
		mode        string
		interactive bool
		shown       bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"always", false, true},
		{"never", true, false},
	}

	for _, tt := range tests {
		env := newTestEnv("5\n", tt.interactive)
		err := run([]string{"--prompts", tt.mode, "read", "long", "--prompt", "Number: "}, env.Env)
		assert.NilError(t, err)
		assert.Equal(t, tt.shown, strings.Contains(env.stderr.String(), "Number: "), "mode=%s interactive=%v", tt.mode, tt.interactive)
	}
}

func TestRead_LogDiagnostics(t *testing.T) {
	env := newTestEnv("x\n7\n", false)

	assert.NilError(t, run([]string{"--diagnostics", "log", "read", "ulonglong"}, env.Env))
	assert.Equal(t, "7\n", env.stdout.String())
	assert.Assert(t, cmp.Contains(env.stderr.String(), "WRN"))
	assert.Assert(t, cmp.Contains(env.stderr.String(), "component=safeinput"))
}

func TestRead_LogColorFollowsStderr(t *testing.T) {
	tests := []struct {
		interactive bool
		color       bool
	}{
		{interactive: true, color: false},
		{interactive: false, color: true},
	}

	for _, tt := range tests {
		env := newTestEnvColor("x\n7\n", tt.interactive, tt.color)
		assert.NilError(t, run([]string{"--diagnostics", "log", "read", "int"}, env.Env))
		assert.Equal(t, tt.color, strings.Contains(env.stderr.String(), "\x1b["), "interactive=%v color=%v", tt.interactive, tt.color)
	}
}

func TestForm_DefaultTemplate(t *testing.T) {
	path := writeFile(t, "signup.yaml", `
title: Signup
questions:
  - name: name
    prompt: "Name: "
    type: string
  - name: age
    type: uint
  - name: subscribe
    type: bool
`)
	env := newTestEnv("Ada\nold\n36\ny\n", false)

	assert.NilError(t, run([]string{"form", path}, env.Env))
	assert.Equal(t, "Signup\nname: Ada\nage: 36\nsubscribe: true\n", env.stdout.String())
}

func TestForm_JSON(t *testing.T) {
	path := writeFile(t, "f.json", `{"questions": [{"name": "x", "type": "double"}, {"name": "c", "type": "char"}]}`)
	env := newTestEnv("2.5\n\n", false)

	assert.NilError(t, run([]string{"form", "--json", path}, env.Env))
	assert.Equal(t, `{"x":2.5,"c":"\n"}`+"\n", env.stdout.String())
}

func TestForm_CustomTemplate(t *testing.T) {
	path := writeFile(t, "f.yaml", "questions:\n  - name: who\n    type: cstring\n")
	tmpl := writeFile(t, "t.mustache", "Hello, {{who}}!")
	env := newTestEnv("world\n", false)

	assert.NilError(t, run([]string{"form", "-t", tmpl, path}, env.Env))
	assert.Equal(t, "Hello, world!", env.stdout.String())
}

func TestForm_Incomplete(t *testing.T) {
	path := writeFile(t, "f.yaml", "questions:\n  - name: a\n    type: int\n  - name: b\n    type: int\n")
	env := newTestEnv("1\n", false)

	err := run([]string{"form", path}, env.Env)
	assert.ErrorContains(t, err, "input ended")
	assert.Equal(t, "a: 1\n", env.stdout.String())
}

func TestForm_InvalidDefinition(t *testing.T) {
	path := writeFile(t, "f.yaml", "questions:\n  - name: a\n    type: nope\n")
	env := newTestEnv("1\n", false)

	err := run([]string{"form", path}, env.Env)
	assert.ErrorContains(t, err, "unknown type")
}

func TestVersion(t *testing.T) {
	env := newTestEnv("", false)

	assert.NilError(t, run([]string{"version"}, env.Env))
	assert.Equal(t, version+"\n", env.stdout.String())
}
