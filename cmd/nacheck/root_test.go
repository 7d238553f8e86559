// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(registry))
	require.True(t, strings.HasPrefix(lines[0], registry[0].name))
}

func TestRunCommand_Pass(t *testing.T) {
	out, logs, err := execute(t, "run", "--seed", "3", "--samples", "20")
	require.NoError(t, err)
	require.Contains(t, out, "PASS 12 properties")
	require.Contains(t, logs, "nacheck starting")
}

func TestRunCommand_SelectsByArgument(t *testing.T) {
	out, _, err := execute(t, "run", "--samples", "5", "--log-level", "warn", "matrix.transpose-involution")
	require.NoError(t, err)
	require.Contains(t, out, "ok   matrix.transpose-involution")
	require.Contains(t, out, "PASS 1 properties")
}

func TestRunCommand_ConfigAndFlags(t *testing.T) {
	path := writeFile(t, "samples: 0\n")
	_, _, err := execute(t, "run", "--config", path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	// an explicit flag overrides the file
	out, _, err := execute(t, "run", "--config", path, "--samples", "3", "scenario.unit-translation")
	require.NoError(t, err)
	require.Contains(t, out, "3 samples")
}

func TestRunCommand_BadInput(t *testing.T) {
	_, _, err := execute(t, "run", "--eps", "-1")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "run", "--samples", "1", "no.such")
	require.ErrorIs(t, err, ErrUnknownProperty)

	_, _, err = execute(t, "run", "--log-level", "loud")
	require.ErrorContains(t, err, "log level")
}
