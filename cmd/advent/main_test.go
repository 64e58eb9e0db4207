package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentz26/advent/internal/models"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		runPart, runJSON = 0, false
		historyDay, historyLimit = 0, 20
		configForce = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeWorkspace(t *testing.T, answers string) (dir string, flags []string) {
	t.Helper()
	dir = t.TempDir()
	inputs := filepath.Join(dir, "input")
	require.NoError(t, os.MkdirAll(inputs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day_1.txt"), []byte("+1\n-2\n+3\n+1\n"), 0o644))

	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(answers), 0o644))

	return dir, []string{
		"--config", cfgFile,
		"--db", filepath.Join(dir, "advent.db"),
		"--input-dir", inputs,
	}
}

func TestRunCommand(t *testing.T) {
	_, flags := writeWorkspace(t, "answers:\n  1:\n    part1: \"3\"\n    part2: \"2\"\n")

	out, err := execute(t, append(flags, "run", "1", "--json")...)
	require.NoError(t, err)

	var runs []models.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.Equal(t, models.RunStatusPass, run.Status)
		assert.NotEmpty(t, run.InputHash)
	}

	out, err = execute(t, append(flags, "history", "--day", "1")...)
	require.NoError(t, err)
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, truncateID(runs[0].ID))
}

func TestRunCommandFailsOnWrongAnswer(t *testing.T) {
	_, flags := writeWorkspace(t, "answers:\n  1:\n    part1: \"99\"\n")

	out, err := execute(t, append(flags, "run", "1", "--part", "1")...)
	require.Error(t, err)
	assert.Contains(t, out, "fail")
	assert.Contains(t, err.Error(), "1 fail")
}

func TestRunCommandMissingInput(t *testing.T) {
	_, flags := writeWorkspace(t, "workers: 2\n")

	_, err := execute(t, append(flags, "run", "2")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 error")
}

func TestListCommand(t *testing.T) {
	_, flags := writeWorkspace(t, "")

	out, err := execute(t, append(flags, "list")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Chronal Calibration")
	assert.Contains(t, out, "Repose Record")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "advent", "config.yaml")

	out, err := execute(t, "--config", cfgFile, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, cfgFile)

	_, err = execute(t, "--config", cfgFile, "config", "init")
	assert.Error(t, err)

	out, err = execute(t, "--config", cfgFile, "--input-dir", "elsewhere", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "input_dir: elsewhere")
	assert.Contains(t, out, "find_mode: first")
}

func TestParseDays(t *testing.T) {
	days, err := parseDays([]string{"3", "1"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, days)

	_, err = parseDays([]string{"one"})
	assert.Error(t, err)
}
