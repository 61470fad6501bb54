package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	// Reset sticky flag state across invocations
	for _, c := range []string{"max-missing"} {
		if fl := analyzeCmd.Flags().Lookup(c); fl != nil {
			fl.Changed = false
		}
		if fl := scoreCmd.Flags().Lookup(c); fl != nil {
			fl.Changed = false
		}
	}
	if fl := histCmd.Flags().Lookup("json"); fl != nil {
		_ = fl.Value.Set("false")
		fl.Changed = false
	}
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), "command %v", args)
}

// writeData writes a small well-formed survey fixture and returns its path.
func writeData(t *testing.T, dir string) string {
	t.Helper()
	rows := []map[string]any{
		{"age": 45, "gender": "F", "email": "a@b.c", "q1": 10, "q2": 10, "q3": 10, "q4": 10, "q5": 10},
		{"age": 30, "gender": "F", "email": "notanemail", "q1": 20, "q2": 20, "q3": 20, "q4": 20, "q5": nil},
		{"age": "unknown", "gender": "M", "email": "m@lab.org", "q1": 5, "q2": nil, "q3": nil, "q4": 5, "q5": 5},
	}
	b, err := json.Marshal(rows)
	require.NoError(t, err)
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestCLI_AllCommands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeData(t, home)

	runCmd(t, "analyze", path)
	runCmd(t, "hist", path)
	runCmd(t, "hist", "--json", path)
	runCmd(t, "emails", path)
	runCmd(t, "impute", path)
	runCmd(t, "score", path)
	runCmd(t, "score", "--max-missing", "2", path)
	runCmd(t, "correlate", path)
	runCmd(t, "describe", path)
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	runCmd(t, "config", "set", "max_missing_per_subject", "2")
	cfgPath := filepath.Join(home, ".surveyloom", "config.yaml")
	_, err := os.Stat(cfgPath)
	require.NoError(t, err)

	runCmd(t, "config", "show")
}

func TestCLI_MissingFileFails(t *testing.T) {
	rootCmd.SetArgs([]string{"hist", filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, rootCmd.Execute())
}
