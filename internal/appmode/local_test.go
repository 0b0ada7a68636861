package appmode_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// stdout в тестах не терминал, поэтому явно включаем глобальный цвет
func forceGlobalColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRunLocal(t *testing.T) {
	forceGlobalColor(t)

	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"), 0o644))

	cases := []struct {
		name       string
		args       []string
		env        map[string]string
		wantCode   int
		wantOut    string
		wantErrOut []string
	}{
		{
			name:     "Positive - literal",
			args:     []string{"minigrep", "duct", path},
			wantCode: appmode.ExitOK,
			wantOut:  "safe, fast, productive.\n",
		},
		{
			name:     "Positive - ignore case",
			args:     []string{"minigrep", "rUsT", path},
			env:      map[string]string{"IGNORE_CASE": ""},
			wantCode: appmode.ExitOK,
			wantOut:  "Rust:\nTrust me.\n",
		},
		{
			name:     "Positive - regex",
			args:     []string{"minigrep", `^\w+:$`, path},
			env:      map[string]string{"USE_REGEX": "1"},
			wantCode: appmode.ExitOK,
			wantOut:  "Rust:\n",
		},
		{
			name:     "Positive - no matches, empty output",
			args:     []string{"minigrep", "xyz", path},
			wantCode: appmode.ExitOK,
		},
		{
			name:       "Negative - not enough args",
			args:       []string{"minigrep", "duct"},
			wantCode:   appmode.ExitError,
			wantErrOut: []string{"Problem parsing arguments: not enough arguments"},
		},
		{
			name:       "Negative - missing file",
			args:       []string{"minigrep", "duct", filepath.Join(t.TempDir(), "nope.txt")},
			wantCode:   appmode.ExitError,
			wantErrOut: []string{"Application error: failed to read input"},
		},
		{
			name:       "Negative - broken pattern with hint",
			args:       []string{"minigrep", "(rust", path},
			env:        map[string]string{"USE_REGEX": ""},
			wantCode:   appmode.ExitError,
			wantErrOut: []string{"Application error: invalid regex pattern", matcher.RegexHint},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}

			code := appmode.RunLocal(tt.args, lookup, &stdout, &stderr)

			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantOut, stdout.String())
			for _, want := range tt.wantErrOut {
				require.Contains(t, stderr.String(), want)
			}
			if tt.wantErrOut != nil && !strings.Contains(tt.wantErrOut[0], "invalid regex pattern") {
				require.NotContains(t, stderr.String(), matcher.RegexHint, "hint is only for pattern errors")
			}
			require.NotContains(t, stderr.String(), "\x1b[", "buffer is not a terminal, no ANSI codes expected")
			if tt.wantErrOut == nil {
				require.Empty(t, stderr.String())
			}
		})
	}
}

func TestRunLocalPlainLabelsForNonTerminal(t *testing.T) {
	forceGlobalColor(t)

	var stdout, stderr bytes.Buffer
	code := appmode.RunLocal([]string{"minigrep"}, func(string) (string, bool) { return "", false }, &stdout, &stderr)

	require.Equal(t, appmode.ExitError, code)
	require.Empty(t, stdout.String())
	require.Equal(t, "Problem parsing arguments: not enough arguments\n", stderr.String())
}

func TestRunLocalPlainLabelsForRegularFile(t *testing.T) {
	forceGlobalColor(t)

	errFile, err := os.Create(filepath.Join(t.TempDir(), "err.log"))
	require.NoError(t, err)
	defer errFile.Close()

	var stdout bytes.Buffer
	code := appmode.RunLocal([]string{"minigrep", "q"}, func(string) (string, bool) { return "", false }, &stdout, errFile)
	require.Equal(t, appmode.ExitError, code)

	raw, err := os.ReadFile(errFile.Name())
	require.NoError(t, err)
	require.Equal(t, "Problem parsing arguments: not enough arguments\n", string(raw))
}
