package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags puts every flag of cmd and its subcommands back to its default.
// Flag values live on the package-level commands and survive Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(args ...string) (string, error) {
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// executeWithInput runs the root command with stdin taken from input.
func executeWithInput(input string, args ...string) (string, error) {
	rootCmd.SetIn(strings.NewReader(input))
	defer rootCmd.SetIn(nil)
	return executeCommand(args...)
}

func writeWords(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "wordle.log"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDLE_MAX_ROUNDS", "6")
	t.Setenv("WORDLE_SCORING", "simple")
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("test-version")
	out, err := executeCommand("version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "test-version") {
		t.Errorf("expected version output to contain 'test-version', got: %s", out)
	}
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"score", "words", "version", "--plain", "--daily"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestScoreCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"score", "--classic=false", "mulch", "music"}, "GGXXY"},
		{[]string{"score", "--classic=false", "CRANE", "slate"}, "XXGXG"},
		{[]string{"score", "--classic=false", "slate", "sassy"}, "GYYYX"},
		{[]string{"score", "--classic", "slate", "sassy"}, "GYXXX"},
	}
	for _, tt := range tests {
		out, err := executeCommand(tt.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestScoreCommand_BadWord(t *testing.T) {
	for _, args := range [][]string{
		{"score", "crane", "cra"},
		{"score", "cr4ne", "slate"},
		{"score", "crane"},
	} {
		if _, err := executeCommand(args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestWordsCommand(t *testing.T) {
	isolateEnv(t)
	answers := writeWords(t, "answers.txt", "crane", "slate", "toolong", "crane")
	allowed := writeWords(t, "allowed.txt", "mulch", "music")

	out, err := executeCommand("words", "--words", answers, "--allowed", allowed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "answers: 2") || !strings.Contains(out, "allowed: 4") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestWordsCommand_MissingFile(t *testing.T) {
	isolateEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")
	if _, err := executeCommand("words", "--words", missing, "--allowed", ""); err == nil {
		t.Error("expected error for a missing answers file")
	}
}

func TestPlayPlain_Win(t *testing.T) {
	isolateEnv(t)
	answers := writeWords(t, "answers.txt", "crane")
	allowed := writeWords(t, "allowed.txt", "slate")

	out, err := executeWithInput("slate\ncrane\n/quit\n",
		"--plain", "--words", answers, "--allowed", allowed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"SLATE  XXGXG", "CRANE  GGGGG", "Solved in 2/6!", "Goodbye."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlayPlain_RoundsFlag(t *testing.T) {
	isolateEnv(t)
	answers := writeWords(t, "answers.txt", "crane", "slate")
	allowed := writeWords(t, "allowed.txt", "mulch")

	out, err := executeWithInput("mulch\n",
		"--plain", "--words", answers, "--allowed", allowed, "--rounds", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "in 1 tries") || !strings.Contains(out, "Out of guesses.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPlay_InvalidConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("WORDLE_SCORING", "fancy")
	if _, err := executeWithInput("", "--plain"); err == nil {
		t.Error("expected error for an unknown scoring scheme")
	}
}

func TestRootHelp_DoesNotLeakIntoNextRun(t *testing.T) {
	isolateEnv(t)
	if _, err := executeCommand("--help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	answers := writeWords(t, "answers.txt", "crane")

	out, err := executeWithInput("crane\n", "--plain", "--words", answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Available Commands") || !strings.Contains(out, "Solved in 1/6!") {
		t.Errorf("expected a game transcript, got:\n%s", out)
	}
}

func TestPlayPlain_ClassicFlagOverridesEnv(t *testing.T) {
	answers := writeWords(t, "answers.txt", "slate")
	allowed := writeWords(t, "allowed.txt", "sassy")

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"env classic", "classic", nil, "SASSY  GYXXX"},
		{"flag turns classic off", "classic", []string{"--classic=false"}, "SASSY  GYYYX"},
		{"flag turns classic on", "simple", []string{"--classic"}, "SASSY  GYXXX"},
		{"env simple", "simple", nil, "SASSY  GYYYX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("WORDLE_SCORING", tt.env)
			args := append([]string{"--plain", "--words", answers, "--allowed", allowed}, tt.args...)
			out, err := executeWithInput("sassy\n", args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}
