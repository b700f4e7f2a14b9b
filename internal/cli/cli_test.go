package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"build":      false,
		"new":        false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"comic", "output"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("root command missing persistent flag %q", flag)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if got := c.Logger.GetLevel(); got != log.InfoLevel {
		t.Fatalf("initial level = %v, want %v", got, log.InfoLevel)
	}

	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("after SetLogLevel, level = %v, want %v", got, log.DebugLevel)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		aborted bool
	}{
		{name: "empty defaults to yes", input: "\n"},
		{name: "y", input: "y\n"},
		{name: "yes uppercase", input: "YES\n"},
		{name: "n aborts", input: "n\n", aborted: true},
		{name: "garbage aborts", input: "maybe\n", aborted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tt.input))
			err := confirm(in, "Proceed?")
			if tt.aborted {
				if !errors.Is(err, errAborted) {
					t.Errorf("confirm(%q) = %v, want errAborted", tt.input, err)
				}
			} else if err != nil {
				t.Errorf("confirm(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

func TestPromptLineTrimsInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  The First Volume  \n"))
	got, err := promptLine(in, "Title")
	if err != nil {
		t.Fatalf("promptLine error: %v", err)
	}
	if got != "The First Volume" {
		t.Errorf("promptLine = %q, want %q", got, "The First Volume")
	}
}
