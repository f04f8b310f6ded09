package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/jobtrackai/fix-components/internal/materialize"
)

func newTestUI(t *testing.T) (*UI, *bytes.Buffer) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	return NewWithWriter(&buf), &buf
}

func TestReporterLines(t *testing.T) {
	tests := []struct {
		name     string
		call     func(u *UI)
		expected string
	}{
		{
			name:     "created",
			call:     func(u *UI) { u.Created("src/components/Header.tsx") },
			expected: "[✓] Fixed: src/components/Header.tsx\n",
		},
		{
			name:     "directory failure",
			call:     func(u *UI) { u.DirectoryFailed("src/components", errors.New("permission denied")) },
			expected: "[ERROR] Directory error src/components: permission denied\n",
		},
		{
			name:     "write failure",
			call:     func(u *UI) { u.WriteFailed("src/components/Hero.tsx", errors.New("disk full")) },
			expected: "[ERROR] Write error src/components/Hero.tsx: disk full\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, buf := newTestUI(t)
			tt.call(u)
			if buf.String() != tt.expected {
				t.Errorf("output = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestDoneSummary(t *testing.T) {
	t.Run("all created", func(t *testing.T) {
		u, buf := newTestUI(t)
		u.Done(materialize.Report{
			{Path: "a", Outcome: materialize.Created},
			{Path: "b", Outcome: materialize.Created},
		})
		if !strings.Contains(buf.String(), "[✓] Done! 2/2 components written.") {
			t.Errorf("output = %q, want success summary", buf.String())
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		u, buf := newTestUI(t)
		u.Done(materialize.Report{
			{Path: "a", Outcome: materialize.Created},
			{Path: "b", Outcome: materialize.WriteError},
			{Path: "c", Outcome: materialize.DirectoryError},
		})
		if !strings.Contains(buf.String(), "[WARNING] Done with errors: 1/3 components written, 2 failed.") {
			t.Errorf("output = %q, want warning summary", buf.String())
		}
	})
}

func TestPromptYesNoNonInteractive(t *testing.T) {
	u, _ := newTestUI(t)
	u.SetNonInteractive(true)

	for _, def := range []bool{true, false} {
		got, err := u.PromptYesNo("Overwrite?", def)
		if err != nil {
			t.Fatalf("PromptYesNo() error = %v", err)
		}
		if got != def {
			t.Errorf("PromptYesNo() = %v, want default %v", got, def)
		}
	}
}
