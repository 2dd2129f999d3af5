package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func writeTempFile(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func newMineTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "mine"}
	cmd.SetOut(out)
	cmd.Flags().BoolP("progress", "p", false, "report progress on stderr")
	cmd.Flags().Bool("raw", false, "also dump the tree before refinement")
	return cmd
}

func TestMineDump(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	file := writeTempFile(t, dir, "app.log", []string{
		"connection from 10.0.0.1 accepted",
		"connection from 10.0.0.2 accepted",
	})

	var out bytes.Buffer
	cmd := newMineTestCmd(&out)

	if err := runMine(cmd, []string{file}); err != nil {
		t.Fatalf("runMine() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "[ROOT]") {
		t.Errorf("dump missing root node:\n%s", got)
	}
	if !strings.Contains(got, "%ipv4%") {
		t.Errorf("dump missing recognized address placeholder:\n%s", got)
	}
	if !strings.Contains(got, "[nterm 2]") {
		t.Errorf("dump missing terminal count:\n%s", got)
	}
}

func TestMineRawDumpsTwice(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	file := writeTempFile(t, dir, "app.log", []string{"alpha beta"})

	var out bytes.Buffer
	cmd := newMineTestCmd(&out)
	if err := cmd.Flags().Set("raw", "true"); err != nil {
		t.Fatal(err)
	}

	if err := runMine(cmd, []string{file}); err != nil {
		t.Fatalf("runMine() error = %v", err)
	}

	if got := strings.Count(out.String(), "[ROOT]"); got != 2 {
		t.Errorf("raw mode printed %d dumps, want 2:\n%s", got, out.String())
	}
}

func TestMineMissingFile(t *testing.T) {
	viper.Reset()

	var out bytes.Buffer
	cmd := newMineTestCmd(&out)

	if err := runMine(cmd, []string{filepath.Join(t.TempDir(), "nope.log")}); err == nil {
		t.Error("runMine() with missing file should fail")
	}
}

func TestMineGlob(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	writeTempFile(t, dir, "a.log", []string{"service started"})
	writeTempFile(t, dir, "b.log", []string{"service started"})

	var out bytes.Buffer
	cmd := newMineTestCmd(&out)

	if err := runMine(cmd, []string{filepath.Join(dir, "*.log")}); err != nil {
		t.Fatalf("runMine() error = %v", err)
	}
	if !strings.Contains(out.String(), "[nterm 2]") {
		t.Errorf("glob run should fold both files into one branch:\n%s", out.String())
	}
}
