package main

import (
	"strings"
	"testing"
	"time"

	"vidsqueeze/internal/history"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	expected := []string{"compress", "probe", "history", "doctor", "config"}
	for _, name := range expected {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q subcommand to be registered", name)
		}
	}
}

func TestShouldSkipConfigHonorsAnnotation(t *testing.T) {
	root := newRootCommand()
	configCmd, _, err := root.Find([]string{"config", "init"})
	if err != nil {
		t.Fatalf("find config init: %v", err)
	}
	if !shouldSkipConfig(configCmd) {
		t.Fatal("config init must not require a loadable config")
	}

	compressCmd, _, err := root.Find([]string{"compress"})
	if err != nil {
		t.Fatalf("find compress: %v", err)
	}
	if shouldSkipConfig(compressCmd) {
		t.Fatal("compress must load config")
	}
}

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("FFmpeg", statusOK, "/usr/bin/ffmpeg", false)
	if !strings.Contains(line, "[OK]") || !strings.Contains(line, "/usr/bin/ffmpeg") {
		t.Fatalf("unexpected status line: %q", line)
	}

	colored := renderStatusLine("FFmpeg", statusError, "missing", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected colorized line, got %q", colored)
	}
}

func TestFormatSaved(t *testing.T) {
	completed := history.Record{
		Status:       history.StatusCompleted,
		InputBytes:   2048,
		OutputBytes:  1024,
		PercentSaved: 50,
		CreatedAt:    time.Now(),
	}
	if got := formatSaved(completed); !strings.Contains(got, "1.0 KiB") || !strings.Contains(got, "50.0%") {
		t.Fatalf("unexpected rendering: %q", got)
	}

	grew := history.Record{
		Status:       history.StatusCompleted,
		InputBytes:   1000,
		OutputBytes:  1200,
		PercentSaved: -20,
	}
	if got := formatSaved(grew); !strings.HasPrefix(got, "-") {
		t.Fatalf("growth must keep its sign: %q", got)
	}

	failed := history.Record{Status: history.StatusFailed}
	if got := formatSaved(failed); got != "-" {
		t.Fatalf("expected placeholder for failed run, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Field", "Value"},
		[][]string{{"Duration", "10.000 s"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "Duration") || !strings.Contains(out, "10.000 s") {
		t.Fatalf("unexpected table output: %q", out)
	}
}
