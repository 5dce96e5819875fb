package deps_test

import (
	"testing"

	"vidsqueeze/internal/config"
	"vidsqueeze/internal/deps"
)

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.FFmpeg = "/opt/ffmpeg/bin/ffmpeg"

	requirements := deps.Requirements(&cfg)
	if len(requirements) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(requirements))
	}
	if requirements[0].Command != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected configured ffmpeg path, got %q", requirements[0].Command)
	}
	if requirements[1].Command != "ffprobe" {
		t.Fatalf("expected default ffprobe, got %q", requirements[1].Command)
	}
}

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "FFmpeg", Command: "/nonexistent/path/to/ffmpeg"},
		{Name: "Empty", Command: "  "},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
	if statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[1].Detail)
	}
}

func TestCheckBinariesFindsShell(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{{Name: "Shell", Command: "sh"}})
	if !statuses[0].Available {
		t.Skipf("sh not on PATH: %s", statuses[0].Detail)
	}
	if statuses[0].Command == "sh" {
		t.Fatalf("expected resolved absolute path, got %q", statuses[0].Command)
	}
}
