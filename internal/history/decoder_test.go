package history

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeZshExtended(t *testing.T) {
	input := ": 1700000000:0;git status\n: 1700000100:2;make build\n"

	entries, err := Decode(strings.NewReader(input), FlavorZsh)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Command != "git status" {
		t.Errorf("Expected command 'git status', got %q", entries[0].Command)
	}
	if entries[0].Timestamp != time.Unix(1700000000, 0) {
		t.Errorf("Expected timestamp 1700000000, got %v", entries[0].Timestamp)
	}
	if entries[1].Command != "make build" {
		t.Errorf("Expected command 'make build', got %q", entries[1].Command)
	}
}

func TestDecodeZshBareLines(t *testing.T) {
	entries, err := Decode(strings.NewReader("ls -la\n"), FlavorZsh)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Command != "ls -la" {
		t.Errorf("Expected command 'ls -la', got %q", entries[0].Command)
	}
	if !entries[0].Timestamp.IsZero() {
		t.Errorf("Expected zero timestamp for bare line, got %v", entries[0].Timestamp)
	}
}

func TestDecodeZshMalformedPrefixFallsBack(t *testing.T) {
	// Timestamp overflows int64, so the prefix is unparseable.
	line := ": 999999999999999999999999:0;ls"

	entries, err := Decode(strings.NewReader(line+"\n"), FlavorZsh)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Command != line {
		t.Errorf("Expected literal fallback %q, got %q", line, entries[0].Command)
	}
}

func TestDecodeBashLines(t *testing.T) {
	input := "git status\n\nmake test\n"

	entries, err := Decode(strings.NewReader(input), FlavorBash)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries (blank dropped), got %d", len(entries))
	}
	if entries[0].Command != "git status" || entries[1].Command != "make test" {
		t.Errorf("Unexpected commands: %q, %q", entries[0].Command, entries[1].Command)
	}
}

func TestDecodeBashTimestampComment(t *testing.T) {
	input := "#1700000000\ngit push\n"

	entries, err := Decode(strings.NewReader(input), FlavorBash)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected timestamp line to be absorbed, got %d entries", len(entries))
	}
	if entries[0].Command != "git push" {
		t.Errorf("Expected command 'git push', got %q", entries[0].Command)
	}
	if entries[0].Timestamp != time.Unix(1700000000, 0) {
		t.Errorf("Expected timestamp from comment line, got %v", entries[0].Timestamp)
	}
}

func TestDecodeContinuationLines(t *testing.T) {
	input := "echo one \\\ntwo\nls\n"

	entries, err := Decode(strings.NewReader(input), FlavorBash)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected continuation to join into 2 entries, got %d", len(entries))
	}
	if entries[0].Command != "echo one two" {
		t.Errorf("Expected single-space join 'echo one two', got %q", entries[0].Command)
	}
	if entries[1].Command != "ls" {
		t.Errorf("Expected command 'ls', got %q", entries[1].Command)
	}
}

func TestDecodeStripsSudo(t *testing.T) {
	entries, err := Decode(strings.NewReader("sudo apt install jq\n"), FlavorBash)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Command != "apt install jq" {
		t.Errorf("Expected sudo to be folded, got %q", entries[0].Command)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	entries, err := Decode(strings.NewReader(""), FlavorZsh)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries for empty input, got %d", len(entries))
	}
}

func TestDetectFlavor(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	if flavor, ok := DetectFlavor(); !ok || flavor != FlavorZsh {
		t.Errorf("Expected zsh detection, got %q (ok=%v)", flavor, ok)
	}

	t.Setenv("SHELL", "/bin/bash")
	if flavor, ok := DetectFlavor(); !ok || flavor != FlavorBash {
		t.Errorf("Expected bash detection, got %q (ok=%v)", flavor, ok)
	}

	t.Setenv("SHELL", "/usr/local/bin/fish")
	if _, ok := DetectFlavor(); ok {
		t.Error("Expected detection to fail for fish")
	}
}
