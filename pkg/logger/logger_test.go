package logger

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { Init("info") })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	Init("warn")
	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Warnf("visible %d", 3)
	Errorf("visible %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below the level leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] visible 3") || !strings.Contains(out, "[ERROR] visible 4") {
		t.Fatalf("expected warn and error lines, got: %q", out)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	capture(t)

	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want info", got)
	}
}

func TestPlainHelpers(t *testing.T) {
	buf := capture(t)

	Init("debug")
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	for _, want := range []string{"[DEBUG] d", "[INFO] i", "[WARN] w", "[ERROR] e"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q in output: %q", want, buf.String())
		}
	}
}

func TestLevelString(t *testing.T) {
	capture(t)

	cases := map[string]string{
		"debug":   "debug",
		"INFO":    "info",
		"warning": "warn",
		"Error":   "error",
		"fatal":   "fatal",
	}
	for in, want := range cases {
		Init(in)
		if got := LevelString(); got != want {
			t.Fatalf("Init(%q): LevelString() = %q, want %q", in, got, want)
		}
	}
}
