package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidate_DefaultScenario(t *testing.T) {
	out, err := execute(t, "validate")
	if err != nil {
		t.Fatalf("validate = %v", err)
	}
	if !strings.HasPrefix(out, "ok: 4 agents") {
		t.Errorf("output = %q", out)
	}
}

func TestValidate_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"worldWidth": -1, "worldHeight": 5}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "validate", "--config", path); err == nil {
		t.Fatal("validate on a bad scenario = nil; want error")
	}
}

func TestTrace_WritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	if _, err := execute(t, "trace", "--log-level", "off", "--ticks", "5", "--out", path); err != nil {
		t.Fatalf("trace = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 1+5*4 {
		t.Errorf("lines = %d; want header + 5 ticks x 4 agents", len(lines))
	}
}

func TestTrace_RejectsBadFlags(t *testing.T) {
	if _, err := execute(t, "trace", "--ticks", "0"); err == nil {
		t.Error("trace --ticks 0 = nil; want error")
	}
	if _, err := execute(t, "trace", "--log-level", "loud"); err == nil {
		t.Error("trace --log-level loud = nil; want error")
	}
}
