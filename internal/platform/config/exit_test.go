package config

import (
	"bytes"
	"testing"
)

func captureExit(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()

	var buf bytes.Buffer
	code := -1
	prevStderr, prevExit := stderr, exit
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = prevStderr
		exit = prevExit
	})
	return &buf, &code
}

func TestExitfWritesMessageAndFails(t *testing.T) {
	out, code := captureExit(t)

	Exitf("fatal: %s", "something broke")

	if *code != ExitFailure {
		t.Fatalf("exit code = %d, want %d", *code, ExitFailure)
	}
	if got := out.String(); got != "fatal: something broke\n" {
		t.Fatalf("stderr = %q, want %q", got, "fatal: something broke\n")
	}
}

func TestExitWithCodeUsage(t *testing.T) {
	out, code := captureExit(t)

	ExitWithCode(ExitUsage, "usage: %s", "notifications -event file.json")

	if *code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", *code, ExitUsage)
	}
	if got := out.String(); got != "usage: notifications -event file.json\n" {
		t.Fatalf("stderr = %q", got)
	}
}
