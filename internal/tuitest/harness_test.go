package tuitest

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunRequiresCommand(t *testing.T) {
	if _, err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := withDefaults(Config{Width: 90})
	if cfg.Width != 90 || cfg.Height != defaultHeight || cfg.Timeout != defaultTimeout {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
}

func TestBuildEnvKeepsExplicitTerm(t *testing.T) {
	env := buildEnv([]string{"TERM=dumb"})
	count := 0
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			count++
		}
	}
	if env[len(env)-1] == "TERM=xterm-256color" {
		t.Fatal("default TERM appended despite explicit value")
	}
	if count == 0 {
		t.Fatal("TERM missing")
	}
}

func TestExpectWaitsForScreenText(t *testing.T) {
	out := &screen{}
	go func() {
		time.Sleep(30 * time.Millisecond)
		_, _ = out.Write([]byte("\x1b[1mChoose a quote\x1b[0m"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := waitFor(ctx, out, "Choose a quote"); err != nil {
		t.Fatalf("waitFor: %v", err)
	}
}

func TestExpectTimesOut(t *testing.T) {
	out := &screen{}
	_, _ = out.Write([]byte("Loading…"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := waitFor(ctx, out, "No quotes found.")
	if err == nil {
		t.Fatal("expected timeout")
	}
	if !strings.Contains(err.Error(), "Loading…") {
		t.Fatalf("error should include the screen, got %v", err)
	}
	if got := Expect("x"); got.WaitFor != "x" || got.Input != nil {
		t.Fatalf("unexpected step %#v", got)
	}
}

func TestTerminalResponderAnswersInStreamOrder(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("\x1b]11;?\x1b\\ then \x1b[6n"))
	want := "\x1b]11;rgb:0000/0000/0000\x1b\\\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("unexpected responses %q", out.String())
	}
}

func TestTerminalResponderBoundsBuffer(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process(bytes.Repeat([]byte("x"), 1000))
	if len(tr.pending) != responderTail {
		t.Fatalf("expected %d pending bytes, got %d", responderTail, len(tr.pending))
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected response %q", out.String())
	}
}
