package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/myrjola/fitfokus/internal/logging"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))

	parent := logging.WithAttrs(context.Background(), slog.String("trace_id", "t1"))
	child := logging.WithAttrs(parent, slog.String("user_id", "u1"))
	sibling := logging.WithAttrs(parent, slog.String("user_id", "u2"))

	logger.InfoContext(child, "child")
	logger.InfoContext(sibling, "sibling")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "trace_id=t1") || !strings.Contains(lines[0], "user_id=u1") {
		t.Errorf("child line missing attributes: %s", lines[0])
	}
	if strings.Contains(lines[1], "user_id=u1") || !strings.Contains(lines[1], "user_id=u2") {
		t.Errorf("sibling line leaked attributes: %s", lines[1])
	}
	if got := len(logging.Attrs(parent)); got != 1 {
		t.Errorf("parent attrs = %d, want 1", got)
	}
}
