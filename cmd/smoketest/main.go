package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/myrjola/fitfokus/internal/e2etest"
	"github.com/myrjola/fitfokus/internal/logging"
	"github.com/myrjola/fitfokus/internal/testhelpers"
)

type draftResponse struct {
	PlanType string            `json:"planType"`
	Sets     []json.RawMessage `json:"sets"`
}

// TestPlan requests a draft and checks that the server proposes exercises for an anonymous identity.
func TestPlan(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var draft draftResponse
	if err := client.PostJSON(ctx, "/api/plan/suggest", nil, &draft); err != nil {
		return fmt.Errorf("suggest plan: %w", err)
	}
	if draft.PlanType == "" || len(draft.Sets) == 0 {
		return fmt.Errorf("empty draft for plan type %q", draft.PlanType)
	}
	var settings map[string]any
	if err := client.GetJSON(ctx, "/api/settings", &settings); err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestPlan(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing plan suggestion", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
