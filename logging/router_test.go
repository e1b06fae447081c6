package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/xbcsmith/antares/logging"
	"github.com/xbcsmith/antares/logging/sinks"
)

func newTestRouter(t *testing.T, cfg logging.Config) (*logging.Router, *sinks.MemorySink) {
	t.Helper()
	mem := sinks.NewMemorySink()
	router, err := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: mem}})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return router, mem
}

func waitForEvents(t *testing.T, mem *sinks.MemorySink, want int) []logging.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if events := mem.Events(); len(events) >= want {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, have %d", want, len(mem.Events()))
	return nil
}

func TestRouterDeliversEvents(t *testing.T) {
	router, mem := newTestRouter(t, logging.DefaultConfig())
	defer closeRouter(t, router)

	router.Publish(context.Background(), logging.Event{
		Type:      logging.EventCampaignLoad,
		Severity:  logging.SeverityInfo,
		Component: "loader",
		Message:   "campaign loaded",
		Fields:    map[string]any{"dir": "campaigns/tutorial"},
	})

	events := waitForEvents(t, mem, 1)
	if events[0].Type != logging.EventCampaignLoad {
		t.Fatalf("type = %q", events[0].Type)
	}
	if events[0].Fields["dir"] != "campaigns/tutorial" {
		t.Fatalf("fields = %v", events[0].Fields)
	}
	if events[0].Time.IsZero() {
		t.Fatal("router must stamp event time")
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router, mem := newTestRouter(t, cfg)
	defer closeRouter(t, router)

	router.Publish(context.Background(), logging.Event{Type: logging.EventToolRun, Severity: logging.SeverityInfo})
	router.Publish(context.Background(), logging.Event{Type: logging.EventToolRun, Severity: logging.SeverityError})

	events := waitForEvents(t, mem, 1)
	if len(events) != 1 || events[0].Severity != logging.SeverityError {
		t.Fatalf("events = %v, want only the error", events)
	}
}

func TestRouterAppliesBaseFields(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"campaign": "tutorial"}
	router, mem := newTestRouter(t, cfg)
	defer closeRouter(t, router)

	router.Publish(context.Background(), logging.Event{Type: logging.EventFileParsed, Severity: logging.SeverityInfo})

	events := waitForEvents(t, mem, 1)
	if events[0].Fields["campaign"] != "tutorial" {
		t.Fatalf("fields = %v, want base campaign field", events[0].Fields)
	}
}

func TestRouterIgnoresUntypedEvents(t *testing.T) {
	router, mem := newTestRouter(t, logging.DefaultConfig())
	router.Publish(context.Background(), logging.Event{Severity: logging.SeverityError})
	closeRouter(t, router)
	if got := len(mem.Events()); got != 0 {
		t.Fatalf("events = %d, want 0", got)
	}
}

func TestWithFieldsDoesNotOverride(t *testing.T) {
	var captured logging.Event
	base := logging.PublisherFunc(func(_ context.Context, e logging.Event) { captured = e })
	p := logging.WithFields(base, map[string]any{"component": "x", "run": 1})

	p.Publish(context.Background(), logging.Event{Type: logging.EventToolRun}.WithField("run", 2))
	if captured.Fields["run"] != 2 {
		t.Fatalf("run = %v, event field must win", captured.Fields["run"])
	}
	if captured.Fields["component"] != "x" {
		t.Fatalf("component = %v", captured.Fields["component"])
	}
}

func closeRouter(t *testing.T, router *logging.Router) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("close router: %v", err)
	}
}
