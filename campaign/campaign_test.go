package campaign

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xbcsmith/antares/contentdb"
	"github.com/xbcsmith/antares/logging"
)

func TestLoadTutorial(t *testing.T) {
	dir := filepath.Join("..", "contentdb", "testdata", "tutorial")
	c, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Valid() {
		t.Fatalf("tutorial should be valid: %v", c.Report.Errors())
	}
	start, ok := c.StartingMap()
	if !ok || start.ID != "village" {
		t.Fatalf("starting map = %v, %v", start, ok)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	var lerr *contentdb.LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *contentdb.LoadError", err)
	}
}

func TestLoadPublishesEvents(t *testing.T) {
	var events []logging.Event
	pub := logging.PublisherFunc(func(_ context.Context, e logging.Event) {
		events = append(events, e)
	})

	dir := filepath.Join("..", "contentdb", "testdata", "tutorial")
	if _, err := LoadWith(context.Background(), dir, Options{Publisher: pub}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want load + validate", len(events))
	}
	if events[0].Type != logging.EventCampaignLoad || events[1].Type != logging.EventCampaignValidate {
		t.Fatalf("event types = %q, %q", events[0].Type, events[1].Type)
	}
}
