// Package campaign is the thin orchestration layer over loading and
// validation: load a campaign directory, run the full validator, and expose
// the result for query.
package campaign

import (
	"context"

	"github.com/xbcsmith/antares/content"
	"github.com/xbcsmith/antares/contentdb"
	"github.com/xbcsmith/antares/logging"
	"github.com/xbcsmith/antares/validate"
)

// Campaign is a loaded and validated campaign. DB is read-only after load;
// swapping campaigns means loading a new Campaign.
type Campaign struct {
	DB       *contentdb.Database
	Report   validate.Report
	Manifest *content.Manifest
}

// Options tunes loading. The zero value uses default balance bands and no
// logging.
type Options struct {
	Bands     *validate.Bands
	Publisher logging.Publisher
}

// Load reads and validates a campaign directory. A load failure returns the
// *contentdb.LoadError; validation findings never fail the load, they ride
// along in the Report.
func Load(ctx context.Context, dir string) (*Campaign, error) {
	return LoadWith(ctx, dir, Options{})
}

// LoadWith is Load with explicit options.
func LoadWith(ctx context.Context, dir string, opts Options) (*Campaign, error) {
	pub := opts.Publisher
	if pub == nil {
		pub = logging.NopPublisher()
	}
	bands := validate.DefaultBands()
	if opts.Bands != nil {
		bands = *opts.Bands
	}

	db, err := contentdb.LoadCampaign(dir)
	if err != nil {
		pub.Publish(ctx, logging.Event{
			Type:      logging.EventCampaignLoad,
			Severity:  logging.SeverityError,
			Component: "loader",
			Message:   "campaign load failed",
			Fields:    map[string]any{"dir": dir, "error": err.Error()},
		})
		return nil, err
	}

	stats := db.Stats()
	pub.Publish(ctx, logging.Event{
		Type:      logging.EventCampaignLoad,
		Severity:  logging.SeverityInfo,
		Component: "loader",
		Message:   "campaign loaded",
		Fields: map[string]any{
			"dir":     dir,
			"classes": stats.Classes,
			"items":   stats.Items,
			"spells":  stats.Spells,
			"maps":    stats.Maps,
		},
	})

	report := db.ValidateWith(bands)
	severity := logging.SeverityInfo
	if !report.Valid() {
		severity = logging.SeverityWarn
	}
	pub.Publish(ctx, logging.Event{
		Type:      logging.EventCampaignValidate,
		Severity:  severity,
		Component: "validator",
		Message:   "campaign validated",
		Fields: map[string]any{
			"dir":      dir,
			"findings": len(report),
			"errors":   len(report.Errors()),
			"warnings": len(report.Warnings()),
		},
	})

	return &Campaign{DB: db, Report: report, Manifest: db.Manifest()}, nil
}

// Valid reports whether the campaign passed validation.
func (c *Campaign) Valid() bool {
	if c == nil {
		return false
	}
	return c.Report.Valid()
}

// StartingMap resolves the manifest's starting map, when both exist.
func (c *Campaign) StartingMap() (*content.Map, bool) {
	if c == nil || c.Manifest == nil || c.Manifest.StartingMap == nil {
		return nil, false
	}
	return c.DB.GetMap(*c.Manifest.StartingMap)
}
