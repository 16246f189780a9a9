package history_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"songsearch/internal/history"
	"songsearch/internal/lookup"
	"songsearch/internal/testsupport"
)

func TestRecordAndRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	first := history.Entry{
		CorrelationID: "req-1",
		Query:         "Bohemian Rhapsody",
		Term:          "Bohemian Rhapsody",
		Outcome:       "selected",
		TrackName:     "Bohemian Rhapsody",
		URL:           "Apple Music: https://music.apple.com/ua/album/1",
		AlbumCover:    "https://is1-ssl.mzstatic.com/image/1/100x100bb.jpg",
		CreatedAt:     base,
	}
	second := history.Entry{
		CorrelationID: "req-2",
		Query:         "nonexistent song",
		Outcome:       "no_match",
		URL:           "Apple Music: No result",
		Error:         "no match: lookup: select",
		CreatedAt:     base.Add(time.Minute),
	}
	for _, entry := range []history.Entry{first, second} {
		id, err := store.Record(ctx, entry)
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if id == 0 {
			t.Fatal("expected row id to be assigned")
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	want := []history.Entry{second, first}
	if diff := cmp.Diff(want, entries, cmpopts.IgnoreFields(history.Entry{}, "ID")); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}

	limited, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(limited) != 1 || limited[0].CorrelationID != "req-2" {
		t.Fatalf("expected newest entry only, got %+v", limited)
	}
}

func TestRecordRequiresQuery(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if _, err := store.Record(context.Background(), history.Entry{Outcome: "no_match"}); err == nil {
		t.Fatal("expected error for entry without query")
	}
}

func TestRecordStampsCreatedAt(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	before := time.Now().Add(-time.Second)
	if _, err := store.Record(context.Background(), history.Entry{Query: "q", Outcome: "no_match", URL: "x"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	entries, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].CreatedAt.Before(before) {
		t.Fatalf("expected CreatedAt to be stamped, got %+v", entries)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.Record(context.Background(), history.Entry{Query: "q", Outcome: "selected", URL: "u"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	entries, err := reopened.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected persisted entry, got %d", len(entries))
	}
}

func TestClear(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := store.Record(ctx, history.Entry{Query: "q", Outcome: "no_match", URL: "x"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d", len(entries))
	}
}

func TestNewEntryFromInspection(t *testing.T) {
	candidate := testsupport.Track(7, "Bohemian Rhapsody", "A Night at the Opera")
	in := lookup.Inspection{
		Query:   "Bohemian Rhapsody",
		Term:    "Bohemian Rhapsody",
		Outcome: lookup.Selected(candidate),
	}
	resp := in.Outcome.Render("Apple Music", nil)

	entry := history.NewEntry("req-7", in, resp)
	if entry.Outcome != "selected" || entry.TrackName != "Bohemian Rhapsody" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.AlbumCover != candidate.ArtworkURL100 || entry.Error != "" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	failed := lookup.Inspection{Query: "x", Outcome: lookup.TransportFailure(errors.New("offline"))}
	entry = history.NewEntry("req-8", failed, failed.Outcome.Render("Apple Music", nil))
	if entry.Outcome != "transport_failure" || entry.Error != "offline" || entry.AlbumCover != "" {
		t.Fatalf("unexpected failure entry %+v", entry)
	}
}

func TestOpenPathRequiresPath(t *testing.T) {
	if _, err := history.OpenPath(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRecentOrdersBySubSecondTime(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	second := time.Date(2026, 10, 1, 12, 0, 5, 0, time.UTC)
	entries := []history.Entry{
		{Query: "later", Outcome: "selected", URL: "u", CreatedAt: second.Add(510 * time.Millisecond)},
		{Query: "earlier", Outcome: "selected", URL: "u", CreatedAt: second.Add(500 * time.Millisecond)},
		{Query: "whole second", Outcome: "selected", URL: "u", CreatedAt: second},
	}
	for _, entry := range entries {
		if _, err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	var order []string
	for _, entry := range got {
		order = append(order, entry.Query)
	}
	if diff := cmp.Diff([]string{"later", "earlier", "whole second"}, order); diff != "" {
		t.Fatalf("expected newest first (-want +got):\n%s", diff)
	}
	if !got[0].CreatedAt.Equal(entries[0].CreatedAt) {
		t.Fatalf("expected timestamp to round-trip, got %v", got[0].CreatedAt)
	}
}

func TestOpenRejectsNewerSchemaVersion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.History.Path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 2"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw db: %v", err)
	}

	_, err = history.Open(cfg)
	if !errors.Is(err, history.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
