// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/astro-digest/internal/digest"
	"github.com/pdiddy/astro-digest/pkg/types"
)

func TestLoadSaved(t *testing.T) {
	now := time.Date(2026, 8, 27, 6, 0, 0, 0, time.UTC)
	entries := []digest.Entry{
		{
			Record:     types.Record{Bibcode: "2026arXiv260801234S", Title: "Gyrochronology of NGC 188"},
			Annotation: types.Annotation{Score: 15, Tier: types.TierRelevant},
		},
		{
			Record:     types.Record{Bibcode: "2026MNRAS.100..200B", Title: "A quiet paper"},
			Annotation: types.Annotation{Tier: types.TierGeneral},
		},
	}

	path := filepath.Join(t.TempDir(), "digest.yaml")
	if err := digest.WriteFile(path, entries, now, 3, []string{"batch 2: timeout"}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result, gotNow, daysBack, err := loadSaved(path)
	if err != nil {
		t.Fatalf("loadSaved: %v", err)
	}
	if len(result.Entries) != 2 || result.Entries[0].Record.Bibcode != "2026arXiv260801234S" {
		t.Errorf("Entries = %+v, want the saved two in order", result.Entries)
	}
	if len(result.BatchErrors) != 1 {
		t.Errorf("BatchErrors = %v, want the saved warning", result.BatchErrors)
	}
	if !gotNow.Equal(now) {
		t.Errorf("timestamp = %v, want %v", gotNow, now)
	}
	if daysBack != 3 {
		t.Errorf("daysBack = %d, want 3 from the saved window", daysBack)
	}
}

func TestLoadSavedMissingFile(t *testing.T) {
	if _, _, _, err := loadSaved(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing digest file")
	}
}
