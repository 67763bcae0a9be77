// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/astro-digest/pkg/types"
)

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.yaml")
	now := time.Date(2026, 8, 27, 6, 0, 0, 0, time.UTC)

	entries := []Entry{{
		Record: types.Record{
			Bibcode: "2026A",
			Title:   "Gyrochronology of NGC 188",
			Authors: []string{"Soares-Furtado, M."},
			PubDate: "2026-08-00",
		},
		Annotation: types.Annotation{Score: 20, Tier: types.TierMustRead, Priority: true},
	}}

	if err := WriteFile(path, entries, now, 7, []string{"orcid 0000 batch 1: timeout"}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if f.Window.From != "2026-08-20" || f.Window.To != "2026-08-27" {
		t.Errorf("Window = %+v", f.Window)
	}
	if f.Summary.Total != 1 {
		t.Errorf("Total = %d, want 1", f.Summary.Total)
	}
	if f.Summary.ByTier[types.TierMustRead] != 1 {
		t.Errorf("ByTier = %v", f.Summary.ByTier)
	}
	if len(f.Entries) != 1 || f.Entries[0].Record.Bibcode != "2026A" {
		t.Errorf("Entries = %+v", f.Entries)
	}
	if len(f.Summary.BatchErrors) != 1 {
		t.Errorf("BatchErrors = %v", f.Summary.BatchErrors)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
