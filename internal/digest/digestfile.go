// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/astro-digest/pkg/types"
)

// File is the on-disk representation of one digest run. A run can be saved
// before delivery and re-rendered later without re-querying ADS.
type File struct {
	Window  Window  `yaml:"window"`
	Entries []Entry `yaml:"entries"`
	Summary Summary `yaml:"summary"`
}

// Window records the date range the run covered.
type Window struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total       int                `yaml:"total"`
	ByTier      map[types.Tier]int `yaml:"by_tier"`
	BatchErrors []string           `yaml:"batch_errors,omitempty"`
	Timestamp   time.Time          `yaml:"timestamp"`
}

const dateFmt = "2006-01-02"

// WriteFile saves the run to a YAML file.
func WriteFile(path string, entries []Entry, now time.Time, daysBack int, batchErrors []string) error {
	f := File{
		Window: Window{
			From: now.AddDate(0, 0, -daysBack).Format(dateFmt),
			To:   now.Format(dateFmt),
		},
		Entries: entries,
		Summary: Summary{
			Total:       len(entries),
			ByTier:      TierCounts(entries),
			BatchErrors: batchErrors,
			Timestamp:   now,
		},
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling digest file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a previously saved digest run from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading digest file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing digest file: %w", err)
	}
	return &f, nil
}
