// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"go.yaml.in/yaml/v3"
)

func TestFetchConfigNormalizeDefaults(t *testing.T) {
	cfg := FetchConfig{}.Normalize()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.DaysBack != 7 {
		t.Errorf("DaysBack = %d, want 7", cfg.DaysBack)
	}
	if cfg.Rows != 500 {
		t.Errorf("Rows = %d, want 500", cfg.Rows)
	}
	if cfg.PriorityRows != 200 {
		t.Errorf("PriorityRows = %d, want 200", cfg.PriorityRows)
	}
	if cfg.MaxTermsPerQuery != 40 {
		t.Errorf("MaxTermsPerQuery = %d, want 40", cfg.MaxTermsPerQuery)
	}
}

func TestFetchConfigNormalizeKeepsSetValues(t *testing.T) {
	cfg := FetchConfig{DaysBack: 2, Rows: 50}.Normalize()
	if cfg.DaysBack != 2 || cfg.Rows != 50 {
		t.Errorf("Normalize() = %+v, set values must survive", cfg)
	}
}

func TestDigestConfigYAML(t *testing.T) {
	doc := `
fetch:
  days_back: 3
  rows: 100
  max_terms_per_query: 20
smtp:
  host: smtp.example.com
  port: 2525
  from: sender@example.com
  to: reader@example.com
`
	var cfg DigestConfig
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if cfg.Fetch.DaysBack != 3 || cfg.Fetch.Rows != 100 || cfg.Fetch.MaxTermsPerQuery != 20 {
		t.Errorf("Fetch = %+v, yaml keys did not map", cfg.Fetch)
	}
	if cfg.SMTP.Host != "smtp.example.com" || cfg.SMTP.Port != 2525 {
		t.Errorf("SMTP = %+v, yaml keys did not map", cfg.SMTP)
	}
	if cfg.SMTP.From != "sender@example.com" || cfg.SMTP.To != "reader@example.com" {
		t.Errorf("SMTP addresses = %q/%q, yaml keys did not map", cfg.SMTP.From, cfg.SMTP.To)
	}
}
