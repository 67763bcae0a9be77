// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ads

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/astro-digest/pkg/types"
)

const sampleADSJSON = `{
  "response": {
    "numFound": 2,
    "docs": [
      {
        "bibcode": "2026arXiv260801234S",
        "title": ["Gyrochronology of NGC 188"],
        "author": ["Soares-Furtado, M.", "Smith, J."],
        "aff": ["University of Wisconsin-Madison", "Caltech"],
        "abstract": "We measure rotation periods.",
        "identifier": ["arXiv:2608.01234", "2026arXiv260801234S"],
        "arxiv_class": ["astro-ph.SR"],
        "pubdate": "2026-08-00",
        "orcid_pub": ["0000-0001-7493-7419", "-"]
      },
      {
        "bibcode": "2026arXiv260805678V",
        "author": ["Vanderburg, A."],
        "pubdate": "not-a-date"
      }
    ]
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := adsAPIBase
	adsAPIBase = ts.URL
	t.Cleanup(func() { adsAPIBase = old })

	c := NewClient("test-token", types.FetchConfig{})
	c.HTTPClient = ts.Client()
	return c
}

func TestClientSearch(t *testing.T) {
	var gotAuth, gotQuery string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleADSJSON)
	})

	records, err := c.Search(context.Background(), `abs:"gyrochronology"`, 500)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotQuery != `abs:"gyrochronology"` {
		t.Errorf("q = %q", gotQuery)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	r := records[0]
	if r.Bibcode != "2026arXiv260801234S" {
		t.Errorf("Bibcode = %q", r.Bibcode)
	}
	if r.Title != "Gyrochronology of NGC 188" {
		t.Errorf("Title = %q", r.Title)
	}
	if len(r.Authors) != 2 || len(r.Affiliations) != 2 {
		t.Errorf("Authors/Affiliations = %v / %v", r.Authors, r.Affiliations)
	}
	if r.ArxivID() != "2608.01234" {
		t.Errorf("ArxivID = %q", r.ArxivID())
	}
	if !r.Date().Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, pubdate day placeholder should parse as first of month", r.Date())
	}

	// Sparse doc: missing title and malformed date normalize, never error.
	r = records[1]
	if r.Title != "" {
		t.Errorf("Title = %q, want empty", r.Title)
	}
	if !r.Date().IsZero() {
		t.Errorf("Date = %v, want zero for malformed pubdate", r.Date())
	}
	if !strings.HasPrefix(r.URL(), "https://ui.adsabs.harvard.edu/abs/") {
		t.Errorf("URL = %q, want ADS fallback without arXiv ID", r.URL())
	}
}

func TestClientSearchHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Search(context.Background(), "anything", 10)
	if err == nil || !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("expected HTTP 500 error, got: %v", err)
	}
}

func TestClientSearchRequiresToken(t *testing.T) {
	c := NewClient("", types.FetchConfig{})
	_, err := c.Search(context.Background(), "anything", 10)
	if err == nil || !strings.Contains(err.Error(), "token") {
		t.Errorf("expected token error, got: %v", err)
	}
}

func TestFetchTopicIsolatesBatchFailures(t *testing.T) {
	calls := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleADSJSON)
	})

	p := types.Profile{
		TopicKeywords: []string{"a", "b", "c", "d"},
		Categories:    []string{"astro-ph.SR"},
	}
	cfg := types.FetchConfig{MaxTermsPerQuery: 2}

	var buf bytes.Buffer
	out, err := FetchTopic(context.Background(), c, p, cfg, testNow, &buf)
	if err != nil {
		t.Fatalf("FetchTopic should survive one failed batch: %v", err)
	}
	if len(out.Batches) != 1 {
		t.Errorf("len(Batches) = %d, want 1", len(out.Batches))
	}
	if len(out.BatchErrors) != 1 {
		t.Errorf("len(BatchErrors) = %d, want 1", len(out.BatchErrors))
	}
	if !strings.Contains(buf.String(), "warning:") {
		t.Error("output should contain a warning for the failed batch")
	}
}

func TestFetchTopicAllBatchesFailed(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	p := types.Profile{TopicKeywords: []string{"a", "b"}}
	var buf bytes.Buffer
	_, err := FetchTopic(context.Background(), c, p, types.FetchConfig{}, testNow, &buf)
	if err == nil || !strings.Contains(err.Error(), "all") {
		t.Errorf("expected all-batches-failed error, got: %v", err)
	}
}

func TestFetchTopicNoKeywords(t *testing.T) {
	c := NewClient("tok", types.FetchConfig{})
	var buf bytes.Buffer
	_, err := FetchTopic(context.Background(), c, types.Profile{}, types.FetchConfig{}, testNow, &buf)
	if err == nil || !strings.Contains(err.Error(), "no topic keywords") {
		t.Errorf("expected configuration error, got: %v", err)
	}
}

func TestFetchPriorityOneQueryPerOrcidBatch(t *testing.T) {
	var queries []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":{"numFound":0,"docs":[]}}`)
	})

	p := types.Profile{
		TopicKeywords: []string{"a", "b", "c"},
		PriorityAuthors: []types.PriorityAuthor{
			{ORCID: "0000-0001-7246-5438"},
			{ORCID: "0000-0001-7493-7419"},
		},
	}
	cfg := types.FetchConfig{MaxTermsPerQuery: 2}

	var buf bytes.Buffer
	out := FetchPriority(context.Background(), c, p, cfg, testNow, &buf)
	// 2 ORCIDs x 2 keyword batches.
	if len(queries) != 4 {
		t.Fatalf("issued %d queries, want 4", len(queries))
	}
	if len(out.BatchErrors) != 0 {
		t.Errorf("BatchErrors = %v, want none", out.BatchErrors)
	}
	for _, q := range queries {
		if !strings.Contains(q, "orcid:") {
			t.Errorf("query %q missing orcid clause", q)
		}
	}
}

func TestFetchAffiliationFiltersByMatcher(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleADSJSON)
	})

	matches := func(aff string) bool {
		return strings.Contains(aff, "Wisconsin-Madison")
	}
	records, err := FetchAffiliation(context.Background(), c, matches, types.FetchConfig{}, testNow)
	if err != nil {
		t.Fatalf("FetchAffiliation: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1 confirmed record", len(records))
	}
	if records[0].Bibcode != "2026arXiv260801234S" {
		t.Errorf("Bibcode = %q", records[0].Bibcode)
	}
}
