// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ads queries the NASA ADS search API and maps responses onto
// Records. Implements: prd010-fetch (R1-R4);
//
//	docs/ARCHITECTURE § Fetch.
package ads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/astro-digest/internal/httputil"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// adsAPIBase is the ADS search endpoint. Declared as a var so tests can
// substitute an httptest server.
var adsAPIBase = "https://api.adsabs.harvard.edu/v1/search/query"

// adsFields is the `fl` list requested on every query. The three ORCID
// arrays are index-aligned with author where ADS preserved alignment.
const adsFields = "bibcode,title,author,aff,abstract,identifier,arxiv_class,pubdate," +
	"orcid_pub,orcid_user,orcid_other"

// Client is an authenticated ADS search client.
type Client struct {
	HTTPClient *http.Client
	Token      string
	UserAgent  string
}

// NewClient returns a Client with the given bearer token.
func NewClient(token string, cfg types.FetchConfig) *Client {
	cfg = cfg.Normalize()
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Token:      token,
		UserAgent:  cfg.UserAgent,
	}
}

// Search runs one ADS query and returns the mapped records, newest first
// (ADS-side sort). Rate-limited requests retry with backoff.
func (c *Client) Search(ctx context.Context, q string, rows int) ([]types.Record, error) {
	if c.Token == "" {
		return nil, fmt.Errorf("ADS API token is required")
	}
	if rows <= 0 {
		rows = 500
	}

	params := url.Values{
		"q":    {q},
		"fl":   {adsFields},
		"rows": {strconv.Itoa(rows)},
		"sort": {"date desc"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, adsAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("ADS API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ADS API returned HTTP %d", resp.StatusCode)
	}

	var body adsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing ADS response: %w", err)
	}

	records := make([]types.Record, 0, len(body.Response.Docs))
	for _, doc := range body.Response.Docs {
		records = append(records, doc.toRecord())
	}
	return records, nil
}

// ADS JSON response structures.
type adsResponse struct {
	Response struct {
		NumFound int      `json:"numFound"`
		Docs     []adsDoc `json:"docs"`
	} `json:"response"`
}

// adsDoc mirrors the raw ADS document. Title arrives as a one-element
// array; the rest of the arrays are parallel to author.
type adsDoc struct {
	Bibcode    string   `json:"bibcode"`
	Title      []string `json:"title"`
	Author     []string `json:"author"`
	Aff        []string `json:"aff"`
	Abstract   string   `json:"abstract"`
	Identifier []string `json:"identifier"`
	ArxivClass []string `json:"arxiv_class"`
	Pubdate    string   `json:"pubdate"`
	OrcidPub   []string `json:"orcid_pub"`
	OrcidUser  []string `json:"orcid_user"`
	OrcidOther []string `json:"orcid_other"`
}

// toRecord normalizes the raw doc: missing fields become zero values so
// downstream scoring treats absence as "no contribution", never an error.
func (d adsDoc) toRecord() types.Record {
	rec := types.Record{
		Bibcode:      d.Bibcode,
		Authors:      d.Author,
		Affiliations: d.Aff,
		Abstract:     d.Abstract,
		Identifiers:  d.Identifier,
		Categories:   d.ArxivClass,
		PubDate:      d.Pubdate,
		OrcidPub:     d.OrcidPub,
		OrcidUser:    d.OrcidUser,
		OrcidOther:   d.OrcidOther,
	}
	if len(d.Title) > 0 {
		rec.Title = d.Title[0]
	}
	return rec
}
