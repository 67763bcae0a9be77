// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "astro-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for querying the ADS search API.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DaysBack is the size of the entdate window (default 7).
	DaysBack int `json:"days_back" yaml:"days_back"`

	// Rows is the maximum rows requested per topic query (default 500).
	Rows int `json:"rows" yaml:"rows"`

	// PriorityRows is the maximum rows per priority-author query (default 200).
	PriorityRows int `json:"priority_rows" yaml:"priority_rows"`

	// MaxTermsPerQuery bounds the number of keyword phrases placed in one
	// upstream query so the query string stays within ADS length limits
	// (default 40). The partitioner issues one query per batch.
	MaxTermsPerQuery int `json:"max_terms_per_query" yaml:"max_terms_per_query"`
}

// Normalize fills zero fields with the defaults.
func (c FetchConfig) Normalize() FetchConfig {
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "astro-digest/0.1"
	}
	if c.DaysBack <= 0 {
		c.DaysBack = 7
	}
	if c.Rows <= 0 {
		c.Rows = 500
	}
	if c.PriorityRows <= 0 {
		c.PriorityRows = 200
	}
	if c.MaxTermsPerQuery <= 0 {
		c.MaxTermsPerQuery = 40
	}
	return c
}

// SMTPConfig holds delivery settings. Sender credentials come from the
// secrets directory, not from this struct.
type SMTPConfig struct {
	// Host is the SMTP server hostname (default "smtp.gmail.com").
	Host string `json:"host" yaml:"host"`

	// Port is the SMTP submission port (default 587, STARTTLS).
	Port int `json:"port" yaml:"port"`

	// From is the sender address.
	From string `json:"from" yaml:"from"`

	// To is the recipient address.
	To string `json:"to" yaml:"to"`
}

// DigestConfig groups all stage configurations for one digest run.
type DigestConfig struct {
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
	SMTP  SMTPConfig  `json:"smtp" yaml:"smtp"`
}
