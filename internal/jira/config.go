package jira

import "time"

type Config struct {
	// BaseURL is the site root, e.g. https://example.atlassian.net.
	BaseURL  string
	Email    string
	APIToken string
	Timeout  time.Duration
}

func (c Config) complete() bool {
	return c.BaseURL != "" && c.Email != "" && c.APIToken != ""
}
