package git

import "time"

type Config struct {
	// Base URL of the REST API, with trailing slash. Empty means api.github.com.
	APIURL string
	// Token used when a request carries no user token.
	Token   string
	Timeout time.Duration
}
