package nhlapi

import "time"

const (
	providerName = "nhlapi"

	defaultWebBaseURL   = "https://api-web.nhle.com/v1"
	defaultStatsBaseURL = "https://api.nhle.com/stats/rest/en"
	defaultHTTPTimeout  = 10 * time.Second
	maxErrorBody        = 512
)
