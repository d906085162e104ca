package nhlapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
)

// Config controls how the client reaches the public NHL web and stats APIs.
type Config struct {
	WebBaseURL   string
	StatsBaseURL string
	HTTPClient   *http.Client
	Timeout      time.Duration
}

// Client fetches raw game documents and typed schedule, standings and game-log data.
type Client struct {
	webBaseURL   string
	statsBaseURL string
	httpClient   httpDoer
}

// NewClient constructs an NHL API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		webBaseURL:   normalizeBaseURL(cfg.WebBaseURL, defaultWebBaseURL),
		statsBaseURL: normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchPlayByPlay returns the gamecenter play-by-play document as received.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/gamecenter/%d/play-by-play", c.webBaseURL, gameID))
}

// FetchShiftChart returns the shift chart document as received.
func (c *Client) FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error) {
	q := url.Values{}
	q.Set("cayenneExp", fmt.Sprintf("gameId=%d", gameID))
	return c.get(ctx, c.statsBaseURL+"/shiftcharts?"+q.Encode())
}

// FetchGameLog returns a player's game log for a season and season type.
func (c *Client) FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/player/%d/game-log/%s/%d", c.webBaseURL, playerID, season, seasonType.Code()))
	if err != nil {
		return nil, err
	}
	var payload gameLogResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: decoding game log of player %d: %w", providerName, playerID, err)
	}
	return payload.GameLog, nil
}

// FetchSchedule returns the games scheduled on date (YYYY-MM-DD). The upstream answers
// with a whole week; only the requested day is kept.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error) {
	payload, err := c.schedule(ctx, fmt.Sprintf("%s/schedule/%s", c.webBaseURL, date))
	if err != nil {
		return nil, err
	}
	for _, day := range payload.GameWeek {
		if day.Date == date {
			return mapScheduleDay(day), nil
		}
	}
	return []games.ScheduledGame{}, nil
}

// FetchUpcomingSchedule returns every game of the current schedule week.
func (c *Client) FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error) {
	payload, err := c.schedule(ctx, c.webBaseURL+"/schedule/now")
	if err != nil {
		return nil, err
	}
	out := make([]games.ScheduledGame, 0)
	for _, day := range payload.GameWeek {
		out = append(out, mapScheduleDay(day)...)
	}
	return out, nil
}

// FetchStandings returns one team row per entry of the current standings.
func (c *Client) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	body, err := c.get(ctx, c.webBaseURL+"/standings/now")
	if err != nil {
		return nil, err
	}
	var payload standingsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: decoding standings: %w", providerName, err)
	}
	out := make([]teams.Team, 0, len(payload.Standings))
	for _, s := range payload.Standings {
		out = append(out, mapStanding(s))
	}
	return out, nil
}

func (c *Client) schedule(ctx context.Context, endpoint string) (scheduleResponse, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return scheduleResponse{}, err
	}
	var payload scheduleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return scheduleResponse{}, fmt.Errorf("%s: decoding schedule: %w", providerName, err)
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %s: %w", providerName, endpoint, providers.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			URL:        endpoint,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return io.ReadAll(resp.Body)
}
