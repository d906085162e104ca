package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
)

// scriptedProvider returns errs in order, then succeeds.
type scriptedProvider struct {
	errs  []error
	calls int
	logs  []players.GameLog
}

func (s *scriptedProvider) next() error {
	s.calls++
	if s.calls <= len(s.errs) {
		return s.errs[s.calls-1]
	}
	return nil
}

func (s *scriptedProvider) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return []byte(`{"id":1}`), nil
}

func (s *scriptedProvider) FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return []byte(`{"data":[]}`), nil
}

func (s *scriptedProvider) FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return s.logs, nil
}

func (s *scriptedProvider) FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return []games.ScheduledGame{{GameState: games.StateFinal}}, nil
}

func (s *scriptedProvider) FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return []games.ScheduledGame{{GameState: games.StateFuture}}, nil
}

func (s *scriptedProvider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return []teams.Team{{}}, nil
}
