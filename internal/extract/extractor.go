// Package extract turns one decoded play-by-play document into flat,
// per-category rows ready to be written as columnar tables.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/situation"
)

var errMissingGameID = errors.New("game id missing")

// Tables holds every category extracted from one game, rows in play order.
type Tables struct {
	Games             []records.Game
	Shots             []records.Shot
	Faceoffs          []records.Faceoff
	Hits              []records.Hit
	PossessionChanges []records.PossessionChange
	Penalties         []records.Penalty
	Players           []records.Player
	SituationTime     []records.SituationTime
}

// Len returns the number of rows extracted for category.
func (t Tables) Len(category records.Category) int {
	switch category {
	case records.CategoryGames:
		return len(t.Games)
	case records.CategoryShots:
		return len(t.Shots)
	case records.CategoryFaceoffs:
		return len(t.Faceoffs)
	case records.CategoryHits:
		return len(t.Hits)
	case records.CategoryPossessionChanges:
		return len(t.PossessionChanges)
	case records.CategoryPenalties:
		return len(t.Penalties)
	case records.CategoryPlayers:
		return len(t.Players)
	case records.CategorySituationTime:
		return len(t.SituationTime)
	default:
		return 0
	}
}

// Extractor runs every category extraction over a game.
type Extractor struct {
	gameLogs  providers.GameLogLookup
	situation situation.Config
	logger    *slog.Logger
}

// New builds an Extractor. gameLogs may be nil, in which case player stats stay null.
func New(gameLogs providers.GameLogLookup, cfg situation.Config, logger *slog.Logger) *Extractor {
	return &Extractor{gameLogs: gameLogs, situation: cfg, logger: logger}
}

// Extract builds all tables for game. The only failure is a malformed clock value,
// which makes the situation timeline unusable.
func (e *Extractor) Extract(ctx context.Context, game games.Game) (Tables, error) {
	totals, err := situation.Accumulate(game.Plays, e.situation)
	if err != nil {
		return Tables{}, fmt.Errorf("situation time: %w", err)
	}

	return Tables{
		Games:             []records.Game{Summary(game)},
		Shots:             Shots(game),
		Faceoffs:          Faceoffs(game),
		Hits:              Hits(game),
		PossessionChanges: PossessionChanges(game),
		Penalties:         Penalties(game),
		Players:           Players(ctx, game, e.gameLogs, e.logger),
		SituationTime:     situation.Records(gameFields(game), game.HomeTeam.ID, game.AwayTeam.ID, totals),
	}, nil
}
