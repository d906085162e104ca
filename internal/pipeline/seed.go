package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/tables"
)

var errNoTeams = errors.New("standings returned no teams")

// DownloadSchedule writes upcoming regular season and playoff games and returns
// how many were found. An empty schedule is written as a single all-null row.
func (d *Driver) DownloadSchedule(ctx context.Context) (int, error) {
	count := 0
	err := d.run(ctx, JobSchedule, func(ctx context.Context, _ string) error {
		upcoming, err := d.provider.FetchUpcomingSchedule(ctx)
		if err != nil {
			return fmt.Errorf("fetching upcoming schedule: %w", err)
		}

		rows := make([]records.ScheduledGame, 0, len(upcoming))
		for _, g := range upcoming {
			if g.GameState != games.StateFuture || !g.SeasonType().Downloadable() {
				continue
			}
			rows = append(rows, scheduleRow(g))
		}
		count = len(rows)
		if count == 0 {
			rows = append(rows, records.ScheduledGame{})
		}

		data, err := tables.Encode(rows)
		if err != nil {
			return fmt.Errorf("encoding schedule: %w", err)
		}
		if err := d.store.Put(ctx, storage.ScheduleKey, data); err != nil {
			return err
		}
		d.metrics.RecordTableWritten("schedule", len(rows))
		logging.Info(d.loggerFrom(ctx), "schedule written", logging.FieldCount, count)
		return nil
	})
	return count, err
}

// DownloadTeams writes the current standings' teams sorted by conference,
// division and name.
func (d *Driver) DownloadTeams(ctx context.Context) (int, error) {
	count := 0
	err := d.run(ctx, JobTeams, func(ctx context.Context, _ string) error {
		standings, err := d.provider.FetchStandings(ctx)
		if err != nil {
			return fmt.Errorf("fetching standings: %w", err)
		}
		if len(standings) == 0 {
			return errNoTeams
		}

		rows := make([]records.Team, 0, len(standings))
		for _, t := range standings {
			rows = append(rows, teamRow(t))
		}
		sortTeams(rows)

		data, err := tables.Encode(rows)
		if err != nil {
			return fmt.Errorf("encoding teams: %w", err)
		}
		if err := d.store.Put(ctx, storage.TeamsKey, data); err != nil {
			return err
		}
		count = len(rows)
		d.metrics.RecordTableWritten("teams", count)
		logging.Info(d.loggerFrom(ctx), "teams written", logging.FieldCount, count)
		return nil
	})
	return count, err
}

func scheduleRow(g games.ScheduledGame) records.ScheduledGame {
	row := records.ScheduledGame{
		ID:           g.ID,
		Season:       g.Season,
		Venue:        g.Venue,
		StartTimeUTC: g.StartTimeUTC,
		HomeTeamID:   g.HomeTeamID,
		AwayTeamID:   g.AwayTeamID,
	}
	if g.Date != "" {
		day := g.Date
		row.Day = &day
	}
	return row
}

func teamRow(t teams.Team) records.Team {
	return records.Team{
		TeamFullName:     t.FullName,
		TeamAbbrevName:   t.Abbrev,
		TeamCommonName:   t.CommonName,
		Conference:       t.Conference,
		ConferenceAbbrev: t.ConferenceAbbrev,
		Division:         t.Division,
		DivisionAbbrev:   t.DivisionAbbrev,
		TeamLogoURL:      t.LogoURL,
	}
}

func sortTeams(rows []records.Team) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if deref(a.Conference) != deref(b.Conference) {
			return deref(a.Conference) < deref(b.Conference)
		}
		if deref(a.Division) != deref(b.Division) {
			return deref(a.Division) < deref(b.Division)
		}
		return deref(a.TeamFullName) < deref(b.TeamFullName)
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
