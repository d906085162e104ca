package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/tables"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/testutil"
)

func TestDownloadScheduleKeepsFutureGames(t *testing.T) {
	f := newFixture(t, Config{})
	future := scheduled(2023020300, games.StateFuture)
	future.Venue = testutil.String("Rogers Place")
	f.provider.Upcoming = []games.ScheduledGame{
		future,
		scheduled(2023010099, games.StateFuture),
		scheduled(2023020204, games.StateFinal),
	}

	n, err := f.driver.DownloadSchedule(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected 1 game, got %d (%v)", n, err)
	}
	rows := readTable[records.ScheduledGame](t, f.store, storage.ScheduleKey)
	if len(rows) != 1 || *rows[0].ID != 2023020300 || *rows[0].Day != "2023-11-15" || *rows[0].Venue != "Rogers Place" {
		t.Fatalf("unexpected schedule rows %+v", rows)
	}
}

func TestDownloadScheduleWritesPlaceholderWhenEmpty(t *testing.T) {
	f := newFixture(t, Config{})
	n, err := f.driver.DownloadSchedule(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected empty schedule, got %d (%v)", n, err)
	}
	rows := readTable[records.ScheduledGame](t, f.store, storage.ScheduleKey)
	if len(rows) != 1 || rows[0].ID != nil || rows[0].Day != nil {
		t.Fatalf("expected a single all-null row, got %+v", rows)
	}
}

func TestDownloadTeamsSortsByConferenceDivisionName(t *testing.T) {
	f := newFixture(t, Config{})
	team := func(name, conference, division string) teams.Team {
		return teams.Team{
			FullName:   testutil.String(name),
			Conference: testutil.String(conference),
			Division:   testutil.String(division),
		}
	}
	f.provider.Standings = []teams.Team{
		team("Toronto Maple Leafs", "Eastern", "Atlantic"),
		team("Edmonton Oilers", "Western", "Pacific"),
		team("New York Rangers", "Eastern", "Metropolitan"),
		team("Boston Bruins", "Eastern", "Atlantic"),
	}

	n, err := f.driver.DownloadTeams(context.Background())
	if err != nil || n != 4 {
		t.Fatalf("expected 4 teams, got %d (%v)", n, err)
	}
	rows := readTable[records.Team](t, f.store, storage.TeamsKey)
	want := []string{"Boston Bruins", "Toronto Maple Leafs", "New York Rangers", "Edmonton Oilers"}
	for i, name := range want {
		if *rows[i].TeamFullName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, *rows[i].TeamFullName)
		}
	}
}

func TestDownloadTeamsRejectsEmptyStandings(t *testing.T) {
	f := newFixture(t, Config{})
	if _, err := f.driver.DownloadTeams(context.Background()); !errors.Is(err, errNoTeams) {
		t.Fatalf("expected errNoTeams, got %v", err)
	}
	if ok, _ := f.store.Exists(context.Background(), storage.TeamsKey); ok {
		t.Fatalf("expected no teams table")
	}
}

func readTable[T any](t *testing.T, store storage.Store, key string) []T {
	t.Helper()
	data, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %s: %v", key, err)
	}
	rows, err := tables.Decode[T](data)
	if err != nil {
		t.Fatalf("decode %s: %v", key, err)
	}
	return rows
}
