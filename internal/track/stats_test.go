// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"math"
	"testing"
)

func intp(v int) *int { return &v }

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)
	if stats != (Statistics{}) {
		t.Fatalf("empty watchlist stats: %+v, want all zeros", stats)
	}
}

func TestComputeStatistics(t *testing.T) {
	entries := []Entry{
		{AnimeID: 1, Status: StatusCompleted, Progress: 24, Score: intp(9), RewatchCount: 1},
		{AnimeID: 2, Status: StatusWatching, Progress: 6, Score: intp(7)},
		{AnimeID: 3, Status: StatusPlanToWatch}, // unscored: excluded from the average
		{AnimeID: 4, Status: StatusCompleted, Progress: 12, RewatchCount: 2},
	}

	stats := ComputeStatistics(entries)
	if stats.TotalAnime != 4 {
		t.Errorf("TotalAnime: %d", stats.TotalAnime)
	}
	if stats.TotalEpisodes != 42 {
		t.Errorf("TotalEpisodes: %d, want 42", stats.TotalEpisodes)
	}
	if stats.CompletedCount != 2 {
		t.Errorf("CompletedCount: %d", stats.CompletedCount)
	}
	if stats.WatchingCount != 1 {
		t.Errorf("WatchingCount: %d", stats.WatchingCount)
	}
	if stats.TotalRewatches != 3 {
		t.Errorf("TotalRewatches: %d", stats.TotalRewatches)
	}
	if math.Abs(stats.AverageScore-8.0) > 1e-9 {
		t.Errorf("AverageScore: %v, want 8.0", stats.AverageScore)
	}
}

func TestStatusDistributionAlwaysCoversAllStatuses(t *testing.T) {
	dist := StatusDistribution([]Entry{
		{AnimeID: 1, Status: StatusWatching},
		{AnimeID: 2, Status: StatusWatching},
		{AnimeID: 3, Status: StatusDropped},
	})

	if len(dist) != len(AllStatuses()) {
		t.Fatalf("distribution has %d keys, want %d", len(dist), len(AllStatuses()))
	}
	if dist[StatusWatching] != 2 || dist[StatusDropped] != 1 {
		t.Fatalf("counts wrong: %v", dist)
	}
	for _, s := range []WatchStatus{StatusCompleted, StatusOnHold, StatusPlanToWatch} {
		if v, ok := dist[s]; !ok || v != 0 {
			t.Errorf("status %s: got (%d, %v), want explicit zero", s, v, ok)
		}
	}
}

func TestComputeWatchTime(t *testing.T) {
	entries := []Entry{
		{AnimeID: 1, Progress: 100},
		{AnimeID: 2, Progress: 25},
	}

	wt := ComputeWatchTime(entries)
	if wt.Episodes != 125 {
		t.Errorf("Episodes: %d, want 125", wt.Episodes)
	}
	if wt.Minutes != 125*EpisodeMinutes {
		t.Errorf("Minutes: %d", wt.Minutes)
	}
	// 3000 minutes -> 50 hours -> 2.1 days.
	if wt.Hours != 50 {
		t.Errorf("Hours: %d, want 50", wt.Hours)
	}
	if math.Abs(wt.Days-2.1) > 1e-9 {
		t.Errorf("Days: %v, want 2.1", wt.Days)
	}

	empty := ComputeWatchTime(nil)
	if empty.Minutes != 0 || empty.Hours != 0 || empty.Days != 0 {
		t.Errorf("empty watch time: %+v", empty)
	}
}

func TestGenreDistribution(t *testing.T) {
	entries := []Entry{
		{AnimeID: 1}, {AnimeID: 2}, {AnimeID: 3}, {AnimeID: 404},
	}
	genres := map[int][]string{
		1: {"Action", "Comedy"},
		2: {"Action"},
		3: {"Drama"},
		// 404 unresolved on purpose
	}
	genresOf := func(id int) []string { return genres[id] }

	dist := GenreDistribution(entries, genresOf, 10)
	if len(dist) != 3 {
		t.Fatalf("got %d genres, want 3: %v", len(dist), dist)
	}
	if dist[0].Name != "Action" || dist[0].Count != 2 {
		t.Errorf("top genre: %+v", dist[0])
	}
	// Equal counts break ties by name.
	if dist[1].Name != "Comedy" || dist[2].Name != "Drama" {
		t.Errorf("tie break order: %v", dist)
	}

	top1 := GenreDistribution(entries, genresOf, 1)
	if len(top1) != 1 || top1[0].Name != "Action" {
		t.Errorf("topN clamp: %v", top1)
	}
}

func TestGenreColorsHaveFallback(t *testing.T) {
	if _, ok := GenreColors["Other"]; !ok {
		t.Fatal("GenreColors missing the Other fallback")
	}
	if GenreColors["Action"] == "" {
		t.Fatal("GenreColors missing Action")
	}
}

func TestFavoriteCount(t *testing.T) {
	entries := []Entry{
		{AnimeID: 1, Favorite: true},
		{AnimeID: 2},
		{AnimeID: 3, Favorite: true},
	}
	if got := FavoriteCount(entries); got != 2 {
		t.Fatalf("FavoriteCount: %d, want 2", got)
	}
}
