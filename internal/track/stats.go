// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"math"
	"sort"
)

// EpisodeMinutes is the fixed per-episode duration used for watch-time
// estimates.
const EpisodeMinutes = 24

// ComputeStatistics aggregates an entry collection. It is a pure
// function recomputed on demand; nothing is cached. An empty collection
// yields all zeros, including AverageScore.
func ComputeStatistics(entries []Entry) Statistics {
	var s Statistics
	s.TotalAnime = len(entries)
	scored := 0
	scoreSum := 0
	for _, e := range entries {
		s.TotalEpisodes += e.Progress
		s.TotalRewatches += e.RewatchCount
		switch e.Status {
		case StatusCompleted:
			s.CompletedCount++
		case StatusWatching:
			s.WatchingCount++
		}
		if e.Score != nil {
			scored++
			scoreSum += *e.Score
		}
	}
	if scored > 0 {
		s.AverageScore = float64(scoreSum) / float64(scored)
	}
	return s
}

// StatusDistribution counts entries per status. Every status is
// represented, even at zero.
func StatusDistribution(entries []Entry) map[WatchStatus]int {
	dist := make(map[WatchStatus]int, 5)
	for _, st := range AllStatuses() {
		dist[st] = 0
	}
	for _, e := range entries {
		dist[e.Status]++
	}
	return dist
}

// WatchTime is the estimated time spent watching, derived from episode
// progress.
type WatchTime struct {
	Episodes int     `json:"episodes"`
	Minutes  int     `json:"minutes"`
	Hours    int     `json:"hours"`
	Days     float64 `json:"days"` // one decimal
}

// ComputeWatchTime estimates total watch time at EpisodeMinutes per
// episode.
func ComputeWatchTime(entries []Entry) WatchTime {
	episodes := 0
	for _, e := range entries {
		episodes += e.Progress
	}
	minutes := episodes * EpisodeMinutes
	hours := int(math.Round(float64(minutes) / 60))
	days := math.Round(float64(hours)/24*10) / 10
	return WatchTime{
		Episodes: episodes,
		Minutes:  minutes,
		Hours:    hours,
		Days:     days,
	}
}

// GenreCount is one slice of the genre distribution.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// GenreColors maps genres to display colors. Configuration data, not
// logic: the distribution works for genres missing from this table via
// the "Other" fallback.
var GenreColors = map[string]string{
	"Action":        "hsl(8, 85%, 68%)",
	"Adventure":     "hsl(24, 95%, 64%)",
	"Comedy":        "hsl(50, 85%, 60%)",
	"Drama":         "hsl(270, 60%, 60%)",
	"Fantasy":       "hsl(190, 90%, 50%)",
	"Horror":        "hsl(0, 70%, 50%)",
	"Mystery":       "hsl(230, 60%, 55%)",
	"Romance":       "hsl(340, 80%, 65%)",
	"Sci-Fi":        "hsl(160, 70%, 50%)",
	"Slice of Life": "hsl(140, 60%, 55%)",
	"Sports":        "hsl(30, 80%, 55%)",
	"Supernatural":  "hsl(280, 70%, 60%)",
	"Thriller":      "hsl(0, 0%, 40%)",
	"Other":         "hsl(220, 20%, 50%)",
}

// GenreDistribution counts genres across the collection, resolving
// each entry's genres through genresOf (typically a catalog lookup).
// An anime genresOf cannot resolve contributes zero genres; the
// aggregation never fails. The result is the topN genres sorted by
// count descending, ties broken alphabetically for stable output.
func GenreDistribution(entries []Entry, genresOf func(animeID int) []string, topN int) []GenreCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, g := range genresOf(e.AnimeID) {
			counts[g]++
		}
	}
	out := make([]GenreCount, 0, len(counts))
	for name, n := range counts {
		color, ok := GenreColors[name]
		if !ok {
			color = GenreColors["Other"]
		}
		out = append(out, GenreCount{Name: name, Count: n, Color: color})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// FavoriteCount counts entries flagged as favorites.
func FavoriteCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Favorite {
			n++
		}
	}
	return n
}
