// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import "time"

// AchievementTier ranks an achievement.
type AchievementTier string

const (
	TierBronze   AchievementTier = "bronze"
	TierSilver   AchievementTier = "silver"
	TierGold     AchievementTier = "gold"
	TierPlatinum AchievementTier = "platinum"
)

// AchievementMetric names the statistic an achievement tracks.
type AchievementMetric string

const (
	MetricTotalAnime    AchievementMetric = "total_anime"
	MetricCompleted     AchievementMetric = "completed"
	MetricTotalEpisodes AchievementMetric = "total_episodes"
	MetricRewatches     AchievementMetric = "rewatches"
)

// AchievementDef is one row of the achievement catalog. The catalog is
// configuration: new achievements are new rows, never engine changes.
type AchievementDef struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Tier        AchievementTier   `json:"tier"`
	Metric      AchievementMetric `json:"metric"`
	Threshold   int               `json:"threshold"`
}

// Achievement is a catalog row evaluated against the current
// statistics. UnlockedAt is non-empty iff the metric has reached the
// threshold; Progress is clamped to the threshold for display.
type Achievement struct {
	AchievementDef
	UnlockedAt string `json:"unlockedAt,omitempty"`
	Progress   int    `json:"progress"`
}

// DefaultAchievements is the built-in achievement catalog.
func DefaultAchievements() []AchievementDef {
	return []AchievementDef{
		{ID: "first_anime", Name: "First Steps", Description: "Add your first anime to your watchlist", Icon: "star", Tier: TierBronze, Metric: MetricTotalAnime, Threshold: 1},
		{ID: "anime_10", Name: "Getting Started", Description: "Add 10 anime to your watchlist", Icon: "star", Tier: TierSilver, Metric: MetricTotalAnime, Threshold: 10},
		{ID: "anime_50", Name: "Dedicated Viewer", Description: "Add 50 anime to your watchlist", Icon: "star", Tier: TierGold, Metric: MetricTotalAnime, Threshold: 50},
		{ID: "anime_100", Name: "Anime Expert", Description: "Add 100 anime to your watchlist", Icon: "crown", Tier: TierPlatinum, Metric: MetricTotalAnime, Threshold: 100},
		{ID: "complete_1", Name: "Finisher", Description: "Complete your first anime", Icon: "trophy", Tier: TierBronze, Metric: MetricCompleted, Threshold: 1},
		{ID: "complete_10", Name: "Marathoner", Description: "Complete 10 anime", Icon: "trophy", Tier: TierSilver, Metric: MetricCompleted, Threshold: 10},
		{ID: "complete_25", Name: "Binge Master", Description: "Complete 25 anime", Icon: "flame", Tier: TierGold, Metric: MetricCompleted, Threshold: 25},
		{ID: "episodes_100", Name: "Century Club", Description: "Watch 100 episodes", Icon: "clock", Tier: TierBronze, Metric: MetricTotalEpisodes, Threshold: 100},
		{ID: "episodes_500", Name: "Dedicated Watcher", Description: "Watch 500 episodes", Icon: "clock", Tier: TierSilver, Metric: MetricTotalEpisodes, Threshold: 500},
		{ID: "episodes_1000", Name: "Episode Addict", Description: "Watch 1000 episodes", Icon: "zap", Tier: TierGold, Metric: MetricTotalEpisodes, Threshold: 1000},
		{ID: "rewatch_1", Name: "Nostalgia Trip", Description: "Rewatch an anime", Icon: "heart", Tier: TierBronze, Metric: MetricRewatches, Threshold: 1},
		{ID: "rewatch_5", Name: "Rewatch Enthusiast", Description: "Rewatch 5 anime", Icon: "heart", Tier: TierGold, Metric: MetricRewatches, Threshold: 5},
	}
}

// EvaluateAchievements maps each catalog row against the statistics.
func EvaluateAchievements(stats Statistics, defs []AchievementDef, now time.Time) []Achievement {
	out := make([]Achievement, 0, len(defs))
	ts := now.Format(time.RFC3339)
	for _, def := range defs {
		current := 0
		switch def.Metric {
		case MetricTotalAnime:
			current = stats.TotalAnime
		case MetricCompleted:
			current = stats.CompletedCount
		case MetricTotalEpisodes:
			current = stats.TotalEpisodes
		case MetricRewatches:
			current = stats.TotalRewatches
		}
		a := Achievement{AchievementDef: def}
		if current >= def.Threshold {
			a.UnlockedAt = ts
			a.Progress = def.Threshold
		} else {
			a.Progress = current
		}
		out = append(out, a)
	}
	return out
}

// UnlockedCount counts unlocked achievements.
func UnlockedCount(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.UnlockedAt != "" {
			n++
		}
	}
	return n
}
