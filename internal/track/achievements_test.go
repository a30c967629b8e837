// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"testing"
	"time"
)

func TestDefaultAchievementsCatalog(t *testing.T) {
	defs := DefaultAchievements()
	if len(defs) != 12 {
		t.Fatalf("catalog has %d achievements, want 12", len(defs))
	}
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.ID == "" || d.Name == "" || d.Threshold <= 0 {
			t.Errorf("malformed achievement: %+v", d)
		}
		if seen[d.ID] {
			t.Errorf("duplicate achievement ID %q", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestEvaluateAchievementsBoundary(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	defs := DefaultAchievements()

	// Exactly at the first_anime threshold: unlocked.
	got := EvaluateAchievements(Statistics{TotalAnime: 1}, defs, now)
	byID := make(map[string]Achievement, len(got))
	for _, a := range got {
		byID[a.ID] = a
	}

	first := byID["first_anime"]
	if first.UnlockedAt == "" {
		t.Fatal("first_anime not unlocked at metric == threshold")
	}
	if first.Progress != 1 {
		t.Errorf("first_anime progress: %d", first.Progress)
	}

	// One short of anime_10: locked with partial progress.
	got = EvaluateAchievements(Statistics{TotalAnime: 9}, defs, now)
	for _, a := range got {
		if a.ID == "anime_10" {
			if a.UnlockedAt != "" {
				t.Error("anime_10 unlocked below threshold")
			}
			if a.Progress != 9 {
				t.Errorf("anime_10 progress: %d, want 9", a.Progress)
			}
		}
	}
}

func TestEvaluateAchievementsProgressClamp(t *testing.T) {
	now := time.Now().UTC()
	got := EvaluateAchievements(Statistics{TotalAnime: 250}, DefaultAchievements(), now)
	for _, a := range got {
		if a.Progress > a.Threshold {
			t.Errorf("%s progress %d exceeds threshold %d", a.ID, a.Progress, a.Threshold)
		}
	}
}

func TestEvaluateAchievementsCoversAllMetrics(t *testing.T) {
	now := time.Now().UTC()
	stats := Statistics{
		TotalAnime:     100,
		CompletedCount: 25,
		TotalEpisodes:  1000,
		TotalRewatches: 5,
	}
	got := EvaluateAchievements(stats, DefaultAchievements(), now)
	if n := UnlockedCount(got); n != len(got) {
		t.Fatalf("unlocked %d of %d with maxed stats", n, len(got))
	}

	empty := EvaluateAchievements(Statistics{}, DefaultAchievements(), now)
	if n := UnlockedCount(empty); n != 0 {
		t.Fatalf("unlocked %d with zero stats", n)
	}
}
