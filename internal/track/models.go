// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"fmt"
	"time"
)

// WatchStatus represents where an anime sits in the user's watch cycle.
type WatchStatus string

const (
	StatusWatching    WatchStatus = "watching"
	StatusCompleted   WatchStatus = "completed"
	StatusOnHold      WatchStatus = "on_hold"
	StatusDropped     WatchStatus = "dropped"
	StatusPlanToWatch WatchStatus = "plan_to_watch"
)

// AllStatuses lists every watch status in display order.
func AllStatuses() []WatchStatus {
	return []WatchStatus{
		StatusWatching,
		StatusCompleted,
		StatusOnHold,
		StatusDropped,
		StatusPlanToWatch,
	}
}

// ParseStatus validates a status string.
func ParseStatus(s string) (WatchStatus, error) {
	for _, st := range AllStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown watch status %q", s)
}

// Entry is the tracking record for one anime. AnimeID references the
// external catalog and is unique within the watchlist; the entry holds
// only user-specific fields, never catalog metadata.
type Entry struct {
	AnimeID      int            `json:"animeId" yaml:"anime_id"`
	Status       WatchStatus    `json:"status" yaml:"status"`
	Progress     int            `json:"progress" yaml:"progress"`
	Score        *int           `json:"score,omitempty" yaml:"score,omitempty"` // 0-10
	StartedAt    string         `json:"startedAt,omitempty" yaml:"started_at,omitempty"`
	CompletedAt  string         `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
	Favorite     bool           `json:"favorite,omitempty" yaml:"favorite,omitempty"`
	RewatchCount int            `json:"rewatchCount,omitempty" yaml:"rewatch_count,omitempty"`
	EpisodeNotes map[int]string `json:"episodeNotes,omitempty" yaml:"episode_notes,omitempty"`
	Tags         []string       `json:"tags,omitempty" yaml:"tags,omitempty"` // reserved
}

// EntryPatch is a partial update to an Entry. Nil fields are left
// untouched; EpisodeNotes merges at the episode level rather than
// replacing the whole map.
type EntryPatch struct {
	Status       *WatchStatus
	Progress     *int
	Score        *int
	StartedAt    *string
	CompletedAt  *string
	Favorite     *bool
	RewatchCount *int
	EpisodeNotes map[int]string
	Tags         []string
}

func (p EntryPatch) apply(e *Entry) {
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Progress != nil {
		e.Progress = *p.Progress
	}
	if p.Score != nil {
		e.Score = p.Score
	}
	if p.StartedAt != nil {
		e.StartedAt = *p.StartedAt
	}
	if p.CompletedAt != nil {
		e.CompletedAt = *p.CompletedAt
	}
	if p.Favorite != nil {
		e.Favorite = *p.Favorite
	}
	if p.RewatchCount != nil {
		e.RewatchCount = *p.RewatchCount
	}
	for ep, note := range p.EpisodeNotes {
		if e.EpisodeNotes == nil {
			e.EpisodeNotes = make(map[int]string)
		}
		e.EpisodeNotes[ep] = note
	}
	if p.Tags != nil {
		e.Tags = p.Tags
	}
}

// CustomList is a user-defined named grouping of anime, independent of
// watch status. Removing an anime from the watchlist does not remove it
// from any custom list, and vice versa.
type CustomList struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AnimeIDs    []int     `json:"animeIds"`
	Color       string    `json:"color,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListPatch is a partial update to a CustomList's metadata.
type ListPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// RecentItem is one slot of the bounded recently-viewed list. Title and
// CoverImage are denormalized snapshots so the list renders without a
// catalog lookup.
type RecentItem struct {
	AnimeID    int       `json:"animeId"`
	ViewedAt   time.Time `json:"viewedAt"`
	Title      string    `json:"title"`
	CoverImage string    `json:"coverImage"`
}

// Statistics is the aggregate view over the watchlist.
type Statistics struct {
	TotalAnime     int     `json:"totalAnime"`
	TotalEpisodes  int     `json:"totalEpisodes"`
	CompletedCount int     `json:"completedCount"`
	WatchingCount  int     `json:"watchingCount"`
	TotalRewatches int     `json:"totalRewatches"`
	AverageScore   float64 `json:"averageScore"`
}
