// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"strings"
	"testing"

	"github.com/20Youssef10/anime-hub-central/internal/store"
)

func newTestWatchlist(t *testing.T) *Watchlist {
	t.Helper()
	w, err := NewWatchlist(store.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewWatchlist: %v", err)
	}
	return w
}

func TestWatchlistAddIsIdempotent(t *testing.T) {
	w := newTestWatchlist(t)

	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Same ID again, even with a different status: no overwrite.
	if err := w.Add(5, StatusCompleted); err != nil {
		t.Fatalf("Add again: %v", err)
	}

	all := w.All()
	if len(all) != 1 {
		t.Fatalf("All returned %d entries, want 1", len(all))
	}
	if all[0].Status != StatusWatching {
		t.Fatalf("second Add overwrote status: got %s", all[0].Status)
	}
}

func TestWatchlistAddStampsStartedAtOnlyForWatching(t *testing.T) {
	w := newTestWatchlist(t)

	if err := w.Add(1, StatusWatching); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(2, StatusPlanToWatch); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(3, ""); err != nil { // default status
		t.Fatal(err)
	}

	if e := w.Get(1); e.StartedAt == "" {
		t.Error("watching entry should have StartedAt set")
	}
	if e := w.Get(2); e.StartedAt != "" {
		t.Errorf("plan_to_watch entry has StartedAt %q, want empty", e.StartedAt)
	}
	e := w.Get(3)
	if e.Status != StatusPlanToWatch {
		t.Errorf("default status: got %s, want plan_to_watch", e.Status)
	}
	if e.StartedAt != "" {
		t.Error("default-status entry should not have StartedAt")
	}
}

func TestWatchlistUpdateMissingIsNoop(t *testing.T) {
	w := newTestWatchlist(t)

	progress := 7
	if err := w.Update(42, EntryPatch{Progress: &progress}); err != nil {
		t.Fatalf("Update on missing entry: %v", err)
	}
	if len(w.All()) != 0 {
		t.Fatal("Update on missing entry created an entry")
	}
}

func TestWatchlistUpdateMergesPatch(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	progress := 12
	if err := w.Update(5, EntryPatch{Progress: &progress}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	e := w.Get(5)
	if e.Progress != 12 {
		t.Fatalf("Progress: got %d, want 12", e.Progress)
	}
	if e.Status != StatusWatching {
		t.Fatalf("Status changed by progress patch: got %s", e.Status)
	}

	// Episode notes merge at the key level.
	if err := w.Update(5, EntryPatch{EpisodeNotes: map[int]string{1: "great opener"}}); err != nil {
		t.Fatal(err)
	}
	if err := w.Update(5, EntryPatch{EpisodeNotes: map[int]string{3: "plot twist"}}); err != nil {
		t.Fatal(err)
	}
	e = w.Get(5)
	if len(e.EpisodeNotes) != 2 {
		t.Fatalf("EpisodeNotes: got %d keys, want 2 (merge, not replace)", len(e.EpisodeNotes))
	}
	if e.EpisodeNotes[1] != "great opener" || e.EpisodeNotes[3] != "plot twist" {
		t.Fatalf("EpisodeNotes content wrong: %v", e.EpisodeNotes)
	}
}

func TestWatchlistRemoveIsIdempotent(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	if err := w.Remove(5); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := w.Remove(5); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if len(w.All()) != 0 {
		t.Fatal("entry still present after Remove")
	}
}

func TestWatchlistBulkSetStatus(t *testing.T) {
	w := newTestWatchlist(t)
	for _, id := range []int{1, 2, 3} {
		if err := w.Add(id, StatusWatching); err != nil {
			t.Fatal(err)
		}
	}

	// Empty set: nothing changes.
	if err := w.BulkSetStatus(nil, StatusCompleted); err != nil {
		t.Fatalf("BulkSetStatus empty: %v", err)
	}
	for _, e := range w.All() {
		if e.Status != StatusWatching {
			t.Fatalf("empty bulk update changed entry %d", e.AnimeID)
		}
	}

	// 99 does not exist: silently skipped, not created.
	if err := w.BulkSetStatus([]int{1, 2, 99}, StatusCompleted); err != nil {
		t.Fatalf("BulkSetStatus: %v", err)
	}
	if len(w.All()) != 3 {
		t.Fatalf("bulk update created entries: %d", len(w.All()))
	}
	for _, id := range []int{1, 2} {
		e := w.Get(id)
		if e.Status != StatusCompleted {
			t.Errorf("entry %d status: got %s, want completed", id, e.Status)
		}
		if e.CompletedAt == "" {
			t.Errorf("entry %d missing CompletedAt stamp", id)
		}
	}
	e := w.Get(3)
	if e.Status != StatusWatching || e.CompletedAt != "" {
		t.Errorf("entry 3 modified though not targeted: %+v", e)
	}

	// Non-completed statuses leave CompletedAt untouched.
	if err := w.BulkSetStatus([]int{1}, StatusOnHold); err != nil {
		t.Fatal(err)
	}
	if e := w.Get(1); e.CompletedAt == "" {
		t.Error("setting on_hold cleared CompletedAt")
	}
}

func TestWatchlistBulkRemove(t *testing.T) {
	w := newTestWatchlist(t)
	for _, id := range []int{1, 2, 3} {
		if err := w.Add(id, StatusWatching); err != nil {
			t.Fatal(err)
		}
	}

	if err := w.BulkRemove([]int{1, 3, 99}); err != nil {
		t.Fatalf("BulkRemove: %v", err)
	}
	all := w.All()
	if len(all) != 1 || all[0].AnimeID != 2 {
		t.Fatalf("BulkRemove left %v, want only entry 2", all)
	}
}

func TestWatchlistIncrementRewatch(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}
	progress := 12
	if err := w.Update(5, EntryPatch{Progress: &progress}); err != nil {
		t.Fatal(err)
	}

	if err := w.IncrementRewatch(5); err != nil {
		t.Fatalf("IncrementRewatch: %v", err)
	}
	e := w.Get(5)
	if e.Progress != 0 {
		t.Errorf("Progress: got %d, want 0", e.Progress)
	}
	if e.RewatchCount != 1 {
		t.Errorf("RewatchCount: got %d, want 1", e.RewatchCount)
	}
	if e.Status != StatusWatching {
		t.Errorf("Status: got %s, want watching", e.Status)
	}

	// Twice increments by exactly 2 total.
	if err := w.IncrementRewatch(5); err != nil {
		t.Fatal(err)
	}
	if e := w.Get(5); e.RewatchCount != 2 {
		t.Errorf("RewatchCount after second call: got %d, want 2", e.RewatchCount)
	}

	// Also forces status back to watching from completed.
	status := StatusCompleted
	if err := w.Update(5, EntryPatch{Status: &status}); err != nil {
		t.Fatal(err)
	}
	if err := w.IncrementRewatch(5); err != nil {
		t.Fatal(err)
	}
	if e := w.Get(5); e.Status != StatusWatching {
		t.Errorf("Status after rewatch of completed: got %s, want watching", e.Status)
	}

	// Missing entry: no-op.
	if err := w.IncrementRewatch(99); err != nil {
		t.Fatalf("IncrementRewatch on missing entry: %v", err)
	}
	if w.Has(99) {
		t.Fatal("IncrementRewatch created an entry")
	}
}

func TestWatchlistEpisodeNotes(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	if err := w.AddEpisodeNote(5, 3, "the fight scene"); err != nil {
		t.Fatalf("AddEpisodeNote: %v", err)
	}
	if err := w.AddEpisodeNote(5, 3, "revised note"); err != nil {
		t.Fatal(err)
	}
	e := w.Get(5)
	if len(e.EpisodeNotes) != 1 || e.EpisodeNotes[3] != "revised note" {
		t.Fatalf("EpisodeNotes: %v", e.EpisodeNotes)
	}

	if err := w.RemoveEpisodeNote(5, 3); err != nil {
		t.Fatalf("RemoveEpisodeNote: %v", err)
	}
	if len(w.Get(5).EpisodeNotes) != 0 {
		t.Fatal("note still present after remove")
	}

	// Missing entry: no-ops.
	if err := w.AddEpisodeNote(99, 1, "x"); err != nil {
		t.Fatal(err)
	}
	if err := w.RemoveEpisodeNote(99, 1); err != nil {
		t.Fatal(err)
	}
}

func TestWatchlistToggleFavorite(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	if err := w.ToggleFavorite(5); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !w.Get(5).Favorite {
		t.Fatal("Favorite not set after toggle")
	}
	if err := w.ToggleFavorite(5); err != nil {
		t.Fatal(err)
	}
	if w.Get(5).Favorite {
		t.Fatal("Favorite still set after second toggle")
	}
	if favs := w.Favorites(); len(favs) != 0 {
		t.Fatalf("Favorites: got %d, want 0", len(favs))
	}
}

func TestWatchlistExportImportRoundTrip(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}
	score := 9
	progress := 12
	if err := w.Update(5, EntryPatch{
		Progress:     &progress,
		Score:        &score,
		EpisodeNotes: map[int]string{2: "keep an eye on the fox"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(7, StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if err := w.ToggleFavorite(7); err != nil {
		t.Fatal(err)
	}
	if err := w.IncrementRewatch(7); err != nil {
		t.Fatal(err)
	}
	before := w.All()

	exported, err := w.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	// Wipe and restore with replace mode.
	if err := w.BulkRemove([]int{5, 7}); err != nil {
		t.Fatal(err)
	}
	if ok := w.Import(exported, false); !ok {
		t.Fatal("Import of our own export failed")
	}

	after := w.All()
	if len(after) != len(before) {
		t.Fatalf("round trip: got %d entries, want %d", len(after), len(before))
	}
	for i := range before {
		b, a := before[i], after[i]
		if a.AnimeID != b.AnimeID || a.Status != b.Status || a.Progress != b.Progress ||
			a.Favorite != b.Favorite || a.RewatchCount != b.RewatchCount ||
			a.StartedAt != b.StartedAt || a.CompletedAt != b.CompletedAt {
			t.Fatalf("entry %d differs after round trip:\nbefore %+v\nafter  %+v", i, b, a)
		}
		if (a.Score == nil) != (b.Score == nil) || (a.Score != nil && *a.Score != *b.Score) {
			t.Fatalf("entry %d score differs after round trip", i)
		}
		if len(a.EpisodeNotes) != len(b.EpisodeNotes) {
			t.Fatalf("entry %d notes differ after round trip", i)
		}
		for ep, note := range b.EpisodeNotes {
			if a.EpisodeNotes[ep] != note {
				t.Fatalf("entry %d note for episode %d differs", i, ep)
			}
		}
	}
}

func TestWatchlistImportGarbageLeavesStateUnchanged(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}
	before := w.All()

	if ok := w.Import("certainly { not json", true); ok {
		t.Fatal("Import of garbage reported success")
	}

	after := w.All()
	if len(after) != len(before) || after[0].AnimeID != before[0].AnimeID ||
		after[0].Status != before[0].Status {
		t.Fatalf("state changed after failed import:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestWatchlistImportMergeKeepsExisting(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	payload := `[
		{"animeId": 5, "status": "dropped", "progress": 99},
		{"animeId": 8, "status": "completed", "progress": 24},
		{"animeId": 8, "status": "on_hold", "progress": 1}
	]`
	if ok := w.Import(payload, true); !ok {
		t.Fatal("Import failed")
	}

	all := w.All()
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2", len(all))
	}
	// Existing entry 5 is untouched; imported duplicate dropped.
	e := w.Get(5)
	if e.Status != StatusWatching || e.Progress != 0 {
		t.Fatalf("merge overwrote existing entry: %+v", e)
	}
	// Duplicate within the payload: first wins.
	e = w.Get(8)
	if e.Status != StatusCompleted || e.Progress != 24 {
		t.Fatalf("payload duplicate handling wrong: %+v", e)
	}
}

func TestWatchlistImportReplace(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	if ok := w.Import(`[{"animeId": 9, "status": "plan_to_watch", "progress": 0}]`, false); !ok {
		t.Fatal("Import failed")
	}
	all := w.All()
	if len(all) != 1 || all[0].AnimeID != 9 {
		t.Fatalf("replace mode kept prior entries: %v", all)
	}
}

func TestWatchlistPersistsAcrossInstances(t *testing.T) {
	kv := store.NewMemoryStore()

	w1, err := NewWatchlist(kv)
	if err != nil {
		t.Fatal(err)
	}
	if err := w1.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}

	// Simulated restart.
	w2, err := NewWatchlist(kv)
	if err != nil {
		t.Fatal(err)
	}
	if !w2.Has(5) {
		t.Fatal("entry not persisted across store instances")
	}
}

func TestWatchlistScenarioAddUpdateRewatch(t *testing.T) {
	w := newTestWatchlist(t)

	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}
	e := w.Get(5)
	if e.AnimeID != 5 || e.Status != StatusWatching || e.Progress != 0 || e.StartedAt == "" {
		t.Fatalf("after add: %+v", e)
	}

	progress := 12
	if err := w.Update(5, EntryPatch{Progress: &progress}); err != nil {
		t.Fatal(err)
	}
	if w.Get(5).Progress != 12 {
		t.Fatal("progress not updated")
	}

	if err := w.IncrementRewatch(5); err != nil {
		t.Fatal(err)
	}
	e = w.Get(5)
	if e.Progress != 0 || e.RewatchCount != 1 || e.Status != StatusWatching {
		t.Fatalf("after rewatch: %+v", e)
	}
}

func TestWatchlistSubscribeNotify(t *testing.T) {
	w := newTestWatchlist(t)

	fired := 0
	unsubscribe := w.Subscribe(func() { fired++ })

	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}
	if fired != 1 {
		t.Fatalf("subscriber fired %d times after one mutation, want 1", fired)
	}

	// No-ops do not persist and do not notify.
	if err := w.Remove(99); err != nil {
		t.Fatal(err)
	}
	if fired != 1 {
		t.Fatalf("subscriber fired on a no-op: %d", fired)
	}

	unsubscribe()
	if err := w.Remove(5); err != nil {
		t.Fatal(err)
	}
	if fired != 1 {
		t.Fatalf("subscriber fired after unsubscribe: %d", fired)
	}
}

func TestWatchlistExportIsHumanReadable(t *testing.T) {
	w := newTestWatchlist(t)
	if err := w.Add(5, StatusPlanToWatch); err != nil {
		t.Fatal(err)
	}
	exported, err := w.ExportJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(exported, "\n") || !strings.Contains(exported, "\"animeId\": 5") {
		t.Fatalf("export not indented/readable:\n%s", exported)
	}
}
