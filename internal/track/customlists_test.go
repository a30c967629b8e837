// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package track

import (
	"testing"
	"time"

	"github.com/20Youssef10/anime-hub-central/internal/store"
)

func newTestLists(t *testing.T) *CustomLists {
	t.Helper()
	cl, err := NewCustomLists(store.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewCustomLists: %v", err)
	}
	return cl
}

func TestCustomListsCreate(t *testing.T) {
	cl := newTestLists(t)

	list, err := cl.Create("Summer 2026", "seasonal picks", "#22c55e", "sun")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if list.ID == "" {
		t.Fatal("list has no ID")
	}
	if list.CreatedAt.IsZero() || list.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
	if len(list.AnimeIDs) != 0 {
		t.Fatalf("new list not empty: %v", list.AnimeIDs)
	}

	// Two lists with the same name are distinct.
	other, err := cl.Create("Summer 2026", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == list.ID {
		t.Fatal("Create reused an ID")
	}
	if len(cl.All()) != 2 {
		t.Fatalf("got %d lists, want 2", len(cl.All()))
	}
}

func TestCustomListsAddAnimeIsIdempotent(t *testing.T) {
	cl := newTestLists(t)
	list, err := cl.Create("Favorites of the decade", "", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := cl.AddAnime(list.ID, 5); err != nil {
		t.Fatalf("AddAnime: %v", err)
	}
	if err := cl.AddAnime(list.ID, 5); err != nil {
		t.Fatalf("AddAnime again: %v", err)
	}

	got := cl.Get(list.ID)
	if len(got.AnimeIDs) != 1 || got.AnimeIDs[0] != 5 {
		t.Fatalf("AnimeIDs: %v, want [5]", got.AnimeIDs)
	}
}

func TestCustomListsRemoveAnime(t *testing.T) {
	cl := newTestLists(t)
	list, err := cl.Create("Backlog", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []int{1, 2, 3} {
		if err := cl.AddAnime(list.ID, id); err != nil {
			t.Fatal(err)
		}
	}

	if err := cl.RemoveAnime(list.ID, 2); err != nil {
		t.Fatalf("RemoveAnime: %v", err)
	}
	got := cl.Get(list.ID)
	if len(got.AnimeIDs) != 2 || got.AnimeIDs[0] != 1 || got.AnimeIDs[1] != 3 {
		t.Fatalf("AnimeIDs: %v, want [1 3]", got.AnimeIDs)
	}

	// Not a member: no-op.
	if err := cl.RemoveAnime(list.ID, 99); err != nil {
		t.Fatal(err)
	}
	if len(cl.Get(list.ID).AnimeIDs) != 2 {
		t.Fatal("removing a non-member changed the list")
	}
}

func TestCustomListsMissingIDIsNoop(t *testing.T) {
	cl := newTestLists(t)

	if err := cl.AddAnime("nope", 5); err != nil {
		t.Fatalf("AddAnime on missing list: %v", err)
	}
	if err := cl.RemoveAnime("nope", 5); err != nil {
		t.Fatalf("RemoveAnime on missing list: %v", err)
	}
	if err := cl.Delete("nope"); err != nil {
		t.Fatalf("Delete on missing list: %v", err)
	}
	name := "renamed"
	if err := cl.Update("nope", ListPatch{Name: &name}); err != nil {
		t.Fatalf("Update on missing list: %v", err)
	}
	if len(cl.All()) != 0 {
		t.Fatal("no-op mutations created lists")
	}
}

func TestCustomListsUpdateRefreshesTimestamp(t *testing.T) {
	cl := newTestLists(t)
	list, err := cl.Create("Old name", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	created := cl.Get(list.ID).UpdatedAt

	time.Sleep(5 * time.Millisecond)
	name := "New name"
	if err := cl.Update(list.ID, ListPatch{Name: &name}); err != nil {
		t.Fatal(err)
	}

	got := cl.Get(list.ID)
	if got.Name != "New name" {
		t.Fatalf("Name: got %q", got.Name)
	}
	if !got.UpdatedAt.After(created) {
		t.Fatal("UpdatedAt not refreshed by Update")
	}
	if !got.CreatedAt.Equal(list.CreatedAt) {
		t.Fatal("CreatedAt changed by Update")
	}
}

func TestCustomListsDelete(t *testing.T) {
	cl := newTestLists(t)
	a, err := cl.Create("Keep", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := cl.Create("Drop", "", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := cl.Delete(b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	all := cl.All()
	if len(all) != 1 || all[0].ID != a.ID {
		t.Fatalf("got %v after delete", all)
	}
}

func TestCustomListsMembershipQueries(t *testing.T) {
	cl := newTestLists(t)
	a, err := cl.Create("Action", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := cl.Create("Comfort", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := cl.AddAnime(a.ID, 5); err != nil {
		t.Fatal(err)
	}
	if err := cl.AddAnime(b.ID, 5); err != nil {
		t.Fatal(err)
	}
	if err := cl.AddAnime(b.ID, 7); err != nil {
		t.Fatal(err)
	}

	if !cl.Contains(a.ID, 5) || cl.Contains(a.ID, 7) {
		t.Fatal("Contains wrong")
	}
	holding := cl.ListsContaining(5)
	if len(holding) != 2 {
		t.Fatalf("ListsContaining(5): got %d lists, want 2", len(holding))
	}
	if got := cl.GetByName("Comfort"); got == nil || got.ID != b.ID {
		t.Fatal("GetByName failed")
	}
	if cl.GetByName("missing") != nil {
		t.Fatal("GetByName found a phantom list")
	}
}

func TestCustomListsIndependentOfWatchlist(t *testing.T) {
	kv := store.NewMemoryStore()
	w, err := NewWatchlist(kv)
	if err != nil {
		t.Fatal(err)
	}
	cl, err := NewCustomLists(kv)
	if err != nil {
		t.Fatal(err)
	}

	list, err := cl.Create("Pinned", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := cl.AddAnime(list.ID, 5); err != nil {
		t.Fatal(err)
	}

	// List membership does not require a watchlist entry, and removing
	// a watchlist entry leaves list membership alone.
	if err := w.Add(5, StatusWatching); err != nil {
		t.Fatal(err)
	}
	if err := w.Remove(5); err != nil {
		t.Fatal(err)
	}
	if !cl.Contains(list.ID, 5) {
		t.Fatal("list membership lost when watchlist entry removed")
	}
}

func TestCustomListsPersistAcrossInstances(t *testing.T) {
	kv := store.NewMemoryStore()

	cl1, err := NewCustomLists(kv)
	if err != nil {
		t.Fatal(err)
	}
	list, err := cl1.Create("Carry over", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := cl1.AddAnime(list.ID, 5); err != nil {
		t.Fatal(err)
	}

	cl2, err := NewCustomLists(kv)
	if err != nil {
		t.Fatal(err)
	}
	if !cl2.Contains(list.ID, 5) {
		t.Fatal("list not persisted across store instances")
	}
}
