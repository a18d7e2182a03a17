package services

import (
	"fmt"
	"sync"
	"testing"

	"zulu-bot/models"
)

func TestMemoryStoreAppendAndHistory(t *testing.T) {
	store := NewMemoryStore()

	if got := store.History("919900000001"); len(got) != 0 {
		t.Fatalf("new session should have empty history, got %d turns", len(got))
	}

	store.Append("919900000001", models.Turn{Role: models.RoleUser, Content: "hi"})
	store.Append("919900000001", models.Turn{Role: models.RoleAssistant, Content: "hello"})
	store.Append("919900000002", models.Turn{Role: models.RoleUser, Content: "other session"})

	got := store.History("919900000001")
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Role != models.RoleUser || got[0].Content != "hi" {
		t.Errorf("unexpected first turn: %+v", got[0])
	}
	if got[1].Role != models.RoleAssistant || got[1].Content != "hello" {
		t.Errorf("unexpected second turn: %+v", got[1])
	}
	if other := store.History("919900000002"); len(other) != 1 {
		t.Errorf("sessions must be independent, got %d turns", len(other))
	}
}

func TestMemoryStoreHistoryReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.Append("s", models.Turn{Role: models.RoleUser, Content: "original"})

	got := store.History("s")
	got[0].Content = "mutated"

	if fresh := store.History("s"); fresh[0].Content != "original" {
		t.Errorf("History must return a copy, stored turn was mutated to %q", fresh[0].Content)
	}
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()

	const goroutines = 16
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			session := fmt.Sprintf("session-%d", g%4)
			for i := 0; i < perGoroutine; i++ {
				store.Append(session, models.Turn{Role: models.RoleUser, Content: "msg"})
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for g := 0; g < 4; g++ {
		total += len(store.History(fmt.Sprintf("session-%d", g)))
	}
	if total != goroutines*perGoroutine {
		t.Errorf("lost appends under concurrency: got %d, want %d", total, goroutines*perGoroutine)
	}
}
