package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	p, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Profile{
		Timestamp: now,
		Data: ProfileData{
			Version:     1,
			Skills:      map[string]string{"html": "beginner", "sql": "intermediate"},
			WeeklyHours: 10,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil profile")
	}
	if p.Data.Skills["sql"] != "intermediate" {
		t.Errorf("skills = %v", p.Data.Skills)
	}
	if p.Data.WeeklyHours != 10 {
		t.Errorf("weekly hours = %v, want 10", p.Data.WeeklyHours)
	}
}

func TestProfileLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Profile{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProfileData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	p, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if p.Data.Version != 3 {
		t.Errorf("version = %d, want 3", p.Data.Version)
	}
}

func TestProfilePrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Profile{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProfileData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining profiles = %d, want 5", count)
	}

	// Latest should be untouched.
	p, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if p.Data.Version != 7 {
		t.Errorf("latest version = %d, want 7", p.Data.Version)
	}
}

func TestProfilePruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Profile{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProfileData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining profiles = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "path-draft",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not in descending sequence order: %d, %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}

	// Limit applies.
	events, err = repo.ListLLMRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "path-draft",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("got %d purpose rows, want 1", len(byPurpose))
	}
	if byPurpose[0].Calls != 2 || byPurpose[0].InputTokens != 200 || byPurpose[0].OutputTokens != 100 {
		t.Errorf("purpose stats = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "mock-model" || byModel[0].Calls != 2 {
		t.Errorf("model stats = %+v", byModel)
	}

	got, err := repo.GetLLMRequest(ctx, byPurpose[0].Calls) // id 2 exists
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event by id")
	}
}

func TestPathGenerationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendPathGeneration(ctx, PathEventData{
			PathID:            fmt.Sprintf("path-%d", i),
			Goal:              "become a web developer",
			Domain:            "web_development",
			Status:            "valid",
			Milestones:        5,
			EffortHours:       40,
			CalendarDays:      60,
			OverallDifficulty: "intermediate",
			PathJSON:          `{"id":"x"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.ListPathGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].PathID != "path-2" {
		t.Errorf("newest path id = %q, want path-2", events[0].PathID)
	}

	got, err := repo.GetPathGeneration(ctx, "path-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.PathID != "path-1" {
		t.Fatalf("get = %+v", got)
	}

	missing, err := repo.GetPathGeneration(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown path id, got %+v", missing)
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendPathGeneration(ctx, PathEventData{PathID: "p", Goal: "g", Status: "valid", PathJSON: "{}"}); err != nil {
		t.Fatalf("append path: %v", err)
	}

	llmEvents, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list llm: %v", err)
	}
	pathEvents, err := repo.ListPathGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list paths: %v", err)
	}

	// The path event was appended after the LLM event, so it carries the
	// higher sequence number despite living in a different table.
	if pathEvents[0].Sequence <= llmEvents[0].Sequence {
		t.Errorf("cross-type ordering broken: path seq %d, llm seq %d",
			pathEvents[0].Sequence, llmEvents[0].Sequence)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "llm_request_events", "path_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
