package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	cfg "github.com/speakwise/analyzer/config"
	"github.com/speakwise/analyzer/orchestrator"
	"github.com/speakwise/analyzer/scoring"
)

func sampleReport(user string, at time.Time) orchestrator.Report {
	return orchestrator.Report{
		UserID:    user,
		Analysis:  scoring.Analyze("um so like it was um great", nil, scoring.Options{}),
		CreatedAt: at,
	}
}

// exerciseStore runs the behaviour every driver must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	first, err := s.Save(ctx, sampleReport("alice", base))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := s.Save(ctx, sampleReport("alice", base.Add(500*time.Millisecond)))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save(ctx, sampleReport("bob", base.Add(time.Hour))); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second || !validID(first) {
		t.Fatalf("bad ids %q %q", first, second)
	}

	got, err := s.Get(ctx, first)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != first || got.UserID != "alice" || got.FillerWords["um"] != 2 || !got.CreatedAt.Equal(base) {
		t.Errorf("Get returned %+v", got)
	}

	list, err := s.ListByUser(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 || list[0].ID != second || list[1].ID != first {
		t.Errorf("ListByUser order wrong: %+v", list)
	}

	limited, err := s.ListByUser(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != second {
		t.Errorf("limit not applied: %+v", limited)
	}

	none, err := s.ListByUser(ctx, "carol", 10)
	if err != nil || len(none) != 0 {
		t.Errorf("ListByUser(carol) = %v, %v", none, err)
	}

	if _, err := s.Get(ctx, newID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) = %v, want ErrNotFound", err)
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "reports"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exerciseStore(t, s)

	if _, err := s.Save(context.Background(), sampleReport("../escape", time.Now())); err == nil {
		t.Error("path traversal user accepted")
	}
	if _, err := s.Get(context.Background(), "../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(bad id) = %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestRedisStore_ExpiredReportsPruned(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(RedisConfig{Addr: mr.Addr(), TTL: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Save(ctx, sampleReport("alice", time.Now())); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Hour)

	list, err := s.ListByUser(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expired report listed: %+v", list)
	}
	if n, _ := s.client.ZCard(ctx, userKey("alice")).Result(); n != 0 {
		t.Errorf("index not pruned, %d entries left", n)
	}
}

func TestRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	if _, err := NewRedisStore(RedisConfig{Addr: addr}); err == nil {
		t.Error("expected connection error")
	}
}

func TestOpen(t *testing.T) {
	s, err := Open(cfg.Store{Driver: "none"}, nil)
	if err != nil || s != nil {
		t.Errorf("Open(none) = %v, %v", s, err)
	}

	if _, err := Open(cfg.Store{Driver: "mongo"}, nil); err == nil {
		t.Error("expected error for unknown driver")
	}

	var c cfg.Store
	c.Driver = "sqlite"
	c.SQLite.Path = filepath.Join(t.TempDir(), "r.db")
	s, err = Open(c, nil)
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Open(sqlite) returned %T", s)
	}
}
