// Package store persists analysis reports for signed-in users.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	cfg "github.com/speakwise/analyzer/config"
	"github.com/speakwise/analyzer/orchestrator"
)

var ErrNotFound = errors.New("report not found")

// Store is a report repository. Save assigns the report ID.
type Store interface {
	orchestrator.Persister
	Get(ctx context.Context, id string) (orchestrator.Report, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]orchestrator.Report, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the configured driver. The "none" driver returns a nil Store.
func Open(c cfg.Store, log logrus.FieldLogger) (Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("store", c.Driver)

	var (
		s   Store
		err error
	)
	switch c.Driver {
	case "", "none":
		log.Warn("no report store configured: reports are never saved")
		return nil, nil
	case "file":
		s, err = NewFileStore(c.File.Dir)
	case "sqlite":
		s, err = NewSQLiteStore(c.SQLite.Path)
	case "redis":
		s, err = NewRedisStore(RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			TTL:      c.Redis.TTL,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.Driver)
	}
	if err != nil {
		return nil, err
	}
	log.Info("report store ready")
	return s, nil
}

func newID() string { return uuid.NewString() }

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// newestFirst sorts by creation time, then ID for a stable order.
func newestFirst(rs []orchestrator.Report) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.After(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

func truncate(rs []orchestrator.Report, limit int) []orchestrator.Report {
	if limit > 0 && len(rs) > limit {
		return rs[:limit]
	}
	return rs
}
