// Package document implements the record store as a single JSON snapshot kept in a
// gocloud.dev blob bucket (local directory, memory or GCS). The snapshot has the
// shape {"users": [...], "tasks": [...]} and is rewritten whole on every change.
package document

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"taskhub/config"
	"taskhub/internal/domain/lifecycle"
	"taskhub/internal/errors"

	"github.com/bytedance/sonic"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through store.document.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const contentType = "application/json"

// Store guards the snapshot. Reads share the cached copy; writes build a new copy,
// persist it and only then swap it in, so a failed write leaves no trace.
type Store struct {
	bucket *blob.Bucket
	key    string
	codec  sonic.API
	logger *slog.Logger

	mu     sync.Mutex
	cached *snapshot
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := Open(ctx, params.Config.Store.Document, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens the bucket named by cfg.BucketURL.
func Open(ctx context.Context, cfg config.DocumentConfig, logger *slog.Logger) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", cfg.BucketURL)
	}

	return NewStore(bucket, cfg.Key, logger), nil
}

// NewStore wraps an already opened bucket. The store takes ownership of it.
func NewStore(bucket *blob.Bucket, key string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		bucket: bucket,
		key:    key,
		codec:  sonic.ConfigStd,
		logger: logger.With(slog.String("component", "document_store"), slog.String("key", key)),
	}
}

// Close releases the bucket.
func (s *Store) Close() error {
	return errors.Wrap(s.bucket.Close(), "close bucket")
}

// view runs fn against the current snapshot. fn must not retain or mutate it.
func (s *Store) view(ctx context.Context, fn func(*snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}

	return fn(snap)
}

// update runs fn against a private copy of the snapshot and persists the copy when fn succeeds.
func (s *Store) update(ctx context.Context, fn func(*snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}

	next := current.clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := s.saveLocked(ctx, next); err != nil {
		return err
	}
	s.cached = next

	return nil
}

func (s *Store) loadLocked(ctx context.Context) (*snapshot, error) {
	if s.cached != nil {
		return s.cached, nil
	}

	data, err := s.bucket.ReadAll(ctx, s.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		s.cached = newSnapshot()

		return s.cached, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.key)
	}

	snap := newSnapshot()
	if len(data) > 0 {
		if err := s.codec.Unmarshal(data, snap); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", s.key)
		}
	}
	snap.normalize()
	s.cached = snap

	s.logger.DebugContext(ctx, "Snapshot loaded",
		slog.Int("users", len(snap.Users)),
		slog.Int("tasks", len(snap.Tasks)),
	)

	return snap, nil
}

func (s *Store) saveLocked(ctx context.Context, snap *snapshot) error {
	data, err := s.codec.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}

	start := time.Now()
	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.key)
	}

	s.logger.DebugContext(ctx, "Snapshot saved",
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// exists reports whether the snapshot object has been written.
func (s *Store) exists(ctx context.Context) (bool, error) {
	ok, err := s.bucket.Exists(ctx, s.key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %s", s.key)
	}

	return ok, nil
}

// snapshot is the persisted document.
type snapshot struct {
	Users []userRecord `json:"users"`
	Tasks []taskRecord `json:"tasks"`
}

func newSnapshot() *snapshot {
	return &snapshot{Users: []userRecord{}, Tasks: []taskRecord{}}
}

// normalize replaces null collections so the file always encodes as arrays.
func (s *snapshot) normalize() {
	if s.Users == nil {
		s.Users = []userRecord{}
	}
	if s.Tasks == nil {
		s.Tasks = []taskRecord{}
	}
}

// clone copies both collections. Records are values, and description pointers are
// never written through, so a shallow element copy is enough.
func (s *snapshot) clone() *snapshot {
	return &snapshot{
		Users: slices.Clone(s.Users),
		Tasks: slices.Clone(s.Tasks),
	}
}
