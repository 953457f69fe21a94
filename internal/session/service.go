package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service struct {
	store Store
	sfg   singleflight.Group // collapses concurrent loads of one session
	locks *keyedMutex
	log   *zap.Logger
	now   func() time.Time
}

// NewService creates a session service backed by store.
func NewService(store Store, log *zap.Logger) *Service {
	return &Service{
		store: store,
		locks: newKeyedMutex(),
		log:   log,
		now:   time.Now,
	}
}

func NewID() string {
	return uuid.NewString()
}

// Load returns a copy of the session, or a fresh unsaved one when the id is
// unknown or expired.
func (s *Service) Load(ctx context.Context, id string) (*Session, error) {
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		sess, err := s.store.Get(ctx, id)
		if errors.Is(err, ErrSessionNotFound) {
			return New(id, s.now()), nil
		}
		if err != nil {
			return nil, err
		}
		return sess, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Session).Clone(), nil
}

// Update applies fn to the session under a per-session lock and saves the
// result. Requests for one session are applied one at a time, in arrival order
// of the lock. When fn fails nothing is saved.
func (s *Service) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		sess = New(id, s.now())
	} else if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		s.log.Error("session save failed", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}
	s.sfg.Forget(id)
	return sess.Clone(), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()
	s.sfg.Forget(id)
	return s.store.Delete(ctx, id)
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
