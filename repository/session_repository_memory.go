package repository

import (
	"context"
	"sync"
	"time"

	"finance-guide/domain"
)

// SessionRepositoryMemory is the default session store. Sessions idle for
// longer than ttl are treated as missing, and a background sweep drops them
// until Stop is called.
type SessionRepositoryMemory struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]domain.Session
	now      func() time.Time

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	r := &SessionRepositoryMemory{
		ttl:         ttl,
		sessions:    make(map[string]domain.Session),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	if ttl > 0 {
		go r.cleanupLoop(min(ttl, maxSweepInterval))
	}
	return r
}

func (r *SessionRepositoryMemory) Get(_ context.Context, id string) (domain.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, false, nil
	}
	if r.idle(s, r.now()) {
		delete(r.sessions, id)
		return domain.Session{}, false, nil
	}
	return cloneSession(s), true, nil
}

func (r *SessionRepositoryMemory) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRepositoryMemory) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *SessionRepositoryMemory) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *SessionRepositoryMemory) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, s := range r.sessions {
		if r.idle(s, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *SessionRepositoryMemory) idle(s domain.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.UpdatedAt) > r.ttl
}

// cloneSession copies the message slice so callers never share backing
// arrays with the store.
func cloneSession(s domain.Session) domain.Session {
	s.Messages = append([]domain.Message(nil), s.Messages...)
	return s
}
