package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"content-admin-api/internal/form"
	"content-admin-api/internal/metrics"
)

// EntityType identifies the kind of record an edit session works on.
type EntityType string

const (
	EntityCategory EntityType = "category"
	EntityProject  EntityType = "project"
)

// Session is one server-held editing session. The admin frontend drives the
// form controller through the session endpoints; all mutations on a session
// must happen under its lock.
type Session struct {
	sync.Mutex

	ID         string
	EntityType EntityType
	RecordID   uint

	// Exactly one of Category or Project is set, matching EntityType.
	// Project sessions also carry the step wizard wrapping the form.
	Category *form.CategoryForm
	Project  *form.ProjectForm
	Wizard   *form.Wizard

	ExpiresAt time.Time
}

// State reports the lifecycle state of the session's form controller.
func (s *Session) State() form.State {
	if s.Category != nil {
		return s.Category.State()
	}
	return s.Project.State()
}

// Manager owns the in-memory session table. Sessions expire after the
// configured TTL of inactivity; a periodic purge loop evicts them.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	categories form.CategoryStore
	projects   form.ProjectStore
	ttl        time.Duration
	now        func() time.Time
	logger     *zap.Logger
	metrics    *metrics.Metrics

	stop chan struct{}
}

// NewManager creates a session manager backed by the given store collaborators
func NewManager(categories form.CategoryStore, projects form.ProjectStore, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		categories: categories,
		projects:   projects,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger,
		metrics:    m,
		stop:       make(chan struct{}),
	}
}

// CreateCategorySession opens an editing session for a category record. The
// session is created even when the load fails; the terminal state is reported
// through the session view so the frontend can render the error page.
func (m *Manager) CreateCategorySession(ctx context.Context, recordID uint) *Session {
	f := form.NewCategoryForm(m.categories, form.Options{Logger: m.logger})
	f.Load(ctx, recordID)

	sess := &Session{
		ID:         uuid.NewString(),
		EntityType: EntityCategory,
		RecordID:   recordID,
		Category:   f,
	}
	m.put(sess)
	return sess
}

// CreateProjectSession opens an editing session for a project record,
// wrapping the form in the five step wizard.
func (m *Manager) CreateProjectSession(ctx context.Context, recordID uint) *Session {
	f := form.NewProjectForm(m.projects, form.Options{Logger: m.logger})
	f.Load(ctx, recordID)

	sess := &Session{
		ID:         uuid.NewString(),
		EntityType: EntityProject,
		RecordID:   recordID,
		Project:    f,
		Wizard:     form.NewWizard(f, nil),
	}
	m.put(sess)
	return sess
}

// Get returns a live session and slides its expiry forward. Expired sessions
// are treated as absent.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.now().After(sess.ExpiresAt) {
		delete(m.sessions, id)
		m.reportCount()
		return nil, false
	}
	sess.ExpiresAt = m.now().Add(m.ttl)
	return sess, true
}

// Delete removes a session, if present
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	m.reportCount()
}

// Count returns the number of sessions currently held, including any that
// have expired but not yet been purged
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartPurgeLoop evicts expired sessions every interval until Stop is called
func (m *Manager) StartPurgeLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.purge()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop terminates the purge loop
func (m *Manager) Stop() {
	close(m.stop)
}

func (m *Manager) put(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess.ExpiresAt = m.now().Add(m.ttl)
	m.sessions[sess.ID] = sess
	m.reportCount()
}

func (m *Manager) purge() {
	now := m.now()

	m.mu.Lock()
	var expired int
	for id, sess := range m.sessions {
		if now.After(sess.ExpiresAt) {
			delete(m.sessions, id)
			expired++
		}
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	if expired > 0 {
		m.logger.Info("Purged expired edit sessions",
			zap.Int("expired", expired),
			zap.Int("remaining", remaining),
		)
	}
	if m.metrics != nil {
		m.metrics.SetEditSessionsActive(remaining)
	}
}

// reportCount must be called with m.mu held
func (m *Manager) reportCount() {
	if m.metrics != nil {
		m.metrics.SetEditSessionsActive(len(m.sessions))
	}
}
