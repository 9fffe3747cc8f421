package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/researchhub/hubcli/internal/client/repositories/metadata"
	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/dbx"
	"github.com/researchhub/hubcli/internal/logging"
)

// Store holds the credential and profile snapshot of the signed-in user.
// Readers see the pair swapped as a whole; durable writes go to the
// metadata table in one transaction and never fail the caller.
type Store struct {
	// wmu orders writers so memory and disk end in the same state.
	wmu sync.Mutex

	mu      sync.RWMutex
	token   string
	profile *models.User

	db     *sql.DB
	logger logging.Logger
}

// NewMemoryStore returns a Store without durable backing.
func NewMemoryStore(logger logging.Logger) *Store {
	return &Store{logger: logger}
}

// Open returns a Store backed by db and primes it with the persisted pair.
// An unreadable persisted session is logged and treated as no session.
func Open(ctx context.Context, db *sql.DB, logger logging.Logger) *Store {
	s := &Store{db: db, logger: logger}

	token, profile, err := s.load(ctx, metadata.NewSQLiteRepository(db))
	if err != nil {
		logger.Warn(ctx, "persisted session ignored", "error", err)
		return s
	}
	s.token, s.profile = token, profile
	return s
}

func (s *Store) load(ctx context.Context, repo metadata.Repository) (string, *models.User, error) {
	rawToken, err := repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", nil, err
	}
	if len(rawToken) == 0 {
		return "", nil, nil
	}

	rawUser, err := repo.Get(ctx, common.UserStorageKey)
	if err != nil {
		return "", nil, err
	}
	if len(rawUser) == 0 {
		return string(rawToken), nil, nil
	}

	var u models.User
	if err := json.Unmarshal(rawUser, &u); err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrMalformedProfile, err)
	}
	return string(rawToken), &u, nil
}

// SetSession replaces the stored pair. profile may be nil when the profile
// could not be fetched at login. An empty token is the same as Clear.
func (s *Store) SetSession(ctx context.Context, token string, profile *models.User) {
	if token == "" {
		s.Clear(ctx)
		return
	}

	var p *models.User
	if profile != nil {
		cp := *profile
		p = &cp
	}

	s.wmu.Lock()
	defer s.wmu.Unlock()

	s.mu.Lock()
	s.token, s.profile = token, p
	s.mu.Unlock()

	if err := s.persist(ctx, token, p); err != nil {
		s.logger.Warn(ctx, "session not persisted", "error", err)
	}
}

// Token returns the stored credential, or ("", false) when there is none.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Profile returns a copy of the stored profile, or (zero, false) when there
// is none.
func (s *Store) Profile() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.User{}, false
	}
	return *s.profile, true
}

// Snapshot is a consistent view of the pair taken under one lock.
type Snapshot struct {
	Token   string
	Profile *models.User
}

// Snapshot returns the token and a copy of the profile read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Token: s.token}
	if s.profile != nil {
		cp := *s.profile
		snap.Profile = &cp
	}
	return snap
}

// Authenticated reports whether a credential is present.
func (s *Store) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// Clear removes the credential and the profile. Clearing an empty store is
// a no-op.
func (s *Store) Clear(ctx context.Context) {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	s.mu.Lock()
	s.token, s.profile = "", nil
	s.mu.Unlock()

	if err := s.erase(ctx); err != nil {
		s.logger.Warn(ctx, "session not erased from disk", "error", err)
	}
}

func (s *Store) persist(ctx context.Context, token string, profile *models.User) error {
	if s.db == nil {
		return nil
	}

	var rawUser []byte
	if profile != nil {
		b, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		rawUser = b
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		if rawUser == nil {
			return repo.Delete(ctx, common.UserStorageKey)
		}
		return repo.Set(ctx, common.UserStorageKey, rawUser)
	})
}

func (s *Store) erase(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
}
