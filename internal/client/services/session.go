package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
	"github.com/dmitrijs2005/linkdash/internal/client/repositories/session"
	"github.com/dmitrijs2005/linkdash/internal/common"
	"github.com/dmitrijs2005/linkdash/internal/dbx"
	"github.com/dmitrijs2005/linkdash/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Keys of the two persisted session rows.
const (
	KeyAuthToken = "auth_token"
	KeyUser      = "user"
)

// SessionStore persists the signed-in identity and its bearer token in the
// local database. Both rows are written and removed together.
type SessionStore struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

func NewSessionStore(db *sql.DB, logger logging.Logger) *SessionStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SessionStore{db: db, logger: logger, now: time.Now}
}

// Save writes identity and token in one transaction. An incomplete session is
// rejected with common.ErrIncompleteSession and nothing is written.
func (s *SessionStore) Save(ctx context.Context, identity models.Identity, token string) error {
	if !(models.Session{Identity: identity, Token: token}).Complete() {
		return common.ErrIncompleteSession
	}

	user, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, user)
	})
}

// Load returns the persisted session. It reports false when either row is
// missing, the identity cannot be decoded, storage cannot be read, or the
// token is a JWT that has already expired. None of these are errors for the
// caller: they all mean "sign in again".
func (s *SessionStore) Load(ctx context.Context) (models.Session, bool) {
	raw, err := dbx.Read(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) ([2][]byte, error) {
		repo := session.NewSQLiteRepository(tx)
		token, err := repo.Get(ctx, KeyAuthToken)
		if err != nil {
			return [2][]byte{}, err
		}
		user, err := repo.Get(ctx, KeyUser)
		if err != nil {
			return [2][]byte{}, err
		}
		return [2][]byte{token, user}, nil
	})
	if err != nil {
		s.logger.Warn(ctx, "session store unreadable", "err", err)
		return models.Session{}, false
	}
	token, user := raw[0], raw[1]
	if len(token) == 0 || len(user) == 0 {
		return models.Session{}, false
	}

	var identity models.Identity
	if err := json.Unmarshal(user, &identity); err != nil {
		s.logger.Debug(ctx, "persisted identity is corrupt", "err", err)
		return models.Session{}, false
	}

	sess := models.Session{Identity: identity, Token: string(token)}
	if !sess.Complete() {
		s.logger.Debug(ctx, "persisted session is incomplete")
		return models.Session{}, false
	}

	if tokenExpired(sess.Token, s.now()) {
		s.logger.Info(ctx, "persisted session expired", "user", identity.Username)
		if err := s.Clear(ctx); err != nil {
			s.logger.Warn(ctx, "failed to clear expired session", "err", err)
		}
		return models.Session{}, false
	}

	return sess, true
}

// Clear removes both rows in one transaction.
func (s *SessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUser)
	})
}

// tokenExpired reports whether token is a JWT whose exp claim is not after
// now. The signature is not checked; opaque tokens never expire here.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
