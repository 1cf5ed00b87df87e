package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
	"campus-portal/backend/pkg/redis"
	"campus-portal/backend/pkg/token"
)

// ErrSessionInvalid covers unknown and expired tokens alike; callers cannot
// distinguish the two cases.
var ErrSessionInvalid = errors.New("session invalid or expired")

// SessionService manages bearer sessions. The database is the source of
// truth; Redis, when present, is a read-through cache in front of it.
type SessionService struct {
	sessions repository.SessionRepository
	cache    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

// NewSessionService creates the session service. cache may be nil.
func NewSessionService(sessions repository.SessionRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Create opens a session for the given account. The expiry is fixed at
// creation time; validating a session never extends it.
func (s *SessionService) Create(ctx context.Context, userID, role string) (*model.Session, error) {
	tok, err := token.Generate()
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		Token:     tok,
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Now().Add(s.ttl).UnixMilli(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.cacheSession(ctx, session)
	return session, nil
}

// Get resolves a bearer token to its session. Expired sessions are deleted
// on sight and reported as invalid.
func (s *SessionService) Get(ctx context.Context, tok string) (*model.Session, error) {
	if cached := s.cachedSession(ctx, tok); cached != nil {
		if !cached.Expired(time.Now()) {
			return cached, nil
		}
		// Stale cache entry; fall through to the database.
	}

	session, err := s.sessions.Get(ctx, tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		if err := s.sessions.Delete(ctx, tok); err != nil {
			s.logger.Warn("deleting expired session", zap.Error(err))
		}
		s.invalidateCache(ctx, tok)
		return nil, ErrSessionInvalid
	}

	s.cacheSession(ctx, session)
	return session, nil
}

// Delete ends a session. Unknown tokens are not an error; logout is
// idempotent.
func (s *SessionService) Delete(ctx context.Context, tok string) error {
	s.invalidateCache(ctx, tok)
	return s.sessions.Delete(ctx, tok)
}

// SweepExpired removes every session already past its expiry.
func (s *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, time.Now().UnixMilli())
}

// RunSweeper sweeps expired sessions on the given interval until the
// context is canceled. Meant to run in its own goroutine.
func (s *SessionService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				s.logger.Error("session sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.logger.Info("swept expired sessions", zap.Int64("count", n))
			}
		}
	}
}

// ── Redis read-through ──

// Cache entries hold "userID|role|expiresAtMillis".

func (s *SessionService) cacheSession(ctx context.Context, session *model.Session) {
	if s.cache == nil {
		return
	}
	value := strings.Join([]string{
		session.UserID,
		session.Role,
		strconv.FormatInt(session.ExpiresAt, 10),
	}, "|")
	ttl := time.Until(time.UnixMilli(session.ExpiresAt))
	if err := s.cache.CacheSession(ctx, session.Token, value, ttl); err != nil {
		s.logger.Warn("caching session", zap.Error(err))
	}
}

func (s *SessionService) cachedSession(ctx context.Context, tok string) *model.Session {
	if s.cache == nil {
		return nil
	}
	value, err := s.cache.GetSession(ctx, tok)
	if err != nil {
		s.logger.Warn("reading session cache", zap.Error(err))
		return nil
	}
	if value == "" {
		return nil
	}
	parts := strings.SplitN(value, "|", 3)
	if len(parts) != 3 {
		return nil
	}
	expiresAt, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil
	}
	return &model.Session{
		Token:     tok,
		UserID:    parts[0],
		Role:      parts[1],
		ExpiresAt: expiresAt,
	}
}

func (s *SessionService) invalidateCache(ctx context.Context, tok string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSession(ctx, tok); err != nil {
		s.logger.Warn("invalidating session cache", zap.Error(err))
	}
}
