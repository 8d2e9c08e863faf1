// Package session is the single owner of the authentication state: the
// durable bearer credential and the in-memory profile of the signed-in
// admin. Feature code never reads or writes either directly; every mutation
// funnels through Service so the whole app always agrees on "am I logged
// in".
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/buperadmin/kwitansi-cli/internal/client/api"
	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/client/repositories/credentials"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
)

// Service owns the credential lifecycle.
//
// Contract:
//   - LoadCredential: read the stored token; "" means anonymous, never an error.
//   - Login: authenticate, persist the token, populate the profile. A failed
//     login mutates nothing.
//   - KeepAlive: revalidate the stored token. Any failure (transport, 401,
//     bad body) clears the credential and profile and reports
//     api.ErrSessionExpired; the two failure shapes are indistinguishable to
//     callers because both mean the session is unusable.
//   - Logout: drop credential and profile unconditionally; local only.
//   - CurrentUser: the profile, or nil when logged out.
type Service interface {
	LoadCredential(ctx context.Context) (string, error)
	Login(ctx context.Context, identifier, password string) (*models.SessionUser, error)
	KeepAlive(ctx context.Context) (*models.SessionUser, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.SessionUser
}

type service struct {
	api   api.Client
	creds credentials.Repository
	log   logging.Logger

	mu   sync.RWMutex
	user *models.SessionUser
}

// NewService constructs a Service over the API client and credential store.
func NewService(client api.Client, creds credentials.Repository, log logging.Logger) Service {
	return &service{api: client, creds: creds, log: log.With("component", "session")}
}

func (s *service) LoadCredential(ctx context.Context) (string, error) {
	return s.creds.Get(ctx, credentials.TokenKey)
}

func (s *service) Login(ctx context.Context, identifier, password string) (*models.SessionUser, error) {
	token, user, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	if err := s.creds.Set(ctx, credentials.TokenKey, token); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	s.setUser(user)
	return user, nil
}

func (s *service) KeepAlive(ctx context.Context) (*models.SessionUser, error) {
	user, err := s.api.KeepLogin(ctx)
	if err != nil {
		// The API client already cleared the credential on a 401; repeat
		// the clear here so transport and decode failures end in the same
		// logged-out state. Clearing twice is harmless.
		if derr := s.creds.Delete(ctx, credentials.TokenKey); derr != nil {
			s.log.Error(ctx, "clearing credential after failed keep-login", "error", derr)
		}
		s.setUser(nil)
		s.log.Warn(ctx, "keep-login failed, session dropped", "error", err)
		return nil, fmt.Errorf("keep login: %w", api.ErrSessionExpired)
	}

	s.setUser(user)
	return user, nil
}

func (s *service) Logout(ctx context.Context) error {
	s.setUser(nil)
	if err := s.creds.Delete(ctx, credentials.TokenKey); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (s *service) CurrentUser() *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *service) setUser(u *models.SessionUser) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// Store adapts the credential repository to the api.TokenStore interface,
// giving the API client read and clear access to the token without
// exposing writes.
type Store struct {
	creds credentials.Repository
}

func NewStore(creds credentials.Repository) *Store {
	return &Store{creds: creds}
}

func (s *Store) Token(ctx context.Context) (string, error) {
	return s.creds.Get(ctx, credentials.TokenKey)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.creds.Delete(ctx, credentials.TokenKey)
}
