package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vestia-market/vestia-cli/internal/api"
	"github.com/vestia-market/vestia-cli/internal/domain"
)

// Store holds the current authentication state: Anonymous, or
// Authenticated(user, token). It is constructed once at application start,
// reads any persisted token, and is passed explicitly to whatever needs it.
// The token is replaced atomically on login and logout.
type Store struct {
	persist TokenStore
	logger  *slog.Logger

	mu     sync.RWMutex
	token  string
	user   *domain.User
	client *api.Client
}

func NewStore(persist TokenStore, logger *slog.Logger) (*Store, error) {
	token, err := persist.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		persist: persist,
		logger:  logger,
		token:   token,
	}, nil
}

// SetClient wires the API client after construction; the client needs the
// store as its token source, so the two are built in that order.
func (s *Store) SetClient(c *api.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// User returns the profile captured at login, nil when only a persisted
// token is known.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a token. On failure the state stays
// Anonymous and the remote message is surfaced unchanged.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var resp authResponse
	if err := s.client.Post(ctx, "/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	s.establish(resp)
	s.logger.Info("session established", "email", email)
	return resp.User, nil
}

// Registration is the sign-up form. PasswordConfirm is checked locally and
// stripped from the outbound payload.
type Registration struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"-"`
}

func (r Registration) validate() error {
	required := []struct{ field, value string }{
		{"full_name", r.FullName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address", r.Address},
	}
	for _, f := range required {
		if f.value == "" {
			return &domain.ValidationError{Field: f.field, Message: "is required"}
		}
	}
	if r.Password != r.PasswordConfirm {
		return &domain.ValidationError{Field: "password", Message: "passwords do not match"}
	}
	if len(r.Password) < 6 {
		return &domain.ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}
	return nil
}

// Register validates the form locally, then creates the account and logs
// the new user in. A validation failure never reaches the network.
func (s *Store) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	if err := reg.validate(); err != nil {
		return nil, err
	}

	var resp authResponse
	if err := s.client.Post(ctx, "/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	s.establish(resp)
	s.logger.Info("account registered", "email", reg.Email)
	return resp.User, nil
}

// Logout transitions to Anonymous unconditionally and clears the persisted
// token.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.persist.Clear(); err != nil {
		s.logger.Error("failed to clear persisted token", "error", err)
	}
	s.logger.Info("session cleared")
}

// Expire is the API client's 401 hook: the remote side no longer accepts
// the token, so drop it.
func (s *Store) Expire() {
	if !s.Authenticated() {
		return
	}
	s.logger.Info("session token rejected by api, expiring session")
	s.Logout()
}

// Me fetches the profile of the current session, refreshing the cached user.
func (s *Store) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

func (s *Store) establish(resp authResponse) {
	s.mu.Lock()
	s.token = resp.Token
	s.user = resp.User
	s.mu.Unlock()

	if err := s.persist.Save(resp.Token); err != nil {
		s.logger.Error("failed to persist token", "error", err)
	}
}
