package services

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"warung/internal/models"
	"warung/internal/repositories"
)

// SessionState is the auth manager's lifecycle state. It starts at
// StateLoading and resolves after Initialize has read the persisted session
// once.
type SessionState int

const (
	StateLoading SessionState = iota
	StateAnonymous
	StateAuthenticated
)

// AuthService implements registration, login, logout and profile updates on
// top of the users list, and keeps the in-memory current-user mirror synced
// with the persisted `currentUser` snapshot.
//
// The snapshot is a cache, not the source of truth: if a user record is
// edited through another path, the session diverges until the next login or
// profile update. That inconsistency is inherited behavior and is not
// reconciled here.
type AuthService struct {
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	validate *validator.Validate

	mu      sync.RWMutex
	current *models.User
	state   SessionState
}

// NewAuthService creates a new AuthService. Call Initialize before using it.
func NewAuthService(users repositories.UserRepository, sessions repositories.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		validate: newValidator(),
		state:    StateLoading,
	}
}

// Initialize reads the persisted session once and resolves the state to
// anonymous or authenticated. A storage failure resolves to anonymous rather
// than leaving the service stuck in loading.
func (s *AuthService) Initialize(ctx context.Context) error {
	u, err := s.sessions.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.current = nil
		s.state = StateAnonymous
		return err
	}
	s.current = u
	if u != nil {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
	return nil
}

// State returns the current session state.
func (s *AuthService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentUser returns a copy of the in-memory session mirror, or nil when
// anonymous.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Register validates the input, enforces case-insensitive username
// uniqueness, and appends the new user. Unless autoLogin is false it also
// writes the session snapshot and authenticates the mirror.
func (s *AuthService) Register(ctx context.Context, input models.User, autoLogin bool) (models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	if input.Email != "" {
		input.Email = strings.TrimSpace(input.Email)
	}
	if input.Phone != "" {
		input.Phone = strings.TrimSpace(input.Phone)
	}

	if err := s.validate.Struct(input); err != nil {
		return models.User{}, firstValidationError(err)
	}

	existing, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrDuplicateUsername
	}

	if err := s.users.Create(ctx, input); err != nil {
		return models.User{}, err
	}

	if autoLogin {
		if err := s.sessions.Save(ctx, input); err != nil {
			return models.User{}, err
		}
		s.setCurrent(&input)
	}
	return input, nil
}

// Login matches the username case-insensitively and the password exactly.
// The returned error is the same whether the user is unknown or the password
// is wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	found, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if found == nil || found.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.sessions.Save(ctx, *found); err != nil {
		return models.User{}, err
	}
	s.setCurrent(found)
	return *found, nil
}

// Logout clears the session. Logging out while anonymous is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.setCurrent(nil)
	return nil
}

// UpdateProfile merges the given fields into the current user's record in
// the users list and into the session snapshot. The password is replaced
// only when a non-empty value is provided. Update inputs are not re-run
// through registration validation, matching the original behavior.
func (s *AuthService) UpdateProfile(ctx context.Context, updates models.ProfileUpdate) (models.User, error) {
	current := s.CurrentUser()
	if current == nil {
		return models.User{}, ErrNotAuthenticated
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	idx := -1
	for i := range users {
		if users[i].Username == current.Username {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.User{}, ErrUserNotFound
	}

	updated := users[idx]
	if updates.Password != nil && *updates.Password != "" {
		updated.Password = *updates.Password
	}
	if updates.FullName != nil {
		updated.FullName = *updates.FullName
	}
	if updates.Email != nil {
		updated.Email = *updates.Email
	}
	if updates.Phone != nil {
		updated.Phone = *updates.Phone
	}
	if updates.AvatarURI != nil {
		updated.AvatarURI = *updates.AvatarURI
	}
	if updates.Role != nil {
		updated.Role = *updates.Role
	}

	if err := s.users.Update(ctx, updated); err != nil {
		return models.User{}, err
	}
	if err := s.sessions.Save(ctx, updated); err != nil {
		return models.User{}, err
	}
	s.setCurrent(&updated)
	return updated, nil
}

func (s *AuthService) setCurrent(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
	if u != nil {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
}
