package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"smarthotel/internal/domain"
)

const (
	KeyUserID    = "user_id"
	KeyRole      = "role"
	KeyName      = "name"
	KeyEmail     = "email"
	KeyPhone     = "phone"
	KeyAvatarRef = "Image_URL"

	FlagOrderPlaced   = "orderPlaced"
	FlagOrderAccepted = "orderAcceptedMessage"
)

var profileKeys = []string{KeyUserID, KeyRole, KeyName, KeyEmail, KeyPhone, KeyAvatarRef}

var ErrNoSession = errors.New("no active session, please log in")

// Session is the typed view over a device Store. Components receive it at
// construction instead of reading raw keys.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// SaveProfile replaces the stored profile as a whole.
func (s *Session) SaveProfile(ctx context.Context, profile domain.SessionProfile) error {
	if err := s.store.Delete(ctx, profileKeys...); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return s.store.SetMany(ctx, map[string]string{
		KeyUserID:    strconv.Itoa(profile.UserID),
		KeyRole:      string(profile.Role),
		KeyName:      profile.Name,
		KeyEmail:     profile.Email,
		KeyPhone:     profile.Phone,
		KeyAvatarRef: profile.AvatarRef,
	})
}

func (s *Session) Profile(ctx context.Context) (*domain.SessionProfile, error) {
	values, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseUserID(values[KeyUserID])
	if err != nil {
		return nil, err
	}
	return &domain.SessionProfile{
		UserID:    userID,
		Role:      domain.Role(values[KeyRole]),
		Name:      values[KeyName],
		Email:     values[KeyEmail],
		Phone:     values[KeyPhone],
		AvatarRef: values[KeyAvatarRef],
	}, nil
}

func (s *Session) UserID(ctx context.Context) (int, error) {
	raw, _, err := s.store.Get(ctx, KeyUserID)
	if err != nil {
		return 0, err
	}
	return parseUserID(raw)
}

func (s *Session) Role(ctx context.Context) (domain.Role, error) {
	if _, err := s.UserID(ctx); err != nil {
		return "", err
	}
	raw, _, err := s.store.Get(ctx, KeyRole)
	if err != nil {
		return "", err
	}
	return domain.Role(raw), nil
}

// Clear removes the profile and any pending flags.
func (s *Session) Clear(ctx context.Context) error {
	keys := append([]string{FlagOrderPlaced, FlagOrderAccepted}, profileKeys...)
	return s.store.Delete(ctx, keys...)
}

func (s *Session) SetFlag(ctx context.Context, flag, value string) error {
	return s.store.Set(ctx, flag, value)
}

// TakeFlag returns the flag and deletes it, so each flag is shown once.
func (s *Session) TakeFlag(ctx context.Context, flag string) (string, bool, error) {
	return s.store.Take(ctx, flag)
}

func parseUserID(raw string) (int, error) {
	if raw == "" {
		return 0, ErrNoSession
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrNoSession
	}
	return id, nil
}
