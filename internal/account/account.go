package account

import (
	"context"
	"errors"
	"io"
	"strings"

	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	"smarthotel/internal/session"
	"smarthotel/internal/validation"
)

var ErrWrongRole = errors.New("this account cannot use this device")

type Gateway interface {
	Login(ctx context.Context, email, password string) (*domain.SessionProfile, error)
	Register(ctx context.Context, reg gateway.Registration) (string, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	VerifyResetOTP(ctx context.Context, otp string) (string, error)
	UpdatePassword(ctx context.Context, password string) (string, error)
	UpdateProfile(ctx context.Context, update gateway.ProfileUpdate) (*domain.SessionProfile, error)
}

var _ Gateway = (*gateway.Gateway)(nil)

type Service struct {
	gateway Gateway
	session *session.Session
	roles   map[domain.Role]bool
}

// NewService builds the account flows. When roles is not empty, logins
// with any other role are refused and nothing is stored.
func NewService(gw Gateway, sess *session.Session, roles ...domain.Role) *Service {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return &Service{gateway: gw, session: sess, roles: allowed}
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.SessionProfile, error) {
	violations := validation.ValidateField(validation.FieldEmail, email)
	if password == "" {
		violations = append(violations, "Password is required")
	}
	if err := validation.Check(violations); err != nil {
		return nil, err
	}

	profile, err := s.gateway.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	if len(s.roles) > 0 && !s.roles[profile.Role] {
		return nil, ErrWrongRole
	}
	if err := s.session.SaveProfile(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *Service) Profile(ctx context.Context) (*domain.SessionProfile, error) {
	return s.session.Profile(ctx)
}

func (s *Service) Register(ctx context.Context, form validation.RegistrationForm) (string, error) {
	if err := validation.Check(validation.ValidateRegistration(form)); err != nil {
		return "", err
	}
	return s.gateway.Register(ctx, gateway.Registration{
		Email:    strings.TrimSpace(form.Email),
		Name:     strings.TrimSpace(form.Username),
		Password: form.Password,
		Phone:    strings.TrimSpace(form.Phone),
		Role:     domain.Role(strings.TrimSpace(form.Role)),
	})
}

func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if err := validation.Check(validation.ValidateField(validation.FieldEmail, email)); err != nil {
		return "", err
	}
	return s.gateway.RequestPasswordReset(ctx, strings.TrimSpace(email))
}

func (s *Service) VerifyResetOTP(ctx context.Context, otp string) (string, error) {
	if err := validation.Check(validation.ValidateField(validation.FieldOTP, otp)); err != nil {
		return "", err
	}
	return s.gateway.VerifyResetOTP(ctx, strings.TrimSpace(otp))
}

func (s *Service) UpdatePassword(ctx context.Context, password, confirm string) (string, error) {
	if err := validation.Check(validation.ValidatePasswordPair(password, confirm, validation.ResetPasswordMin)); err != nil {
		return "", err
	}
	return s.gateway.UpdatePassword(ctx, password)
}

// UpdateProfile sends the edited profile and, on success, replaces the
// stored profile with what the backend returned.
func (s *Service) UpdateProfile(ctx context.Context, form validation.ProfileForm, image io.Reader, imageName string) (*domain.SessionProfile, error) {
	current, err := s.session.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if err := validation.Check(validation.ValidateProfile(form)); err != nil {
		return nil, err
	}

	updated, err := s.gateway.UpdateProfile(ctx, gateway.ProfileUpdate{
		UserID:    current.UserID,
		FullName:  strings.TrimSpace(form.FullName),
		Phone:     strings.TrimSpace(form.Phone),
		Image:     image,
		ImageName: imageName,
	})
	if err != nil {
		return nil, err
	}

	profile := *updated
	if profile.UserID == 0 {
		profile.UserID = current.UserID
	}
	if profile.Role == "" {
		profile.Role = current.Role
	}
	if profile.Email == "" {
		profile.Email = current.Email
	}
	if err := s.session.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
