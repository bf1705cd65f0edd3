package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"smarthotel/internal/domain"
)

type Registration struct {
	Email    string
	Name     string
	Password string
	Phone    string
	Role     domain.Role
}

type ProfileUpdate struct {
	UserID    int
	FullName  string
	Phone     string
	Image     io.Reader
	ImageName string
}

// Login authenticates against the backend. The backend also sets its own
// session cookie, which the client's jar keeps for loyalty calls.
func (g *Gateway) Login(ctx context.Context, email, password string) (*domain.SessionProfile, error) {
	const op = "login"
	resp, err := g.sendJSON(ctx, op, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var profile domain.SessionProfile
	if err := finish(op, resp, &profile); err != nil {
		return nil, err
	}
	if profile.Email == "" {
		profile.Email = email
	}
	return &profile, nil
}

func (g *Gateway) Register(ctx context.Context, reg Registration) (string, error) {
	const op = "register"
	form := url.Values{}
	form.Set("email", reg.Email)
	form.Set("name", reg.Name)
	form.Set("password", reg.Password)
	form.Set("phone", reg.Phone)
	form.Set("role", string(reg.Role))
	resp, err := g.sendForm(ctx, op, "/register", form)
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	const op = "request password reset"
	resp, err := g.sendForm(ctx, op, "/password_reset", url.Values{"email": {email}})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) VerifyResetOTP(ctx context.Context, otp string) (string, error) {
	const op = "verify reset otp"
	resp, err := g.sendForm(ctx, op, "/password_reset_OTP", url.Values{"value": {otp}})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) UpdatePassword(ctx context.Context, password string) (string, error) {
	const op = "update password"
	resp, err := g.sendForm(ctx, op, "/update_password", url.Values{"password": {password}})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

// UpdateProfile uploads the edited profile and returns the profile the
// backend now holds.
func (g *Gateway) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.SessionProfile, error) {
	const op = "update profile"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"Id", strconv.Itoa(update.UserID)},
		{"fullName", update.FullName},
		{"phone", update.Phone},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, fmt.Errorf("%s: write field %s: %w", op, field[0], err)
		}
	}
	if update.Image != nil {
		part, err := writer.CreateFormFile("profileImage", update.ImageName)
		if err != nil {
			return nil, fmt.Errorf("%s: attach image: %w", op, err)
		}
		if _, err := io.Copy(part, update.Image); err != nil {
			return nil, fmt.Errorf("%s: attach image: %w", op, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: close form: %w", op, err)
	}

	resp, err := g.send(ctx, op, http.MethodPost, "/api/update-profile", &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var body struct {
		User domain.SessionProfile `json:"user"`
	}
	if err := finish(op, resp, &body); err != nil {
		return nil, err
	}
	return &body.User, nil
}
