package account

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"smarthotel/internal/respond"
	"smarthotel/internal/validation"

	"github.com/gorilla/mux"
)

const maxProfileUpload = 5 << 20

type Handler struct {
	Accounts *Service
}

func NewHandler(accounts *Service) *Handler {
	return &Handler{Accounts: accounts}
}

// RegisterSessionRoutes mounts login, logout and profile reads.
func (h *Handler) RegisterSessionRoutes(r *mux.Router) {
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
}

// RegisterRoutes mounts every account flow.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	h.RegisterSessionRoutes(r)
	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/password/reset", h.requestReset).Methods("POST")
	r.HandleFunc("/api/password/otp", h.verifyOTP).Methods("POST")
	r.HandleFunc("/api/password/update", h.updatePassword).Methods("POST")
	r.HandleFunc("/api/profile", h.updateProfile).Methods("PUT")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	profile, err := h.Accounts.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrWrongRole) {
			respond.Fail(w, http.StatusForbidden, err.Error())
			return
		}
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Accounts.Logout(r.Context()); err != nil {
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusOK, "Logged out")
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Accounts.Profile(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	message, err := h.Accounts.Register(r.Context(), validation.RegistrationForm{
		Email:    payload.Email,
		Username: payload.Name,
		Password: payload.Password,
		Role:     payload.Role,
		Phone:    payload.Phone,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusCreated, message)
}

func (h *Handler) requestReset(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	h.reply(w, func() (string, error) {
		return h.Accounts.RequestPasswordReset(r.Context(), payload.Email)
	})
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OTP string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	h.reply(w, func() (string, error) {
		return h.Accounts.VerifyResetOTP(r.Context(), payload.OTP)
	})
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Password string `json:"password"`
		Confirm  string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	h.reply(w, func() (string, error) {
		return h.Accounts.UpdatePassword(r.Context(), payload.Password, payload.Confirm)
	})
}

// updateProfile takes multipart form data: fullName, phone and an optional
// profileImage file.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxProfileUpload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	var (
		image     io.Reader
		imageName string
	)
	if file, header, err := r.FormFile("profileImage"); err == nil {
		defer file.Close()
		image, imageName = file, header.Filename
	}

	profile, err := h.Accounts.UpdateProfile(r.Context(), validation.ProfileForm{
		FullName: r.FormValue("fullName"),
		Phone:    r.FormValue("phone"),
	}, image, imageName)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

func (h *Handler) reply(w http.ResponseWriter, call func() (string, error)) {
	message, err := call()
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusOK, message)
}
