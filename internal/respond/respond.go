package respond

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"smarthotel/internal/gateway"
	"smarthotel/internal/session"
	"smarthotel/internal/validation"
)

const networkMessage = "Network error. Please check your connection and try again."

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: writing response: %v", err)
	}
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Error writes err using the status that matches its kind. Errors not known
// here are reported as 500 unless mapped by the caller first.
func Error(w http.ResponseWriter, err error) {
	var (
		verr     *validation.Error
		rejected *gateway.RejectedError
		netErr   *gateway.NetworkError
	)
	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":      verr.Violations[0],
			"violations": verr.Violations,
		})
	case errors.Is(err, session.ErrNoSession):
		Fail(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &rejected):
		status := rejected.StatusCode
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		Fail(w, status, rejected.Message)
	case errors.As(err, &netErr):
		Fail(w, http.StatusBadGateway, networkMessage)
	default:
		log.Printf("ERROR: %v", err)
		Fail(w, http.StatusInternalServerError, err.Error())
	}
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

func Health(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": service,
		})
	}
}
