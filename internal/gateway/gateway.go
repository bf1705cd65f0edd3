package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
}

// Gateway is a stateless client for the hotel backend. Calls are never
// retried; failures go straight back to the caller.
type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) send(ctx context.Context, op, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	log.Printf("[GATEWAY] %s %s request_id=%s", method, path, requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: %s failed: %v", op, err)
		return nil, &NetworkError{Op: op, Err: err}
	}
	return resp, nil
}

func (g *Gateway) sendJSON(ctx context.Context, op, method, path string, payload interface{}) (*http.Response, error) {
	if payload == nil {
		return g.send(ctx, op, method, path, nil, "")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode payload: %w", op, err)
	}
	return g.send(ctx, op, method, path, bytes.NewReader(body), "application/json")
}

func (g *Gateway) sendForm(ctx context.Context, op, path string, form url.Values) (*http.Response, error) {
	return g.send(ctx, op, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

// finish closes the response, turns non-2xx answers into RejectedError and
// decodes 2xx bodies into out when out is not nil.
func finish(op string, resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejected(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  string `json:"status"`
}

func (m messageBody) text() string {
	if m.Error != "" {
		return m.Error
	}
	return m.Message
}

func rejected(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body messageBody
	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(raw, &body); err == nil && body.text() != "" {
		msg = body.text()
	}
	return &RejectedError{Op: op, StatusCode: resp.StatusCode, Message: msg}
}

// message performs a call whose success body is {"message": "..."}.
func message(op string, resp *http.Response) (string, error) {
	var body messageBody
	if err := finish(op, resp, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}
