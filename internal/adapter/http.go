package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// UserID implements [ServerAdapter]. It decodes the subject claim of the
// stored token without verifying the signature.
func (h *httpServerAdapter) UserID() (int64, error) {
	if h.token == "" {
		return 0, ErrNoTokenStored
	}

	return utils.ParseUserIDFromJWT(h.token)
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /register. On success the bearer token from the response body is
// stored via SetToken. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken(result.Token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login.
// On success the bearer token from the response body is stored via SetToken.
// Returns [ErrUnauthorized] (wrapped) when the server rejects the credentials.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken(result.Token)
	return nil
}

// Me implements [ServerAdapter]. It GETs the authenticated profile from
// GET /me. Requires a valid bearer token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Update implements [ServerAdapter]. It PUTs the new profile fields to
// PUT /update and returns the updated record. Requires a valid bearer token.
func (h *httpServerAdapter) Update(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	var result models.UpdateUserResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Put("/update")
	if err != nil {
		return models.User{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Delete implements [ServerAdapter]. It sends DELETE /delete and clears the
// stored token on success. Requires a valid bearer token.
func (h *httpServerAdapter) Delete(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/delete")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	// the account is gone, so is the session
	h.SetToken("")
	return nil
}

// ServerVersion implements [ServerAdapter]. It GETs GET /api/version and
// returns the plain-text version string.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// authedRequest returns a request builder with the stored bearer token
// attached.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}
