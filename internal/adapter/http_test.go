package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain host:port", "localhost:8080", "http://localhost:8080", false},
		{"full url", "http://localhost:8080/", "http://localhost:8080", false},
		{"https preserved", "https://auth.example.com", "https://auth.example.com", false},
		{"empty", "", "", true},
		{"scheme only", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdapter_Register_StoresToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.TokenResponse{Message: "user registered successfully", Token: "issued-token"})
	}))

	err := a.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Name: "Alice", Email: "alice@example.com",
		Password: "p", ConfirmPassword: "p",
	})

	require.NoError(t, err)
	assert.Equal(t, "issued-token", a.Token())
}

func TestAdapter_Register_EmailTaken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "email already in use"})
	}))

	err := a.Register(context.Background(), models.RegisterRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, a.Token())
}

func TestAdapter_Login_StoresToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.TokenResponse{Message: "login successful", Token: "session-token"})
	}))

	err := a.Login(context.Background(), models.LoginRequest{Email: "a@e.com", Password: "p"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", a.Token())
}

func TestAdapter_Login_WrongCredentials(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "invalid email or password"})
	}))

	err := a.Login(context.Background(), models.LoginRequest{Email: "a@e.com", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapter_Me_SendsBearerToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		require.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UserResponse{
			User: models.User{Username: "alice", Email: "alice@example.com"},
		})
	}))
	a.SetToken("session-token")

	user, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAdapter_Me_UserGone(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "user does not exist"})
	}))
	a.SetToken("stale-token")

	_, err := a.Me(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdapter_Update_ReturnsUpdatedUser(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/update", r.URL.Path)

		var req models.UpdateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UpdateUserResponse{
			Message: "user updated successfully",
			User:    models.User{Username: req.Username, Name: req.Name, Email: req.Email},
		})
	}))
	a.SetToken("session-token")

	user, err := a.Update(context.Background(), models.UpdateUserRequest{
		Username: "bob", Name: "Bob", Email: "bob@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestAdapter_Delete_ClearsToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/delete", r.URL.Path)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "user deleted successfully"})
	}))
	a.SetToken("session-token")

	require.NoError(t, a.Delete(context.Background()))
	assert.Empty(t, a.Token())
}

func TestAdapter_ServerVersion(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1.2.3"))
	}))

	version, err := a.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestAdapter_UserID(t *testing.T) {
	a, err := NewHTTPServerAdapter("localhost:8080", time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = a.UserID()
	assert.ErrorIs(t, err, ErrNoTokenStored)

	token, err := utils.GenerateJWTToken("iss", 42, time.Hour, "key")
	require.NoError(t, err)
	a.SetToken(token.SignedString)

	id, err := a.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
