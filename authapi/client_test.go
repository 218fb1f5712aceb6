package authapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradesage/tradesage-client/authapi"
	ierrors "github.com/tradesage/tradesage-client/internal/errors"
)

const testToken = "token-abc"

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, authapi.EndpointHealth, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	require.NoError(t, client.Health(context.Background()))
}

func TestHealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := authapi.NewClient(srv.URL)
	err := client.Health(context.Background())
	require.ErrorIs(t, err, ierrors.ErrNetwork)
}

func TestHealthTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL, authapi.WithTimeouts(time.Second, 20*time.Millisecond))
	err := client.Health(context.Background())
	require.ErrorIs(t, err, ierrors.ErrTimeout, "a timed-out probe is a timeout, not a generic network error")
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, authapi.EndpointLogin, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "jane.doe@example.com", body["email"])
		require.Equal(t, "Password1", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{
				"id":         "user-1",
				"email":      "jane.doe@example.com",
				"first_name": "Jane",
				"last_name":  "Doe",
				"user_type":  "USER",
			},
			"token":         testToken,
			"refresh_token": "refresh-abc",
		})
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	resp, err := client.Login(context.Background(), "jane.doe@example.com", "Password1")
	require.NoError(t, err)
	require.Equal(t, "user-1", resp.User.ID)
	require.Equal(t, authapi.UserTypeUser, resp.User.UserType)
	require.Equal(t, testToken, resp.Token)
	require.Equal(t, "refresh-abc", resp.RefreshToken)
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid email or password"})
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "jane.doe@example.com", "wrong")
	require.ErrorIs(t, err, ierrors.ErrInvalidCredentials)

	var apiErr *authapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid email or password", apiErr.Message)
}

func TestRegisterProbesBeforePosting(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.EndpointRegister, r.URL.Path)
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	require.NoError(t, client.Register(context.Background(), registration()))
	require.Equal(t, []string{http.MethodOptions, http.MethodPost}, methods)
}

func TestRegisterConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	err := client.Register(context.Background(), registration())
	require.ErrorIs(t, err, ierrors.ErrConflict)

	var apiErr *authapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "user already exists with this email", apiErr.Message)
}

func TestRegisterEndpointUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		t.Error("payload must not be submitted when the probe fails")
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	err := client.Register(context.Background(), registration())
	require.ErrorIs(t, err, ierrors.ErrFeatureUnavailable)
}

func TestVerifySendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.EndpointVerify, r.URL.Path)
		require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	require.NoError(t, client.Verify(context.Background(), testToken))
}

func TestVerifyRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	err := client.Verify(context.Background(), testToken)
	require.ErrorIs(t, err, ierrors.ErrUnauthorized)
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.EndpointRefresh, r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "refresh-abc", body["refresh_token"])
		json.NewEncoder(w).Encode(map[string]string{"token": "token-new"})
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	token, err := client.Refresh(context.Background(), "refresh-abc")
	require.NoError(t, err)
	require.Equal(t, "token-new", token)
}

func TestRefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	_, err := client.Refresh(context.Background(), "refresh-abc")
	require.ErrorIs(t, err, ierrors.ErrRefreshFailed)
}

func TestLogoutSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authapi.EndpointLogout, r.URL.Path)
		require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	require.NoError(t, client.Logout(context.Background(), testToken))
}

func registration() authapi.RegistrationData {
	return authapi.RegistrationData{
		Email:     "new.user@example.com",
		Password:  "Password1",
		FirstName: "New",
		LastName:  "User",
		UserType:  authapi.UserTypeUser,
	}
}
