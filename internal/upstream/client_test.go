package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Misenpai/prweb/internal/upstream"

	"github.com/stretchr/testify/assert"
)

func TestClient_Get_BearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-SSO-User"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, nil)

	var out struct {
		Success bool `json:"success"`
	}
	err := client.Get(context.Background(), upstream.TokenCredential("tok-123"), "/pi/notifications", &out)

	assert.NoError(t, err)
	assert.True(t, out.Success)
}

func TestClient_Get_SSOHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-SSO-User")
		assert.NotEmpty(t, raw)

		var identity struct {
			Username     string   `json:"username"`
			ProjectCodes []string `json:"projectCodes"`
			Timestamp    int64    `json:"timestamp"`
		}
		assert.NoError(t, json.Unmarshal([]byte(raw), &identity))
		assert.Equal(t, "alice", identity.Username)
		assert.Equal(t, []string{"P1", "P2"}, identity.ProjectCodes)
		assert.NotZero(t, identity.Timestamp)

		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, nil)
	cred := upstream.SSOCredential("alice", []string{"P1", "P2"})

	var out struct {
		Success bool `json:"success"`
	}
	err := client.Get(context.Background(), cred, "/pi/notifications", &out)

	assert.NoError(t, err)
}

func TestClient_PostWithIdentity_MergesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["month"])
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, []any{"P1"}, body["projectCodes"])
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, nil)
	cred := upstream.SSOCredential("alice", []string{"P1"})

	var out struct {
		Success bool `json:"success"`
	}
	err := client.PostWithIdentity(context.Background(), cred, "/pi/submit-data", map[string]any{"month": 3}, &out)

	assert.NoError(t, err)
}

func TestClient_PostWithIdentity_TokenLeavesBodyAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasUsername := body["username"]
		assert.False(t, hasUsername)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, nil)

	err := client.PostWithIdentity(context.Background(), upstream.TokenCredential("tok"), "/pi/submit-data", map[string]any{"month": 3}, nil)

	assert.NoError(t, err)
}

func TestClient_Put(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, nil)

	var out struct {
		Success bool `json:"success"`
	}
	err := client.Put(context.Background(), upstream.TokenCredential("tok"), "/pi/field-trips", map[string]any{}, &out)

	assert.NoError(t, err)
	assert.True(t, out.Success)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := upstream.NewClient(srv.URL, nil)

	err := client.Get(context.Background(), upstream.TokenCredential("tok"), "/pi/notifications", &struct{}{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Error connecting to server")
}

func TestClient_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, nil)

	err := client.Get(context.Background(), upstream.TokenCredential("tok"), "/pi/notifications", &struct{}{})

	assert.Error(t, err)
}
