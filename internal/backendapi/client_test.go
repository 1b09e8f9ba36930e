package backendapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchATMsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/atms", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"atms":[],"total_count":0}`))
	}))
	defer ts.Close()

	c := New(ts.URL, 5*time.Second)
	body, err := c.FetchATMs(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"atms":[],"total_count":0}`, string(body))
}

func TestFetchATMsNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := New(ts.URL, 5*time.Second)
	_, err := c.FetchATMs(context.Background())
	assert.Error(t, err)
}

func TestFetchATMsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // no listener left

	c := New(ts.URL, time.Second)
	_, err := c.FetchATMs(context.Background())
	assert.Error(t, err)
}

func TestFetchATMsSingleAttempt(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second)
	_, err := c.FetchATMs(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("http://127.0.0.1:8000/", 0)
	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL())
}
