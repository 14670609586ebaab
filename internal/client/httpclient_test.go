package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imgurshot/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "test-client-id", "test-client-secret", 5*time.Second)
}

func TestExchangeCode_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "pin123", r.PostForm.Get("code"))
		assert.Equal(t, "test-client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","account_username":"alice"}`))
	})

	grant, err := c.ExchangeCode(context.Background(), "pin123")
	require.NoError(t, err)
	assert.Equal(t, "at", grant.AccessToken)
	assert.Equal(t, "rt", grant.RefreshToken)
	assert.Equal(t, "alice", grant.AccountUsername)
}

func TestExchangeCode_MissingRefreshToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"at"}`))
	})

	_, err := c.ExchangeCode(context.Background(), "pin123")
	require.ErrorIs(t, err, ErrNoRefreshToken)
}

func TestRefreshAccessToken_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt", r.PostForm.Get("refresh_token"))
		_, _ = w.Write([]byte(`{"access_token":"at2"}`))
	})

	grant, err := c.RefreshAccessToken(context.Background(), "rt")
	require.NoError(t, err)
	assert.Equal(t, "at2", grant.AccessToken)
	assert.Empty(t, grant.RefreshToken)
}

func TestRequestToken_Non2xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	})

	_, err := c.RefreshAccessToken(context.Background(), "rt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestRequestToken_MissingAccessToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.RefreshAccessToken(context.Background(), "rt")
	require.ErrorIs(t, err, ErrNoAccessToken)
}

func TestUploadImage_SuccessAndMultipartLayout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/3/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, ".png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)

		assert.Equal(t, "Screen Shot 2026-08-25", r.FormValue("title"))
		assert.Equal(t, common.DefaultUploadDescription, r.FormValue("description"))
		assert.Equal(t, "Client-ID test-client-id", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"data":{"link":"http://i.imgur.com/x.png"},"success":true,"status":200}`))
	})

	link, err := c.UploadImage(context.Background(),
		[]byte{1, 2, 3}, "/tmp/Screen Shot 2026-08-25.png", "", "")
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/x.png", link)
}

func TestUploadImage_AuthenticatedHeaderAndDescription(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "Client-Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "my shot", r.FormValue("description"))
		_, _ = w.Write([]byte(`{"data":{"link":"https://i.imgur.com/y.png"},"success":true,"status":200}`))
	})

	link, err := c.UploadImage(context.Background(),
		[]byte{1}, "/tmp/a.png", "my shot", "tok")
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/y.png", link)
}

func TestUploadImage_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"data":{"error":"blocked"},"success":false,"status":403}`))
	})

	_, err := c.UploadImage(context.Background(), []byte{1}, "/tmp/a.png", "", "")
	require.Error(t, err)
	assert.Equal(t, `Imgur responded with the following error: "blocked"`, err.Error())
}

func TestUploadImage_NonJSONResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := c.UploadImage(context.Background(), []byte{1}, "/tmp/a.png", "", "")
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestUploadImage_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the request fails

	c := NewHTTPClient(srv.URL, "id", "secret", time.Second)
	_, err := c.UploadImage(context.Background(), []byte{1}, "/tmp/a.png", "", "")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestForceHTTPS(t *testing.T) {
	assert.Equal(t, "https://i.imgur.com/x.png", forceHTTPS("http://i.imgur.com/x.png"))
	assert.Equal(t, "https://i.imgur.com/x.png", forceHTTPS("https://i.imgur.com/x.png"))
	// only the scheme prefix is rewritten
	assert.Equal(t, "https://example.com/http://tail", forceHTTPS("http://example.com/http://tail"))
}

func TestFileTypeAllowed(t *testing.T) {
	for _, ext := range AllowedFileTypes {
		assert.True(t, FileTypeAllowed(ext), ext)
	}
	assert.False(t, FileTypeAllowed("exe"))
	assert.False(t, FileTypeAllowed(""))
}

func TestExchangeCode_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, "id", "secret", time.Second)
	_, err := c.ExchangeCode(context.Background(), "pin")
	require.True(t, errors.Is(err, ErrUnavailable))
}
