package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/imgurshot/internal/common"
	"github.com/dmitrijs2005/imgurshot/internal/filex"
)

const (
	tokenPath  = "/oauth2/token"
	uploadPath = "/3/upload"
)

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	hc           *http.Client
}

// NewHTTPClient builds a client for the given API base URL and application
// credentials. timeout bounds every request; a hung call surfaces as an
// error instead of stalling its callback forever.
func NewHTTPClient(baseURL, clientID, clientSecret string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		hc:           &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	AccountUsername string `json:"account_username"`
}

type uploadResponse struct {
	Data struct {
		Link  string `json:"link"`
		Error string `json:"error"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

func (c *HTTPClient) ExchangeCode(ctx context.Context, code string) (*TokenGrant, error) {
	grant, err := c.requestToken(ctx, url.Values{
		"grant_type": {"authorization_code"},
		"code":       {code},
	})
	if err != nil {
		return nil, err
	}
	// The first exchange must yield a refresh token, otherwise the login
	// cannot be persisted.
	if grant.RefreshToken == "" {
		return nil, ErrNoRefreshToken
	}
	return grant, nil
}

func (c *HTTPClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrant, error) {
	return c.requestToken(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	})
}

func (c *HTTPClient) requestToken(ctx context.Context, form url.Values) (*TokenGrant, error) {
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("token endpoint returned %s", resp.Status)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if tr.AccessToken == "" {
		return nil, ErrNoAccessToken
	}

	return &TokenGrant{
		AccessToken:     tr.AccessToken,
		RefreshToken:    tr.RefreshToken,
		AccountUsername: tr.AccountUsername,
	}, nil
}

// UploadImage posts the image as multipart/form-data. Field layout follows
// the service contract: "image" carries the binary with filename
// "." + source extension, "title" carries the base file name without
// extension, "description" carries the request description or the default.
func (c *HTTPClient) UploadImage(ctx context.Context, image []byte, sourcePath string, description string, accessToken string) (string, error) {
	if description == "" {
		description = common.DefaultUploadDescription
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("image", "."+filex.Ext(sourcePath))
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(image); err != nil {
		return "", err
	}
	if err := mw.WriteField("title", filex.BaseNameWithoutExt(sourcePath)); err != nil {
		return "", err
	}
	if err := mw.WriteField("description", description); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if accessToken != "" {
		req.Header.Set("Authorization", "Client-Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Client-ID "+c.clientID)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	var ur uploadResponse
	if err := json.Unmarshal(data, &ur); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	if ur.Data.Error != "" {
		return "", fmt.Errorf("Imgur responded with the following error: %q", ur.Data.Error)
	}
	if ur.Data.Link == "" {
		return "", fmt.Errorf("upload failed: %s", resp.Status)
	}

	return forceHTTPS(ur.Data.Link), nil
}

// forceHTTPS rewrites only the scheme prefix; the rest of the link is
// returned unchanged.
func forceHTTPS(link string) string {
	if rest, ok := strings.CutPrefix(link, "http://"); ok {
		return "https://" + rest
	}
	return link
}
