// Package api is the HTTP gateway to the dashboard backend services. It
// owns the session token: every authenticated call reads it from an
// in-memory cache backed by a TokenStore, and login/logout/401 responses
// keep the two in sync.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/homeboard/internal/client/config"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/client/upload"
	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/logging"
)

// Client talks to the auth, files, profile, user-data and contact services.
// Safe for concurrent use.
type Client struct {
	http    *http.Client
	cfg     *config.Config
	tokens  TokenStore
	prepare PrepareChain
	logger  logging.Logger
	uploads *upload.Pipeline

	mu    sync.RWMutex
	token string
}

// New builds a Client and primes the token cache from the store, so a
// session saved by a previous run survives a restart.
func New(ctx context.Context, cfg *config.Config, tokens TokenStore, logger logging.Logger) (*Client, error) {
	hc := &http.Client{Timeout: cfg.RequestTimeout}
	c := &Client{
		http:    hc,
		cfg:     cfg,
		tokens:  tokens,
		logger:  logger,
		prepare: PrepareChain{WithUserAgent("homeboard-cli")},
		uploads: upload.NewPipeline(hc, cfg.FilesEndpoint),
	}
	token, err := tokens.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session token: %w", err)
	}
	c.token = token
	return c, nil
}

// Token returns the cached session token, "" when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if token == "" {
		return c.tokens.Clear(ctx)
	}
	return c.tokens.Save(ctx, token)
}

type credentials struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// Register creates an account. The server logs the new user in
// immediately, so the returned token is stored like a login.
func (c *Client) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	var resp models.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, c.cfg.AuthEndpoint+"?action=register", "",
		credentials{Email: email, Username: username, Password: password}, &resp, "registration failed")
	if err != nil {
		return nil, err
	}
	if err := c.setToken(ctx, resp.Token); err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "registered", "email", email)
	return &resp.User, nil
}

// Login exchanges credentials for a session token and stores it,
// replacing whatever token was cached before.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, c.cfg.AuthEndpoint+"?action=login", "",
		credentials{Email: email, Password: password}, &resp, "login failed")
	if err != nil {
		return nil, err
	}
	if err := c.setToken(ctx, resp.Token); err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "logged in", "email", email)
	return &resp.User, nil
}

// VerifySession checks the cached token against the auth service. The
// token is cleared only when the server rejects it; a transport failure
// keeps the session so a flaky network cannot sign the user out.
func (c *Client) VerifySession(ctx context.Context) (*models.User, error) {
	if c.Token() == "" {
		return nil, common.ErrUnauthenticated
	}
	var user models.User
	err := c.doJSON(ctx, http.MethodGet, c.cfg.AuthEndpoint, common.AuthTokenHeaderName,
		nil, &user, "session verification failed")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			if clearErr := c.setToken(ctx, ""); clearErr != nil {
				c.logger.Warn(ctx, "failed to clear rejected token", "error", clearErr)
			}
			return nil, common.ErrUnauthenticated
		}
		return nil, err
	}
	return &user, nil
}

// Logout discards the session locally. The backend keeps no server-side
// session state to invalidate.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.setToken(ctx, ""); err != nil {
		return err
	}
	c.logger.Info(ctx, "logged out")
	return nil
}

// ListFiles returns every file record belonging to the session user.
func (c *Client) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	var files []models.FileRecord
	err := c.doJSON(ctx, http.MethodGet, c.cfg.FilesEndpoint, common.AuthTokenHeaderName,
		nil, &files, "failed to list files")
	if err != nil {
		return nil, err
	}
	return files, nil
}

// GetFile fetches one record by id.
func (c *Client) GetFile(ctx context.Context, id int64) (*models.FileRecord, error) {
	var file models.FileRecord
	url := fmt.Sprintf("%s?id=%s", c.cfg.FilesEndpoint, strconv.FormatInt(id, 10))
	err := c.doJSON(ctx, http.MethodGet, url, common.AuthTokenHeaderName,
		nil, &file, "failed to fetch file")
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// UploadFile sends a file through the upload pipeline. onProgress may be
// nil.
func (c *Client) UploadFile(ctx context.Context, in upload.Input, onProgress upload.ProgressFunc) (*models.FileRecord, error) {
	record, err := c.uploads.Upload(ctx, in, c.Token(), onProgress)
	if err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "file uploaded", "filename", record.Filename, "size", record.FileSize)
	return record, nil
}

// DeleteFile removes a file record and its stored content.
func (c *Client) DeleteFile(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s?file_id=%s", c.cfg.FilesEndpoint, strconv.FormatInt(id, 10))
	return c.doJSON(ctx, http.MethodDelete, url, common.AuthTokenHeaderName,
		nil, nil, "failed to delete file")
}

// GetProfile fetches the session user's profile. The profile service
// reads the token from its own header.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := c.doJSON(ctx, http.MethodGet, c.cfg.ProfileEndpoint, common.SessionTokenHeaderName,
		nil, &profile, "failed to load profile")
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and returns the resulting
// profile.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	err := c.doJSON(ctx, http.MethodPut, c.cfg.ProfileEndpoint, common.SessionTokenHeaderName,
		update, &profile, "failed to update profile")
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteAccount removes the account server-side and discards the session
// locally.
func (c *Client) DeleteAccount(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodDelete, c.cfg.ProfileEndpoint, common.SessionTokenHeaderName,
		nil, nil, "failed to delete account")
	if err != nil {
		return err
	}
	return c.setToken(ctx, "")
}

// GetUserData fetches the server-side copy of the organization data.
func (c *Client) GetUserData(ctx context.Context) (*models.UserData, error) {
	var data models.UserData
	err := c.doJSON(ctx, http.MethodGet, c.cfg.UserDataEndpoint, common.AuthTokenHeaderName,
		nil, &data, "failed to load user data")
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// SaveUserData replaces the server-side copy with a full snapshot.
func (c *Client) SaveUserData(ctx context.Context, data models.UserData) error {
	return c.doJSON(ctx, http.MethodPost, c.cfg.UserDataEndpoint, common.AuthTokenHeaderName,
		data, nil, "failed to save user data")
}

type contactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendContactMessage delivers a support message. No session required.
func (c *Client) SendContactMessage(ctx context.Context, name, email, subject, message string) error {
	return c.doJSON(ctx, http.MethodPost, c.cfg.ContactEndpoint, "",
		contactMessage{Name: name, Email: email, Subject: subject, Message: message}, nil, "failed to send message")
}

// doJSON performs one JSON round trip. tokenHeader names the header the
// session token travels in, or "" for unauthenticated calls; when a
// header is required and no token is cached the call fails before
// touching the network. out may be nil when the response body does not
// matter.
func (c *Client) doJSON(ctx context.Context, method, url, tokenHeader string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tokenHeader != "" {
		token := c.Token()
		if token == "" {
			return common.ErrUnauthenticated
		}
		req.Header.Set(tokenHeader, token)
	}
	if err := c.prepare.Apply(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "url", url, "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body, fallback)}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Status: resp.StatusCode, Err: err}
	}
	return nil
}

// errorMessage extracts the server's {"error": "..."} message, falling
// back to the caller's description when the body is not in that shape.
func errorMessage(r io.Reader, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fallback
}
