// Package client implements the HTTP API client and the locally
// persisted session used by the terminal frontend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dfalcao/linkbio/internal/domain"
	"github.com/dfalcao/linkbio/internal/service"
)

// APIError is a decoded error envelope from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsAuthError reports whether the error means the session is missing,
// invalid or expired and the user has to log in again.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

type API struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches (or, with "", detaches) the bearer token used on
// every subsequent request.
func (a *API) SetToken(token string) {
	a.token = token
}

func (a *API) Register(ctx context.Context, email, password string) (*domain.User, error) {
	var user domain.User
	err := a.do(ctx, http.MethodPost, "/api/v1/auth/register",
		service.RegisterInput{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *API) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	var resp service.LoginResponse
	err := a.do(ctx, http.MethodPost, "/api/v1/auth/login",
		service.LoginInput{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *API) GetProfile(ctx context.Context, userID int64) (*domain.ProfilePage, error) {
	var page domain.ProfilePage
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/profile", userID), nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *API) PutProfile(ctx context.Context, userID int64, input service.UpsertProfileInput) (*domain.Profile, error) {
	var profile domain.Profile
	err := a.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/users/%d/profile", userID), input, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// PublicPage fetches the shareable page of any user, no session needed.
func (a *API) PublicPage(ctx context.Context, userID int64) (*domain.ProfilePage, error) {
	var page domain.ProfilePage
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/page", userID), nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *API) ListLinks(ctx context.Context, userID int64) ([]domain.Link, error) {
	var links []domain.Link
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/links", userID), nil, &links)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (a *API) CreateLink(ctx context.Context, userID int64, input service.LinkInput) (*domain.Link, error) {
	var link domain.Link
	err := a.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/links", userID), input, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (a *API) UpdateLink(ctx context.Context, userID, linkID int64, input service.LinkInput) (*domain.Link, error) {
	var link domain.Link
	err := a.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/users/%d/links/%d", userID, linkID), input, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (a *API) DeleteLink(ctx context.Context, userID, linkID int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d/links/%d", userID, linkID), nil, nil)
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Fields  map[string]string `json:"fields"`
		} `json:"error"`
	}

	apiErr := &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if len(envelope.Error.Fields) > 0 {
			for field, msg := range envelope.Error.Fields {
				apiErr.Message += fmt.Sprintf("; %s: %s", field, msg)
			}
		}
	}
	return apiErr
}
