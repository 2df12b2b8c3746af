// Package client is the programmatic surface the single-page UI consumes:
// typed calls for every API endpoint, plus the locally cached session the
// page router reads at startup.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// ErrNotFound is returned when the server answers 404 for the requested key.
var ErrNotFound = errors.New("not found")

// Client calls the gift-registry API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, http.DefaultClient)
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, body models.RegisterRequestBody) (*models.UserDB, error) {
	var user models.UserDB
	if err := c.do(ctx, http.MethodPost, "/v1/users/add", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login returns the user matching the email and password pair.
func (c *Client) Login(ctx context.Context, email, password string) (*models.UserDB, error) {
	body := models.LoginRequestBody{Email: email, Password: password}
	var user models.UserDB
	if err := c.do(ctx, http.MethodPost, "/v1/users/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces the profile fields of the user keyed by email.
func (c *Client) UpdateUser(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	var updated models.UserDB
	if err := c.do(ctx, http.MethodPatch, "/v1/users/update", user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindAllUsers lists every user without the password column.
func (c *Client) FindAllUsers(ctx context.Context) ([]models.MinimalUserInfo, error) {
	var users []models.MinimalUserInfo
	if err := c.do(ctx, http.MethodGet, "/v1/users/find_all", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByID looks a user up by id.
func (c *Client) FindUserByID(ctx context.Context, id int64) (*models.UserDB, error) {
	var user models.UserDB
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/users/find_by_id/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail looks a user up by email.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	var user models.UserDB
	if err := c.do(ctx, http.MethodGet, "/v1/users/find_by_email/"+url.PathEscape(email), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AddGiftIdea creates a gift idea.
func (c *Client) AddGiftIdea(ctx context.Context, body models.GiftIdeaRequestBody) (*models.GiftIdeaDB, error) {
	var gift models.GiftIdeaDB
	if err := c.do(ctx, http.MethodPost, "/v1/gifts/add", body, &gift); err != nil {
		return nil, err
	}
	return &gift, nil
}

// UpdateGiftIdea replaces a gift idea's columns, keyed by id.
func (c *Client) UpdateGiftIdea(ctx context.Context, gift models.GiftIdeaDB) (*models.GiftIdeaDB, error) {
	var updated models.GiftIdeaDB
	if err := c.do(ctx, http.MethodPatch, "/v1/gifts/update", gift, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindGiftIdeaByID looks a gift idea up by id.
func (c *Client) FindGiftIdeaByID(ctx context.Context, id int64) (*models.GiftIdeaDB, error) {
	var gift models.GiftIdeaDB
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/gifts/find_by_id/%d", id), nil, &gift); err != nil {
		return nil, err
	}
	return &gift, nil
}

// FindAllGiftIdeas lists every gift idea.
func (c *Client) FindAllGiftIdeas(ctx context.Context) ([]models.GiftIdeaDB, error) {
	var gifts []models.GiftIdeaDB
	if err := c.do(ctx, http.MethodGet, "/v1/gifts/find_all", nil, &gifts); err != nil {
		return nil, err
	}
	return gifts, nil
}

// Reserve claims the gift idea for the given user.
func (c *Client) Reserve(ctx context.Context, giftID, userID int64) (*models.GiftIdeaResponseBody, error) {
	var gift models.GiftIdeaResponseBody
	path := fmt.Sprintf("/v1/gifts/reserve/%d/%d", giftID, userID)
	if err := c.do(ctx, http.MethodPatch, path, nil, &gift); err != nil {
		return nil, err
	}
	return &gift, nil
}

// Unreserve clears the gift idea's reservation.
func (c *Client) Unreserve(ctx context.Context, giftID int64) (*models.GiftIdeaResponseBody, error) {
	var gift models.GiftIdeaResponseBody
	path := fmt.Sprintf("/v1/gifts/unreserve/%d", giftID)
	if err := c.do(ctx, http.MethodPatch, path, nil, &gift); err != nil {
		return nil, err
	}
	return &gift, nil
}

// DeleteGiftIdea removes a gift idea and reports whether a row was removed.
func (c *Client) DeleteGiftIdea(ctx context.Context, giftID int64) (bool, error) {
	var deleted bool
	path := fmt.Sprintf("/v1/gifts/delete/%d", giftID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}

// VisibleTo filters a gift list for display to the given viewer, dropping
// gift ideas intended for the viewer themselves. This exclusion lives in
// the client only; the server returns every row.
func VisibleTo(gifts []models.GiftIdeaDB, viewerID int64) []models.GiftIdeaDB {
	visible := make([]models.GiftIdeaDB, 0, len(gifts))
	for _, g := range gifts {
		if g.RecipientUserID == viewerID {
			continue
		}
		visible = append(visible, g)
	}
	return visible
}

// do performs one JSON round trip. A 404 becomes ErrNotFound; any other
// non-200 becomes an error carrying the status and body text.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, text)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
