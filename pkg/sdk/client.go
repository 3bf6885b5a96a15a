package sdk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/celerix-dev/celerix-directory/internal/directory"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// Client is a remote client for the Celerix Directory HTTP API.
// It implements the UserDirectory interface.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Connect builds a client for the daemon at addr (host:port) and verifies it
// is reachable. If CELERIX_DIR_DISABLE_TLS is set to "true", it speaks plain
// HTTP; otherwise HTTPS with verification skipped, since the daemon serves a
// self-signed certificate for internal traffic.
func Connect(addr string) (*Client, error) {
	scheme := "https"
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	if os.Getenv("CELERIX_DIR_DISABLE_TLS") == "true" {
		scheme = "http"
		transport = &http.Transport{}
	}

	c := &Client{
		baseURL: fmt.Sprintf("%s://%s/api", scheme, addr),
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
	if err := c.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach directory at %s: %w", addr, err)
	}
	return c, nil
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do sends one request and decodes the response into out (when non-nil).
// Error statuses are mapped back onto the directory's error taxonomy so
// callers can use errors.Is the same way against remote and embedded mode.
func (c *Client) do(method, path string, body any, out any) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrUnauthorized
		case http.StatusForbidden:
			return ErrForbidden
		case http.StatusNotFound:
			return directory.ErrNotFound
		case http.StatusConflict:
			return directory.ErrEmailExists
		default:
			if apiErr.Message != "" {
				return fmt.Errorf("%s", apiErr.Message)
			}
			return fmt.Errorf("directory returned status %d", resp.StatusCode)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates against the directory and keeps the issued token for
// subsequent calls. It returns the token so callers can persist it.
func (c *Client) Login(email, password string) (string, error) {
	var res struct {
		Token string            `json:"token"`
		User  schema.PublicUser `json:"user"`
	}
	err := c.do("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return "", err
	}
	c.token = res.Token
	return res.Token, nil
}

func (c *Client) CreateUser(email, password, name, role string) (schema.PublicUser, error) {
	var res struct {
		Message string            `json:"message"`
		User    schema.PublicUser `json:"user"`
	}
	err := c.do("POST", "/users", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"role":     role,
	}, &res)
	return res.User, err
}

func (c *Client) GetUser(id string) (schema.PublicUser, error) {
	var user schema.PublicUser
	err := c.do("GET", "/users/"+id, nil, &user)
	return user, err
}

func (c *Client) ListUsers() ([]schema.PublicUser, error) {
	var users []schema.PublicUser
	err := c.do("GET", "/users/all", nil, &users)
	return users, err
}

func (c *Client) ListPage(page, limit int) (schema.Page, error) {
	var result schema.Page
	err := c.do("GET", fmt.Sprintf("/users?page=%d&limit=%d", page, limit), nil, &result)
	return result, err
}

func (c *Client) DeleteUser(id string) (schema.DeletedUser, error) {
	var res struct {
		Message string             `json:"message"`
		User    schema.DeletedUser `json:"user"`
	}
	err := c.do("DELETE", "/users/"+id, nil, &res)
	return res.User, err
}

// Ping checks the health endpoint.
func (c *Client) Ping() error {
	return c.do("GET", "/health", nil, nil)
}
