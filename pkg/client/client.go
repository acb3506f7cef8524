// Package client is a small typed client for the site's JSON API. The
// registration flow and the newsletter widget drive the backend through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dazuai_backend/pkg/catalog"
)

// APIError carries the server-provided message for a non-success response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type RegistrationRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	County string `json:"county"`
	Course string `json:"course"`
	Level  string `json:"level"`
	Goals  string `json:"goals"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (*messageResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode < 400 {
		return nil, fmt.Errorf("error decoding response: %v", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: out.Message}
	}
	return &out, nil
}

// Register submits a course registration and returns the new record id.
func (c *Client) Register(ctx context.Context, reg RegistrationRequest) (uint, error) {
	resp, err := c.postJSON(ctx, "/register", reg)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Subscribe adds an email to the newsletter and returns the server message.
func (c *Client) Subscribe(ctx context.Context, email string) (string, error) {
	resp, err := c.postJSON(ctx, "/subscribe", map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Courses fetches the fixed course catalog.
func (c *Client) Courses(ctx context.Context) ([]catalog.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/courses", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "Could not fetch courses."}
	}

	var courses []catalog.Course
	if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
		return nil, fmt.Errorf("error decoding response: %v", err)
	}
	return courses, nil
}
