// Package client is a typed HTTP client for the booking API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Error string `json:"error"`
}

// CreateBooking posts one booking. Any non-201 answer or transport failure is a
// domain.NetworkError; the call is never retried.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingCreated, error) {
	var out models.BookingCreated
	body, err := json.Marshal(req)
	if err != nil {
		return out, err
	}
	err = c.do(ctx, http.MethodPost, "/book-pass", bytes.NewReader(body), http.StatusCreated, &out)
	return out, err
}

func (c *Client) ListBookings(ctx context.Context) ([]models.BookingRecord, error) {
	var out []models.BookingRecord
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPasses(ctx context.Context) ([]models.PassRow, error) {
	var out []models.PassRow
	if err := c.do(ctx, http.MethodGet, "/passes", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, wantStatus int, dst any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return domain.NetworkError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != wantStatus {
		var apiErr apiError
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return domain.NetworkError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s %s: %s", method, path, apiErr.Error),
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.NetworkError{Status: resp.StatusCode, Err: fmt.Errorf("decode %s response: %w", path, err)}
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// StatusOf returns the HTTP status carried by a NetworkError, 0 otherwise.
func StatusOf(err error) int {
	var ne domain.NetworkError
	if errors.As(err, &ne) {
		return ne.Status
	}
	return 0
}
