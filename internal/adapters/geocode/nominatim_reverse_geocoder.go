package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/platform/obs"
)

// NominatimReverseGeocoder implements the ReverseGeocoder port against the
// OpenStreetMap Nominatim /reverse endpoint.
//
// Lookups are display enrichment only: callers bound them with a deadline
// and fall back to a coordinate string on any failure. The client retries
// transient failures with backoff while respecting context cancellation.
type NominatimReverseGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimReverseGeocoder(baseURL string) *NominatimReverseGeocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &NominatimReverseGeocoder{
		session:   &http.Client{Timeout: 5 * time.Second},
		baseURL:   baseURL,
		userAgent: "visit-route-service/1.0",
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode resolves coordinates to a display address.
func (n *NominatimReverseGeocoder) ReverseGeocode(ctx context.Context, c domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.ReverseGeocode")(&err)

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		return n.newReverseRequest(ctx, c)
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocode %s: %w", c, err)
	}
	defer resp.Body.Close()

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("reverse geocode %s: decode response: %w", c, err)
	}

	return decoded.DisplayName, nil
}

func (n *NominatimReverseGeocoder) newReverseRequest(ctx context.Context, c domain.Coordinates) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Nominatim requires an identifying User-Agent.
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(c.Lng, 'f', 6, 64))
	q.Set("zoom", "18")
	req.URL.RawQuery = q.Encode()

	return req, nil
}

type httpStatusError struct {
	Code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func (n *NominatimReverseGeocoder) do(req *http.Request) (*http.Response, error) {
	resp, err := n.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429, 5xx) with
// exponential backoff while respecting context cancellation.
func (n *NominatimReverseGeocoder) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := n.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
