// Package collector pulls daily wellness samples from external sources and
// resolves multi-source conflicts before they reach storage.
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/daypulse/daypulse/internal/domain"
)

// Client fetches wellness records from an intervals.icu-compatible API.
type Client struct {
	baseURL    string
	apiKey     string
	athleteID  string
	httpClient *http.Client
}

// NewClient creates a wellness API client. baseURL must not include a
// trailing slash.
func NewClient(baseURL, apiKey, athleteID string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		athleteID:  athleteID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// wellnessRecord is the upstream wire format. Sleep is reported in seconds;
// HRV is the nightly RMSSD.
type wellnessRecord struct {
	ID           string   `json:"id"` // calendar date YYYY-MM-DD
	SleepSecs    *float64 `json:"sleepSecs"`
	SleepQuality *int     `json:"sleepQuality"`
	RestingHR    *float64 `json:"restingHR"`
	HRV          *float64 `json:"hrv"`
}

// FetchRange downloads the wellness records for oldest..newest (inclusive,
// YYYY-MM-DD) and converts them to samples. Transient upstream failures are
// retried with jittered exponential backoff.
func (c *Client) FetchRange(ctx context.Context, oldest, newest string) ([]domain.WellnessSample, error) {
	endpoint := fmt.Sprintf("%s/api/v1/athlete/%s/wellness?oldest=%s&newest=%s",
		c.baseURL, url.PathEscape(c.athleteID), url.QueryEscape(oldest), url.QueryEscape(newest))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build wellness request: %w", err)
	}
	req.SetBasicAuth("API_KEY", c.apiKey)
	req.Header.Set("User-Agent", "daypulse/1.0")

	var body []byte
	err = retry.Do(
		func() error {
			resp, doErr := c.httpClient.Do(req)
			if doErr != nil {
				return doErr
			}
			defer resp.Body.Close()

			// Retry on server errors and rate limiting
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
				return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(snippet))
			}
			if resp.StatusCode != http.StatusOK {
				snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
				return retry.Unrecoverable(fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(snippet)))
			}

			var readErr error
			body, readErr = io.ReadAll(resp.Body)
			return readErr
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.MaxDelay(2*time.Minute),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("retrying wellness fetch (attempt %d): %v", n+1, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch wellness range %s..%s: %w", oldest, newest, err)
	}

	var records []wellnessRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode wellness response: %w", err)
	}

	samples := make([]domain.WellnessSample, 0, len(records))
	for _, rec := range records {
		samples = append(samples, rec.toSample())
	}
	return samples, nil
}

func (r wellnessRecord) toSample() domain.WellnessSample {
	s := domain.WellnessSample{
		Date:         r.ID,
		SleepQuality: r.SleepQuality,
		HRVRMSSD:     r.HRV,
		RestingHR:    r.RestingHR,
		Source:       domain.SourceIntervals,
	}
	if r.SleepSecs != nil {
		s.SleepHours = *r.SleepSecs / 3600
	}
	return s
}
