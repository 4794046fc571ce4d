package hint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrUnavailable wraps transport-level failures reaching the classifier, so
// callers can distinguish "service down" from a malformed response.
var ErrUnavailable = errors.New("hint provider unavailable")

// Client calls the keyword-classifier HTTP endpoint. The zero value is not
// usable; construct with NewClient.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a Client for the given classifier endpoint URL.
// timeout bounds each Recommend call end to end; dialing is capped
// separately so an unreachable host fails fast.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 2 * time.Second,
				}).DialContext,
			},
		},
	}
}

// recommendRequest is the JSON body sent to the classifier.
type recommendRequest struct {
	UserInput string `json:"userInput"`
}

// Recommend posts text to the classifier and returns its proposal.
// Each request carries a fresh X-Request-Id so classifier-side logs can be
// correlated with ours.
func (c *Client) Recommend(ctx context.Context, text string) (Hint, error) {
	body, err := json.Marshal(recommendRequest{UserInput: text})
	if err != nil {
		return Hint{}, fmt.Errorf("hint.Client.Recommend: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Hint{}, fmt.Errorf("hint.Client.Recommend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return Hint{}, fmt.Errorf("hint.Client.Recommend: %w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Hint{}, fmt.Errorf("hint.Client.Recommend: classifier returned status %d", resp.StatusCode)
	}

	var h Hint
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Hint{}, fmt.Errorf("hint.Client.Recommend: decode response: %w", err)
	}
	return h, nil
}

// Available probes the classifier endpoint. Any HTTP response, even an
// error status, counts as reachable; only transport failures do not.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// compile-time check: Client must satisfy Provider.
var _ Provider = (*Client)(nil)
