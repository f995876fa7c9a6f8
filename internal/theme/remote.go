package theme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxPayload caps the response body read from a remote generator.
const maxPayload = 64 << 10

// Remote asks an HTTP endpoint for a theme. The endpoint receives
// {"score": N} as JSON and answers with a Theme object.
type Remote struct {
	URL    string
	Token  string
	Client *http.Client
}

// NewRemote creates a remote generator for url. token is sent as a bearer
// token when non-empty.
func NewRemote(url, token string) *Remote {
	return &Remote{URL: url, Token: token, Client: http.DefaultClient}
}

type remoteRequest struct {
	Score int `json:"score"`
}

// Generate requests a theme for the given score.
func (r *Remote) Generate(ctx context.Context, score int) (Theme, error) {
	body, err := json.Marshal(remoteRequest{Score: score})
	if err != nil {
		return Theme{}, fmt.Errorf("theme: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(body))
	if err != nil {
		return Theme{}, fmt.Errorf("theme: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: request %s: %w", r.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Theme{}, fmt.Errorf("theme: %s returned %s", r.URL, resp.Status)
	}

	var t Theme
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayload)).Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}
