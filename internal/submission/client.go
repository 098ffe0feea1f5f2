package submission

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/hashicorp/go-cleanhttp"
)

// ProofPath is appended to the endpoint for submissions.
const ProofPath = "/api/proof"

// maxResponseBytes caps how much of a server answer is kept.
const maxResponseBytes = 1 << 20

// Response is the server's answer to a submission.
type Response struct {
	StatusCode int
	Status     string
	Body       string
}

// Client posts signed submissions to an endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient returns a client for endpoint. A zero timeout means no limit.
func NewClient(endpoint string, timeout time.Duration) *Client {
	httpClient := cleanhttp.DefaultClient()
	httpClient.Timeout = timeout
	return &Client{Endpoint: endpoint, HTTP: httpClient}
}

// URL returns the submission URL.
func (c *Client) URL() string {
	return strings.TrimRight(c.Endpoint, "/") + ProofPath
}

// Send posts body with the signature and public key headers.
//
// A non-2xx answer returns both the Response and an error wrapping
// ErrSubmissionRejected.
func (c *Client) Send(ctx context.Context, body RequestBody, signature, publicKey []byte) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", base64.StdEncoding.EncodeToString(signature))
	req.Header.Set("X-Public-Key", base64.StdEncoding.EncodeToString(publicKey))

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = cleanhttp.DefaultClient()
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to %s: %w", c.Endpoint, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", c.Endpoint, err)
	}

	result := &Response{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(text)}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, fmt.Errorf("%w: %s", kerrors.ErrSubmissionRejected, resp.Status)
	}
	return result, nil
}
