package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"deaddrop/internal/domain"
)

// Client talks to a relay server over HTTP.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client for the relay at base. A nil hc falls back to
// http.DefaultClient.
func NewClient(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), http: hc}
}

// RegisterUser announces hash to the relay and returns the journalist key,
// if one has been published.
func (c *Client) RegisterUser(ctx context.Context, hash string) (string, error) {
	var out registerResponse
	if err := c.post(ctx, "/api/register", registerRequest{Hash: hash}, &out); err != nil {
		return "", err
	}
	if out.JournalistPublicKey == nil {
		return "", nil
	}
	return *out.JournalistPublicKey, nil
}

// RegisterJournalist claims or replaces the journalist key.
func (c *Client) RegisterJournalist(ctx context.Context, publicKey, secret string) error {
	return c.post(ctx, "/api/register-journalist", journalistRequest{PublicKey: publicKey, Secret: secret}, nil)
}

// SendMessage posts an opaque encrypted message and returns its id.
func (c *Client) SendMessage(ctx context.Context, m domain.Message) (string, error) {
	req := messageRequest{
		From:          m.From,
		To:            m.To,
		EncryptedData: m.Payload,
		HasFiles:      m.HasFiles,
		UserPublicKey: m.SenderPublicKey,
	}
	if !m.CreatedAt.IsZero() {
		req.Timestamp = m.CreatedAt.UnixMilli()
	}
	var out messageResponse
	if err := c.post(ctx, "/api/message", req, &out); err != nil {
		return "", err
	}
	return out.MessageID, nil
}

// SendChunk uploads one file chunk and reports (received, total) progress.
func (c *Client) SendChunk(ctx context.Context, chunk domain.Chunk) (int, int, error) {
	var out chunkResponse
	if err := c.post(ctx, "/api/chunk", chunk, &out); err != nil {
		return 0, 0, err
	}
	return out.Received, out.Total, nil
}

// FetchMessages lists messages. userType "journalist" returns everything;
// anything else returns the messages for hash.
func (c *Client) FetchMessages(ctx context.Context, userType, hash string) ([]domain.Message, error) {
	q := url.Values{}
	q.Set("userType", userType)
	if hash != "" {
		q.Set("hash", hash)
	}
	var out messagesResponse
	if err := c.get(ctx, "/api/messages?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// Nuke wipes every trace of hash from the relay.
func (c *Client) Nuke(ctx context.Context, hash string) error {
	return c.post(ctx, "/api/nuke", registerRequest{Hash: hash}, nil)
}

// Health probes the relay.
func (c *Client) Health(ctx context.Context) error {
	var out healthResponse
	return c.get(ctx, "/api/health", &out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(resp, path)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError maps a non-2xx response back onto the domain error kinds so
// callers can test with errors.Is on either side of the wire.
func statusError(resp *http.Response, path string) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	reason := body.Error
	if reason == "" {
		reason = resp.Status
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusForbidden:
		kind = domain.ErrUnauthorized
	case http.StatusServiceUnavailable:
		kind = domain.ErrCapacityExceeded
	case http.StatusTooManyRequests:
		kind = domain.ErrTooManyRequests
	default:
		kind = domain.ErrInvalidInput
	}
	return errors.Wrapf(kind, "relay %s: %s", path, reason)
}

// Compile-time assertion that Client implements domain.RelayClient.
var _ domain.RelayClient = (*Client)(nil)
