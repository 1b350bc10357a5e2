package surrealhttp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/surrealdb/surrealhttp.go/pkg/constants"
)

// Client is a connection to a SurrealDB server over its HTTP REST interface.
// Every operation is a single round trip; no state is kept between calls
// beyond the connection identity given to New.
type Client struct {
	// URL is the base URL of the SurrealDB server to be called
	URL string
	// NS is the namespace to connect to
	NS string
	// DB is the database to connect to
	DB string
	// User is the user to authenticate as
	User string
	// Pass is the password to authenticate with
	Pass string

	httpClient *http.Client
	owned      bool
	closed     bool
	logger     zerolog.Logger
}

// New creates a new Client with its own underlying *http.Client. The owned
// transport is released by Close. Use SetHTTPClient to share a transport
// between several clients instead.
//
// No timeout is imposed by this library; set one with SetTimeout or supply a
// configured *http.Client.
func New(url, ns, db, user, pass string) *Client {
	return &Client{
		URL:        url,
		NS:         ns,
		DB:         db,
		User:       user,
		Pass:       pass,
		httpClient: &http.Client{},
		owned:      true,
		logger:     zerolog.Nop(),
	}
}

// SetHTTPClient replaces the underlying transport with one supplied by the
// caller. A supplied transport is borrowed: Close will not touch it.
func (c *Client) SetHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	c.owned = false
	return c
}

// SetTimeout sets the timeout on the underlying transport.
func (c *Client) SetTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// SetLogger sets the logger used for per-request debug events. The default
// logger discards everything.
func (c *Client) SetLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// Close releases the underlying transport if it is owned by this client.
// It is safe to call multiple times, and is a no-op when the transport was
// supplied via SetHTTPClient.
func (c *Client) Close() {
	if !c.owned || c.closed {
		return
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
}

// request issues a single HTTP request against the server and decodes the
// response body as JSON. Headers and auth are derived from the connection
// identity on every call. Transport and decode failures propagate unchanged;
// there are no retries.
func (c *Client) request(method, endpoint string, body []byte, params url.Values) (any, error) {
	if c.URL == "" {
		return nil, constants.ErrNoURL
	}

	reqURL := c.URL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequest(method, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("NS", c.NS)
	req.Header.Set("DB", c.DB)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.User, c.Pass)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Msg("surrealdb request")

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
