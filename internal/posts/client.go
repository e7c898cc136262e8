package posts

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://jsonplaceholder.typicode.com/posts"

// ClientOptions controls how the post source client is initialised.
type ClientOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

// Client fetches post resources from the remote JSON endpoint.
type Client struct {
	httpClient *http.Client
	logger     *logrus.Logger
	baseURL    string
}

// NewClient constructs a Client for the configured post source. An empty
// BaseURL falls back to the reference endpoint.
func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		logger:     opts.Logger,
		baseURL:    baseURL,
	}
}

// BaseURL returns the configured base URL for outbound requests.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch retrieves the post identified by id with a single GET request. The
// identifier is substituted into the request target as-is, without encoding
// or validation, and the response body is decoded as JSON. Transport and
// decode failures are returned to the caller; the response status and the
// presence of individual fields are deliberately not inspected.
func (c *Client) Fetch(ctx context.Context, id string) (Post, error) {
	target := c.baseURL + "/" + id

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Post{}, eris.Wrapf(err, "building request for post %s", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Post{}, eris.Wrapf(err, "fetching post %s", id)
	}
	defer resp.Body.Close()

	var post Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return Post{}, eris.Wrapf(err, "decoding post %s", id)
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"id":     id,
			"target": target,
		}).Debug("fetched post")
	}

	return post, nil
}
