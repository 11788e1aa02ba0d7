package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Realtime Database REST client, scoped to what the
// reminder job needs: snapshot reads and one multi-path update.
type Client struct {
	baseURL    string // https://<project>-default-rtdb.firebaseio.com
	authToken  string // database secret or access token, optional
	httpClient *http.Client
}

func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) endpoint(path string) string {
	u := c.baseURL + "/" + path + ".json"
	if c.authToken != "" {
		u += "?auth=" + url.QueryEscape(c.authToken)
	}
	return u
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("create get request for %q: %w", path, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %q: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		details, _ := io.ReadAll(res.Body)
		return fmt.Errorf("get %q: status %d %s", path, res.StatusCode, string(details))
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %q response: %w", path, err)
	}
	return nil
}

// update applies a multi-path write as one PATCH against the database root,
// so all paths land in a single request.
func (c *Client) update(ctx context.Context, values map[string]any) error {
	body, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.endpoint(""), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		details, _ := io.ReadAll(res.Body)
		return fmt.Errorf("update: status %d %s", res.StatusCode, string(details))
	}
	return nil
}
