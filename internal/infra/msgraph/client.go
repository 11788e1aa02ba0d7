package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"acta_notification_service/internal/domain/mail"

	"github.com/sirupsen/logrus"
)

const (
	defaultTokenBaseURL = "https://login.microsoftonline.com"
	defaultGraphBaseURL = "https://graph.microsoft.com/v1.0"

	mailSendScope = "https://graph.microsoft.com/.default"
)

// Configuration errors are deployment problems, not runtime retry cases.
var (
	ErrCredentialsNotConfigured = errors.New("azure credentials are not configured (AZURE_TENANT_ID / AZURE_CLIENT_ID / AZURE_CLIENT_SECRET)")
	ErrSenderNotConfigured      = errors.New("sender mailbox is not configured (MS_GRAPH_FROM_USER)")
)

// TransportError is a non-success response from the identity provider or
// the Graph API, carrying the HTTP status and response body.
type TransportError struct {
	Step   string // "token" or "sendMail"
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %d %s", e.Step, e.Status, e.Body)
}

// Config holds the client-credentials identity and the sending mailbox.
// Base URLs are overridable for tests.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	Sender       string

	TokenBaseURL string
	GraphBaseURL string
}

// Client sends mail through Microsoft Graph, authenticating with the OAuth2
// client-credentials grant. Implements mail.Client. No retries happen here;
// the hourly cadence of the caller is the retry mechanism.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg Config, logger *logrus.Logger) *Client {
	if cfg.TokenBaseURL == "" {
		cfg.TokenBaseURL = defaultTokenBaseURL
	}
	if cfg.GraphBaseURL == "" {
		cfg.GraphBaseURL = defaultGraphBaseURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type messageBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphMessage struct {
	Subject      string      `json:"subject"`
	Body         messageBody `json:"body"`
	ToRecipients []recipient `json:"toRecipients"`
}

type sendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

// Send delivers one HTML message to all recipients as a single sendMail
// call against the sender's mailbox, saving a copy to sent items.
func (c *Client) Send(ctx context.Context, msg mail.Message) error {
	if c.cfg.Sender == "" {
		return ErrSenderNotConfigured
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	payload := sendMailRequest{
		Message: graphMessage{
			Subject:      msg.Subject,
			Body:         messageBody{ContentType: "HTML", Content: msg.HTML},
			ToRecipients: buildRecipients(msg.To),
		},
		SaveToSentItems: true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sendMail request: %w", err)
	}

	sendURL := fmt.Sprintf("%s/users/%s/sendMail", c.cfg.GraphBaseURL, url.PathEscape(c.cfg.Sender))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sendMail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendMail request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		details, _ := io.ReadAll(res.Body)
		return &TransportError{Step: "sendMail", Status: res.StatusCode, Body: string(details)}
	}

	c.logger.Infof("Graph accepted mail %q for %d recipient(s).", msg.Subject, len(msg.To))
	return nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.cfg.TenantID == "" || c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return "", ErrCredentialsNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("scope", mailSendScope)
	form.Set("grant_type", "client_credentials")

	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.cfg.TokenBaseURL, url.PathEscape(c.cfg.TenantID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", &TransportError{Step: "token", Status: res.StatusCode, Body: string(body)}
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("token response contains no access_token")
	}
	return parsed.AccessToken, nil
}

func buildRecipients(addrs []string) []recipient {
	out := make([]recipient, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, recipient{EmailAddress: emailAddress{Address: addr}})
	}
	return out
}
