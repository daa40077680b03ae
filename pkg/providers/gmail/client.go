// Package gmail is the Gmail provider: search, read, draft and send over
// the Gmail v1 API. Thin pass-through; missing credentials fail
// construction and the bridge drops the tool set.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/bobi-voice/bobi/pkg/bridge"
	"github.com/bobi-voice/bobi/pkg/configutil"
	"github.com/bobi-voice/bobi/pkg/errorsx"
	"github.com/bobi-voice/bobi/pkg/googleauth"
)

// Settings is the provider block from the config file. The token is
// separate from the calendar one because the scopes differ.
type Settings struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	TokenPath       string `mapstructure:"token_path"`
}

// Client wraps an authenticated Gmail service.
type Client struct {
	log *slog.Logger
	svc *gmail.Service
}

// NewClient authenticates and builds the Gmail service.
func NewClient(ctx context.Context, log *slog.Logger, settings map[string]any) (*Client, error) {
	if err := configutil.ValidateSettings(settings, configutil.Schema{
		Required: []string{"credentials_path", "token_path"},
	}); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	var s Settings
	if err := configutil.DecodeSettings(settings, &s); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfig)
	}

	httpClient, err := googleauth.NewHTTPClient(ctx, s.CredentialsPath, s.TokenPath, gmail.GmailModifyScope)
	if err != nil {
		return nil, err
	}
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAuth)
	}

	log.Info("gmail_provider_ready")
	return &Client{log: log, svc: svc}, nil
}

// Optional adapts construction to the bridge's optional-provider contract.
func Optional(ctx context.Context, log *slog.Logger, settings map[string]any) bridge.OptionalProvider {
	return func() (bridge.Provider, error) {
		return NewClient(ctx, log, settings)
	}
}

// SearchEmails runs a Gmail query and returns header-level summaries.
func (c *Client) SearchEmails(query string, maxResults int) (map[string]any, error) {
	res, err := c.svc.Users.Messages.List("me").Q(query).MaxResults(int64(maxResults)).Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}

	summaries := make([]map[string]any, 0, len(res.Messages))
	for _, msg := range res.Messages {
		full, err := c.svc.Users.Messages.Get("me", msg.Id).
			Format("metadata").
			MetadataHeaders("From", "Subject", "Date").
			Do()
		if err != nil {
			return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
		}
		headers := headerMap(full.Payload)
		summaries = append(summaries, map[string]any{
			"id":        msg.Id,
			"thread_id": msg.ThreadId,
			"from":      headers["From"],
			"subject":   headers["Subject"],
			"date":      headers["Date"],
			"snippet":   full.Snippet,
		})
	}
	return map[string]any{
		"success": true,
		"emails":  summaries,
		"count":   len(summaries),
	}, nil
}

// EmailThread returns every message of a thread with its plain-text body.
func (c *Client) EmailThread(threadID string) (map[string]any, error) {
	thread, err := c.svc.Users.Threads.Get("me", threadID).Format("full").Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}

	messages := make([]map[string]any, 0, len(thread.Messages))
	for _, msg := range thread.Messages {
		headers := headerMap(msg.Payload)
		messages = append(messages, map[string]any{
			"id":      msg.Id,
			"from":    headers["From"],
			"to":      headers["To"],
			"subject": headers["Subject"],
			"date":    headers["Date"],
			"body":    plainTextBody(msg.Payload),
		})
	}
	return map[string]any{
		"success":   true,
		"thread_id": threadID,
		"messages":  messages,
		"count":     len(messages),
	}, nil
}

// DraftEmail creates a draft without sending it.
func (c *Client) DraftEmail(to, subject, body string) (map[string]any, error) {
	draft, err := c.svc.Users.Drafts.Create("me", &gmail.Draft{
		Message: &gmail.Message{Raw: rawMessage(to, subject, body)},
	}).Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}
	c.log.Info("draft_created", slog.String("draft_id", draft.Id))
	return map[string]any{
		"success": true,
		"draft":   draft,
		"message": fmt.Sprintf("Draft email kreiran za %s", to),
	}, nil
}

// SendEmail sends a plain-text message.
func (c *Client) SendEmail(to, subject, body string) (map[string]any, error) {
	sent, err := c.svc.Users.Messages.Send("me", &gmail.Message{
		Raw: rawMessage(to, subject, body),
	}).Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}
	c.log.Info("email_sent", slog.String("message_id", sent.Id))
	return map[string]any{
		"success":      true,
		"message":      sent,
		"confirmation": fmt.Sprintf("Email poslat na %s", to),
	}, nil
}

// RecentEmails lists recent inbox mail, optionally narrowed to a sender.
func (c *Client) RecentEmails(fromAddress string, maxResults int) (map[string]any, error) {
	query := "in:inbox"
	if fromAddress != "" {
		query = "from:" + fromAddress
	}
	return c.SearchEmails(query, maxResults)
}

// rawMessage builds the base64url RFC 822 payload the API expects.
func rawMessage(to, subject, body string) string {
	msg := fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body)
	return base64.URLEncoding.EncodeToString([]byte(msg))
}

func headerMap(payload *gmail.MessagePart) map[string]string {
	out := make(map[string]string)
	if payload == nil {
		return out
	}
	for _, h := range payload.Headers {
		out[h.Name] = h.Value
	}
	return out
}

// plainTextBody digs the text/plain part out of a message payload.
func plainTextBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}
	if len(payload.Parts) == 0 {
		if payload.Body != nil && payload.Body.Data != "" {
			return decodeBody(payload.Body.Data)
		}
		return ""
	}
	for _, part := range payload.Parts {
		if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
			return decodeBody(part.Body.Data)
		}
	}
	return ""
}

func decodeBody(data string) string {
	// The API emits unpadded base64url; tolerate padded input too.
	decoded, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		if decoded, err = base64.URLEncoding.DecodeString(data); err != nil {
			return ""
		}
	}
	return string(decoded)
}
