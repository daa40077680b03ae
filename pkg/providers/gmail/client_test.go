package gmail

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/api/gmail/v1"

	"github.com/bobi-voice/bobi/pkg/errorsx"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClientRejectsIncompleteSettings(t *testing.T) {
	_, err := NewClient(context.Background(), testLogger(), map[string]any{})
	if err == nil {
		t.Fatalf("expected error for missing settings")
	}
	if !errorsx.HasReason(err, errorsx.ReasonConfig) {
		t.Fatalf("expected config reason, got %s", errorsx.Reason(err))
	}
}

func TestOptionalFailsWithoutCredentials(t *testing.T) {
	build := Optional(context.Background(), testLogger(), map[string]any{
		"credentials_path": "no-such-credentials.json",
		"token_path":       "no-such-token.json",
	})
	if _, err := build(); err == nil {
		t.Fatalf("expected provider init failure")
	}
}

func TestToolsExposeFixedSet(t *testing.T) {
	c := &Client{log: testLogger()}
	tools := c.Tools()
	if len(tools) != 5 {
		t.Fatalf("expected 5 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.Name == "" || tool.Description == "" || tool.Handler == nil {
			t.Fatalf("incomplete tool %q", tool.Name)
		}
	}
}

func TestRawMessage(t *testing.T) {
	raw := rawMessage("marko@primer.rs", "Ponuda", "Zdravo,\nšaljem ponudu.")
	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	msg := string(decoded)
	if !strings.HasPrefix(msg, "To: marko@primer.rs\r\n") {
		t.Fatalf("unexpected headers: %q", msg)
	}
	if !strings.Contains(msg, "Subject: Ponuda\r\n") {
		t.Fatalf("missing subject: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nZdravo,\nšaljem ponudu.") {
		t.Fatalf("missing body: %q", msg)
	}
}

func TestPlainTextBodyMultipart(t *testing.T) {
	body := base64.RawURLEncoding.EncodeToString([]byte("plain deo"))
	payload := &gmail.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmail.MessagePart{
			{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: "aWdub3Jl"}},
			{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: body}},
		},
	}
	if got := plainTextBody(payload); got != "plain deo" {
		t.Fatalf("expected plain part, got %q", got)
	}
}

func TestPlainTextBodySinglePart(t *testing.T) {
	body := base64.RawURLEncoding.EncodeToString([]byte("telo poruke"))
	payload := &gmail.MessagePart{
		MimeType: "text/plain",
		Body:     &gmail.MessagePartBody{Data: body},
	}
	if got := plainTextBody(payload); got != "telo poruke" {
		t.Fatalf("expected body, got %q", got)
	}
	if got := plainTextBody(nil); got != "" {
		t.Fatalf("expected empty for nil payload, got %q", got)
	}
}
