package googleauth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bobi-voice/bobi/pkg/errorsx"
)

const credentialsJSON = `{
  "installed": {
    "client_id": "id.apps.googleusercontent.com",
    "client_secret": "secret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["http://localhost"]
  }
}`

const tokenJSON = `{
  "access_token": "ya29.test",
  "token_type": "Bearer",
  "refresh_token": "1//refresh",
  "expiry": "2030-01-01T00:00:00Z"
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNewHTTPClient(t *testing.T) {
	dir := t.TempDir()
	creds := writeFile(t, dir, "credentials.json", credentialsJSON)
	token := writeFile(t, dir, "token.json", tokenJSON)

	client, err := NewHTTPClient(context.Background(), creds, token, "https://www.googleapis.com/auth/calendar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatalf("expected http client")
	}
}

func TestNewHTTPClientMissingCredentials(t *testing.T) {
	dir := t.TempDir()
	token := writeFile(t, dir, "token.json", tokenJSON)

	_, err := NewHTTPClient(context.Background(), filepath.Join(dir, "absent.json"), token)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errorsx.HasReason(err, errorsx.ReasonGoogleAuth) {
		t.Fatalf("expected google_auth reason, got %s", errorsx.Reason(err))
	}
}

func TestNewHTTPClientMissingToken(t *testing.T) {
	dir := t.TempDir()
	creds := writeFile(t, dir, "credentials.json", credentialsJSON)

	_, err := NewHTTPClient(context.Background(), creds, filepath.Join(dir, "absent.json"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errorsx.HasReason(err, errorsx.ReasonGoogleAuth) {
		t.Fatalf("expected google_auth reason, got %s", errorsx.Reason(err))
	}
}

func TestNewHTTPClientMalformedToken(t *testing.T) {
	dir := t.TempDir()
	creds := writeFile(t, dir, "credentials.json", credentialsJSON)
	token := writeFile(t, dir, "token.json", "not-json")

	if _, err := NewHTTPClient(context.Background(), creds, token); err == nil {
		t.Fatalf("expected error")
	}
}
