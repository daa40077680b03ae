// Package googleauth loads OAuth client credentials and a previously
// issued user token from disk and builds an authenticated HTTP client.
// There is no interactive consent flow; running the assistant assumes the
// token was minted out of band. A missing or unreadable file is an init
// error that the optional-provider path turns into an absent tool set.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bobi-voice/bobi/pkg/errorsx"
)

// NewHTTPClient builds an authenticated client for the given scopes.
func NewHTTPClient(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("read credentials: %w", err), errorsx.ReasonGoogleAuth)
	}
	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("parse credentials: %w", err), errorsx.ReasonGoogleAuth)
	}
	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, err
	}
	// The token source refreshes transparently when a refresh token is present.
	return cfg.Client(ctx, tok), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("read token: %w", err), errorsx.ReasonGoogleAuth)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("parse token: %w", err), errorsx.ReasonGoogleAuth)
	}
	return tok, nil
}
