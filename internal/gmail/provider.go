// Package gmail owns the authenticated transport: OAuth credential lifecycle
// and message dispatch through the Gmail API.
package gmail

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/cardoffice/guestpass/internal/pkg/logger"
)

// Scopes requested on first authorization. Settings scopes cover delegate
// sender management.
var Scopes = []string{
	gmailapi.GmailSendScope,
	gmailapi.GmailModifyScope,
	gmailapi.GmailSettingsBasicScope,
	gmailapi.GmailSettingsSharingScope,
}

// CredentialProvider yields an authenticated HTTP client for the transport
// and can invalidate its cached credential to force re-authentication on the
// next run.
type CredentialProvider interface {
	Acquire(ctx context.Context) (*http.Client, error)
	Invalidate() error
}

// FileTokenProvider caches the OAuth token as JSON on disk. First run walks
// the user through the authorization-code flow on the terminal; later runs
// load and silently refresh the cached token.
type FileTokenProvider struct {
	cfg       *oauth2.Config
	tokenFile string
	prompt    io.Writer
	input     io.Reader
}

// NewFileTokenProvider builds a provider for the given OAuth client.
func NewFileTokenProvider(clientID, clientSecret, tokenFile string) *FileTokenProvider {
	return &FileTokenProvider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
			Scopes:       Scopes,
		},
		tokenFile: tokenFile,
		prompt:    os.Stderr,
		input:     os.Stdin,
	}
}

// Acquire returns an HTTP client that refreshes the cached token as needed.
func (p *FileTokenProvider) Acquire(ctx context.Context) (*http.Client, error) {
	tok, err := p.readToken()
	if err != nil {
		logger.Info("no usable cached token, starting authorization flow", "token_file", p.tokenFile)
		tok, err = p.authorize(ctx)
		if err != nil {
			return nil, err
		}
	}

	ts := p.cfg.TokenSource(ctx, tok)
	fresh, err := ts.Token()
	if err != nil {
		// Refresh failed (revoked or expired refresh token): one retry via
		// the full authorization flow before giving up.
		logger.Warn("token refresh failed, re-authorizing", "error", err)
		tok, err = p.authorize(ctx)
		if err != nil {
			return nil, err
		}
		ts = p.cfg.TokenSource(ctx, tok)
		if fresh, err = ts.Token(); err != nil {
			return nil, fmt.Errorf("acquire credential: %w", err)
		}
	}
	if fresh.AccessToken != tok.AccessToken {
		p.writeToken(fresh)
	}

	return oauth2.NewClient(ctx, ts), nil
}

// Invalidate deletes the cached token file so the next run re-authenticates.
func (p *FileTokenProvider) Invalidate() error {
	err := os.Remove(p.tokenFile)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (p *FileTokenProvider) authorize(ctx context.Context) (*oauth2.Token, error) {
	url := p.cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(p.prompt, "Open the following URL in a browser, authorize, and paste the code here:\n%s\nCode: ", url)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		return nil, fmt.Errorf("authorization flow: no code entered")
	}

	tok, err := p.cfg.Exchange(ctx, scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("authorization flow: %w", err)
	}
	p.writeToken(tok)
	return tok, nil
}

func (p *FileTokenProvider) readToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(p.tokenFile)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	return &tok, nil
}

func (p *FileTokenProvider) writeToken(tok *oauth2.Token) {
	if err := os.MkdirAll(filepath.Dir(p.tokenFile), 0o700); err != nil {
		logger.Warn("cannot create credentials dir", "error", err)
		return
	}
	data, err := json.Marshal(tok)
	if err != nil {
		logger.Warn("cannot marshal token", "error", err)
		return
	}
	if err := os.WriteFile(p.tokenFile, data, 0o600); err != nil {
		logger.Warn("cannot persist token", "token_file", p.tokenFile, "error", err)
	}
}
