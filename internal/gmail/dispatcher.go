package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/cardoffice/guestpass/internal/pkg/logger"
)

// Dispatcher sends composed messages through the Gmail API. Send never
// panics and never aborts the batch; every transport problem comes back as
// an error for the caller to record.
type Dispatcher struct {
	provider CredentialProvider
	delegate string
	sender   messageSender
}

// messageSender is the seam between MIME assembly and the Gmail API call.
type messageSender interface {
	send(ctx context.Context, raw string) error
}

type apiSender struct {
	svc *gmailapi.Service
}

func (s *apiSender) send(ctx context.Context, raw string) error {
	_, err := s.svc.Users.Messages.Send("me", &gmailapi.Message{Raw: raw}).Context(ctx).Do()
	return err
}

// NewDispatcher creates a dispatcher sending as the given delegate address.
func NewDispatcher(provider CredentialProvider, delegateEmail string) *Dispatcher {
	return &Dispatcher{provider: provider, delegate: delegateEmail}
}

func (d *Dispatcher) ensureSender(ctx context.Context) (messageSender, error) {
	if d.sender != nil {
		return d.sender, nil
	}
	client, err := d.provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire transport credential: %w", err)
	}
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("build gmail service: %w", err)
	}
	d.sender = &apiSender{svc: svc}
	return d.sender, nil
}

// Send delivers an HTML message, attaching the file at attachmentPath when
// it is non-empty and exists. A missing attachment file is logged and the
// message still goes out without it.
func (d *Dispatcher) Send(ctx context.Context, to, subject, htmlBody, attachmentPath string) error {
	sender, err := d.ensureSender(ctx)
	if err != nil {
		return err
	}

	raw := buildMIME(d.delegate, to, subject, htmlBody, attachmentPath)
	if err := sender.send(ctx, raw); err != nil {
		logger.Error("send failed", "to", to, "subject", subject, "error", err)
		if isAuthError(err) {
			logger.Warn("auth-classified send failure, invalidating cached credential")
			if invErr := d.provider.Invalidate(); invErr != nil {
				logger.Warn("credential invalidation failed", "error", invErr)
			}
		}
		return fmt.Errorf("send to %s: %w", logger.RedactEmail(to), err)
	}

	logger.Info("message sent", "to", to, "subject", subject,
		"attached", attachmentPath != "")
	return nil
}

// buildMIME assembles the raw RFC 2822 message, base64url-encoded the way
// the Gmail API expects.
func buildMIME(from, to, subject, htmlBody, attachmentPath string) string {
	var attachment []byte
	if attachmentPath != "" {
		data, err := os.ReadFile(attachmentPath)
		if err != nil {
			logger.Warn("attachment unreadable, sending without it",
				"path", attachmentPath, "error", err)
		} else {
			attachment = data
		}
	}

	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
	}

	var msg string
	if attachment == nil {
		msg = strings.Join(append(headers,
			"Content-Type: text/html; charset=UTF-8",
			"",
			htmlBody,
		), "\r\n")
	} else {
		boundary := "boundary_" + uuid.NewString()
		name := filepath.Base(attachmentPath)
		msg = strings.Join(append(headers,
			"Content-Type: multipart/mixed; boundary="+boundary,
			"",
			"--"+boundary,
			"Content-Type: text/html; charset=UTF-8",
			"",
			htmlBody,
			"",
			"--"+boundary,
			fmt.Sprintf("Content-Type: application/pdf; name=%q", name),
			"Content-Transfer-Encoding: base64",
			fmt.Sprintf("Content-Disposition: attachment; filename=%q", name),
			"",
			wrap76(base64.StdEncoding.EncodeToString(attachment)),
			"",
			"--"+boundary+"--",
		), "\r\n")
	}

	return base64.URLEncoding.EncodeToString([]byte(msg))
}

// wrap76 folds a base64 body to RFC 2045 line length.
func wrap76(s string) string {
	var b strings.Builder
	for len(s) > 76 {
		b.WriteString(s[:76])
		b.WriteString("\r\n")
		s = s[76:]
	}
	b.WriteString(s)
	return b.String()
}

// isAuthError classifies a send failure as credential-related. Structured
// errors are authoritative; the substring heuristic only applies to errors
// that carry no structure at all.
func isAuthError(err error) bool {
	var ge *googleapi.Error
	if errors.As(err, &ge) {
		return ge.Code == 401 || ge.Code == 403
	}
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "OAuth") ||
		strings.Contains(s, "credential") ||
		strings.Contains(s, "client")
}
