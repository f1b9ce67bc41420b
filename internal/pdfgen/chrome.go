package pdfgen

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/cardoffice/guestpass/internal/pkg/logger"
)

// Letter paper in inches, zero margins. The pass template owns the full page.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11.0
)

// ChromeConverter prints HTML to PDF through a headless Chrome instance.
// The browser is launched lazily on first use and reused for the rest of
// the batch. Not safe for concurrent use; the batch is strictly sequential.
type ChromeConverter struct {
	bin         string
	settleDelay time.Duration

	mu      sync.Mutex
	browser *rod.Browser
}

// NewChromeConverter creates a converter. bin may be empty, in which case
// the launcher resolves a system Chrome/Chromium. settleDelay bounds how long
// embedded active content gets to settle before capture.
func NewChromeConverter(bin string, settleDelay time.Duration) *ChromeConverter {
	return &ChromeConverter{bin: bin, settleDelay: settleDelay}
}

func (c *ChromeConverter) ensureBrowser() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New().Headless(true).Set("allow-file-access-from-files")
	if c.bin != "" {
		l = l.Bin(c.bin)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect chrome: %w", err)
	}
	logger.Debug("headless chrome ready", "control_url", u)
	c.browser = browser
	return browser, nil
}

// Convert prints the given HTML to PDF bytes.
func (c *ChromeConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	browser, err := c.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	// Bounded settle delay for embedded active content before capture.
	select {
	case <-time.After(c.settleDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: false,
		Scale:             fptr(1.0),
		PaperWidth:        fptr(paperWidthIn),
		PaperHeight:       fptr(paperHeightIn),
		MarginTop:         fptr(0),
		MarginBottom:      fptr(0),
		MarginLeft:        fptr(0),
		MarginRight:       fptr(0),
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return io.ReadAll(stream)
}

// Close shuts the shared browser down after the batch completes.
func (c *ChromeConverter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		_ = c.browser.Close()
		c.browser = nil
	}
}

func fptr(v float64) *float64 { return &v }
