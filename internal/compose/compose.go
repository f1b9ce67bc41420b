// Package compose builds the two notification bodies: the document message
// that accompanies an attached diamond pass PDF, and the access-code message
// for large vehicle counts. Bodies are fixed inline-styled HTML; the only
// templating is the same literal marker substitution the pass template uses.
package compose

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cardoffice/guestpass/internal/dates"
	"github.com/cardoffice/guestpass/internal/domain"
	"github.com/cardoffice/guestpass/internal/pkg/logger"
)

// InstructionAsset is the optional walkthrough screenshot inlined into the
// access-code message. Missing is fine; the image block is simply omitted.
const InstructionAsset = "image.png"

// DefaultEventName fills in for rows with no event name.
const DefaultEventName = "Event Name Not Provided"

// Composer builds notification bodies for one batch run.
type Composer struct {
	assetsDir string
	now       func() time.Time
}

// NewComposer creates a composer reading optional assets from assetsDir.
func NewComposer(assetsDir string) *Composer {
	return &Composer{assetsDir: assetsDir, now: time.Now}
}

// DocumentMessage builds the body that accompanies an attached pass PDF.
func (c *Composer) DocumentMessage(rec domain.PassRequest, start, end time.Time) string {
	return strings.NewReplacer(
		"{{first_name}}", rec.FirstName,
		"{{date_range}}", dates.FormatLongRange(start, end),
		"{{pass_number}}", rec.PassNumber,
	).Replace(documentBodyHTML)
}

// CodeMessage builds the access-code body. The instructional image is
// best-effort: when the asset cannot be read the <img> element is omitted
// and the message still composes.
func (c *Composer) CodeMessage(rec domain.PassRequest, start, end time.Time) string {
	event := rec.Event
	if event == "" {
		event = DefaultEventName
	}

	imgTag := ""
	data, err := os.ReadFile(filepath.Join(c.assetsDir, InstructionAsset))
	if err != nil {
		logger.Warn("instruction image unavailable, composing without it",
			"asset", InstructionAsset, "error", err)
	} else {
		imgTag = `<img src="data:image/png;base64,` +
			base64.StdEncoding.EncodeToString(data) + `" alt="ParkMobile Interface">`
	}

	return strings.NewReplacer(
		"{{first_name}}", rec.FirstName,
		"{{event}}", event,
		"{{date_range}}", dates.FormatLongRange(start, end),
		"{{access_code}}", rec.AccessCode,
		"{{generated_date}}", dates.FormatLong(c.now()),
		"{{instruction_img}}", imgTag,
		"{{pass_number}}", rec.PassNumber,
	).Replace(codeBodyHTML)
}
