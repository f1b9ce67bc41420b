// Package batch orchestrates one fulfillment run: iterate rows, decide the
// branch per row, generate and dispatch, and accumulate per-row failures
// without ever aborting the batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cardoffice/guestpass/internal/dates"
	"github.com/cardoffice/guestpass/internal/domain"
	"github.com/cardoffice/guestpass/internal/pkg/logger"
	"github.com/cardoffice/guestpass/internal/render"
)

// DocumentGenerator produces the printable pass artifact for a Diamond row.
type DocumentGenerator interface {
	Generate(ctx context.Context, f render.Fields, outputPath string) (string, error)
}

// Composer builds the two notification bodies.
type Composer interface {
	DocumentMessage(rec domain.PassRequest, start, end time.Time) string
	CodeMessage(rec domain.PassRequest, start, end time.Time) string
}

// Dispatcher delivers one composed message, optionally with an attachment.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, htmlBody, attachmentPath string) error
}

// Options configures a run.
type Options struct {
	OutputDir          string
	DiamondMaxVehicles int
	DiamondSubject     string
	CodeSubject        string
}

// Runner drives the row-wise pipeline. Rows are processed strictly in order;
// a failure in one row never stops the rest.
type Runner struct {
	gen  DocumentGenerator
	comp Composer
	disp Dispatcher
	opts Options
	now  func() time.Time
}

// NewRunner creates a batch runner.
func NewRunner(gen DocumentGenerator, comp Composer, disp Dispatcher, opts Options) *Runner {
	if opts.DiamondMaxVehicles == 0 {
		opts.DiamondMaxVehicles = 10
	}
	if opts.DiamondSubject == "" {
		opts.DiamondSubject = "Diamond Parking Pass"
	}
	if opts.CodeSubject == "" {
		opts.CodeSubject = "ParkMobile Access Code"
	}
	return &Runner{gen: gen, comp: comp, disp: disp, opts: opts, now: time.Now}
}

// Run processes every flagged row and returns the accumulated outcome.
func (r *Runner) Run(ctx context.Context, rows []domain.PassRequest) domain.Outcome {
	var out domain.Outcome
	for _, rec := range rows {
		if !rec.Generate {
			continue
		}
		r.processRow(ctx, rec, &out)
	}
	return out
}

func (r *Runner) processRow(ctx context.Context, rec domain.PassRequest, out *domain.Outcome) {
	// Row boundary: nothing escapes into the batch loop.
	defer func() {
		if p := recover(); p != nil {
			logger.Error("row processing panicked", "pass_number", rec.PassNumber, "panic", p)
			out.Record(rec.PassNumber, domain.KindUnexpected, fmt.Sprintf("Unexpected error - %v", p))
		}
	}()

	start, startErr := dates.Normalize(rec.StartRaw)
	end, endErr := dates.Normalize(rec.EndRaw)
	if startErr != nil || endErr != nil {
		out.Record(rec.PassNumber, domain.KindDateInvalid,
			fmt.Sprintf("Invalid dates - START: %s, END: %s", rec.StartRaw, rec.EndRaw))
		return
	}

	if rec.VehicleCount <= r.opts.DiamondMaxVehicles {
		r.diamondPath(ctx, rec, start, end, out)
	} else {
		r.codePath(ctx, rec, start, end, out)
	}
}

func (r *Runner) diamondPath(ctx context.Context, rec domain.PassRequest, start, end time.Time, out *domain.Outcome) {
	filename := SanitizeFilename(fmt.Sprintf("diamondPass_%s_%s.pdf", rec.Department, rec.PassNumber))
	outputPath := filepath.Join(r.opts.OutputDir, filename)

	artifact, err := r.gen.Generate(ctx, r.passFields(rec, start, end), outputPath)
	if err != nil {
		out.Record(rec.PassNumber, generationKind(err), "Failed to generate PDF - "+err.Error())
		return
	}

	body := r.comp.DocumentMessage(rec, start, end)
	if err := r.disp.Send(ctx, rec.Email, r.opts.DiamondSubject, body, artifact); err != nil {
		out.Record(rec.PassNumber, domain.KindSend,
			"Failed to send Diamond Pass email to "+rec.Email)
		return
	}
	out.DiamondPasses++
	out.EmailsSent++
}

func (r *Runner) codePath(ctx context.Context, rec domain.PassRequest, start, end time.Time, out *domain.Outcome) {
	body := r.comp.CodeMessage(rec, start, end)
	if err := r.disp.Send(ctx, rec.Email, r.opts.CodeSubject, body, ""); err != nil {
		out.Record(rec.PassNumber, domain.KindSend,
			"Failed to send ParkMobile email to "+rec.Email)
		return
	}
	out.EmailsSent++
}

// passFields builds the template fields for one Diamond row.
func (r *Runner) passFields(rec domain.PassRequest, start, end time.Time) render.Fields {
	addLot := ""
	if rec.AdditionalLot != "" {
		addLot = "OR " + rec.AdditionalLot
	}
	year := r.now().Year()
	return render.Fields{
		AcademicYearStart: strconv.Itoa(year),
		AcademicYearEnd:   strconv.Itoa(year + 1),
		ValidUntil:        dates.FormatRange(start, end),
		AdditionalLot:     addLot,
		PassNumber:        rec.PassNumber,
	}
}

func generationKind(err error) domain.ErrorKind {
	switch {
	case errors.Is(err, render.ErrTemplateMissing):
		return domain.KindTemplateMissing
	case errors.Is(err, render.ErrAssetMissing):
		return domain.KindAssetMissing
	}
	return domain.KindDocumentGen
}

// SanitizeFilename strips everything outside [A-Za-z0-9_.-], so department
// names with spaces or slashes cannot escape the output directory.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '_', c == '-', c == '.':
			b.WriteRune(c)
		}
	}
	return b.String()
}

// WriteSummary prints the terminal tally: counters first, then the ordered
// error list when non-empty.
func WriteSummary(w io.Writer, out domain.Outcome) {
	fmt.Fprintf(w, "Diamond Passes generated: %d\n", out.DiamondPasses)
	fmt.Fprintf(w, "Total emails sent: %d\n", out.EmailsSent)
	if len(out.Errors) > 0 {
		fmt.Fprintln(w, "\nErrors encountered:")
		for _, e := range out.Errors {
			fmt.Fprintf(w, "- %s\n", e.Error())
		}
	}
}
