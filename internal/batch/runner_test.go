package batch_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardoffice/guestpass/internal/batch"
	"github.com/cardoffice/guestpass/internal/domain"
	"github.com/cardoffice/guestpass/internal/render"
)

// fakeGenerator records generate calls and writes a marker file so the
// dispatcher fake can see a real path.
type fakeGenerator struct {
	calls  []string // output paths requested
	fields []render.Fields
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, fields render.Fields, outputPath string) (string, error) {
	f.calls = append(f.calls, outputPath)
	f.fields = append(f.fields, fields)
	if f.err != nil {
		return "", f.err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, []byte("%PDF"), 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}

type fakeComposer struct{}

func (fakeComposer) DocumentMessage(rec domain.PassRequest, start, end time.Time) string {
	return "doc-body-" + rec.PassNumber
}

func (fakeComposer) CodeMessage(rec domain.PassRequest, start, end time.Time) string {
	return "code-body-" + rec.PassNumber
}

type sentMessage struct {
	To, Subject, Body, Attachment string
}

type fakeDispatcher struct {
	sent []sentMessage
	err  error
}

func (f *fakeDispatcher) Send(_ context.Context, to, subject, body, attachmentPath string) error {
	f.sent = append(f.sent, sentMessage{to, subject, body, attachmentPath})
	return f.err
}

func validRow() domain.PassRequest {
	return domain.PassRequest{
		PassNumber:   "101",
		FirstName:    "Pat",
		Email:        "pat@nd.edu",
		Department:   "ABC",
		Generate:     true,
		VehicleCount: 3,
		StartRaw:     "2025-01-30T08:00:00",
		EndRaw:       "2025-01-30T08:00:00",
	}
}

func newRunner(t *testing.T, gen *fakeGenerator, disp *fakeDispatcher) *batch.Runner {
	t.Helper()
	return batch.NewRunner(gen, fakeComposer{}, disp, batch.Options{OutputDir: t.TempDir()})
}

func TestDiamondPathScenario(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	out := r.Run(context.Background(), []domain.PassRequest{validRow()})

	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0], "diamondPass_ABC_101")
	assert.Equal(t, "01/30/25", gen.fields[0].ValidUntil)

	require.Len(t, disp.sent, 1)
	assert.Equal(t, "pat@nd.edu", disp.sent[0].To)
	assert.Equal(t, "Diamond Parking Pass", disp.sent[0].Subject)
	assert.Equal(t, "doc-body-101", disp.sent[0].Body)
	assert.Equal(t, gen.calls[0], disp.sent[0].Attachment)

	assert.Equal(t, 1, out.DiamondPasses)
	assert.Equal(t, 1, out.EmailsSent)
	assert.Empty(t, out.Errors)
}

func TestCodePathScenario(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	rec := validRow()
	rec.VehicleCount = 25
	out := r.Run(context.Background(), []domain.PassRequest{rec})

	assert.Empty(t, gen.calls, "no document on the code path")
	require.Len(t, disp.sent, 1)
	assert.Equal(t, "ParkMobile Access Code", disp.sent[0].Subject)
	assert.Equal(t, "code-body-101", disp.sent[0].Body)
	assert.Empty(t, disp.sent[0].Attachment)

	assert.Equal(t, 0, out.DiamondPasses)
	assert.Equal(t, 1, out.EmailsSent)
	assert.Empty(t, out.Errors)
}

func TestBranchBoundary(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	at := validRow()
	at.PassNumber = "10"
	at.VehicleCount = 10
	above := validRow()
	above.PassNumber = "11"
	above.VehicleCount = 11

	out := r.Run(context.Background(), []domain.PassRequest{at, above})

	// 10 is inclusive on the Diamond side; 11 goes to the code path.
	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0], "diamondPass_ABC_10")
	assert.Equal(t, 1, out.DiamondPasses)
	assert.Equal(t, 2, out.EmailsSent)
	assert.Empty(t, out.Errors)
}

func TestGenerateFlagFalseSkipsSilently(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	rec := validRow()
	rec.Generate = false
	out := r.Run(context.Background(), []domain.PassRequest{rec})

	assert.Empty(t, gen.calls)
	assert.Empty(t, disp.sent)
	assert.Empty(t, out.Errors)
	assert.Zero(t, out.DiamondPasses)
	assert.Zero(t, out.EmailsSent)
}

func TestInvalidDatesRecordOneErrorOnly(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	rec := validRow()
	rec.StartRaw = "garbage"
	out := r.Run(context.Background(), []domain.PassRequest{rec})

	assert.Empty(t, gen.calls)
	assert.Empty(t, disp.sent)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, domain.KindDateInvalid, out.Errors[0].Kind)
	assert.Equal(t, "101", out.Errors[0].PassNumber)
}

func TestGenerationFailureSkipsSend(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("chrome exploded")}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	out := r.Run(context.Background(), []domain.PassRequest{validRow()})

	assert.Empty(t, disp.sent, "no send after generation failure")
	require.Len(t, out.Errors, 1)
	assert.Equal(t, domain.KindDocumentGen, out.Errors[0].Kind)
	assert.Zero(t, out.DiamondPasses)
}

func TestTemplateMissingClassification(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("wrap: %w", render.ErrTemplateMissing)}
	disp := &fakeDispatcher{}
	r := newRunner(t, gen, disp)

	out := r.Run(context.Background(), []domain.PassRequest{validRow()})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, domain.KindTemplateMissing, out.Errors[0].Kind)
}

func TestSendFailureRecordedAndBatchContinues(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{err: errors.New("transport down")}
	r := newRunner(t, gen, disp)

	first := validRow()
	second := validRow()
	second.PassNumber = "102"
	second.VehicleCount = 30

	out := r.Run(context.Background(), []domain.PassRequest{first, second})

	// Both rows attempted despite failures; both recorded in order.
	require.Len(t, out.Errors, 2)
	assert.Equal(t, "101", out.Errors[0].PassNumber)
	assert.Equal(t, "102", out.Errors[1].PassNumber)
	assert.Equal(t, domain.KindSend, out.Errors[0].Kind)
	assert.Zero(t, out.EmailsSent)
	assert.Zero(t, out.DiamondPasses)
}

// panickyComposer blows up on one pass number and behaves normally otherwise.
type panickyComposer struct {
	panicOn string
}

func (p panickyComposer) DocumentMessage(rec domain.PassRequest, start, end time.Time) string {
	if rec.PassNumber == p.panicOn {
		panic("nil template data")
	}
	return "doc-body-" + rec.PassNumber
}

func (p panickyComposer) CodeMessage(rec domain.PassRequest, start, end time.Time) string {
	if rec.PassNumber == p.panicOn {
		panic("nil template data")
	}
	return "code-body-" + rec.PassNumber
}

func TestRowPanicRecoveredAndBatchContinues(t *testing.T) {
	gen := &fakeGenerator{}
	disp := &fakeDispatcher{}
	r := batch.NewRunner(gen, panickyComposer{panicOn: "101"}, disp, batch.Options{OutputDir: t.TempDir()})

	first := validRow()
	second := validRow()
	second.PassNumber = "102"
	second.VehicleCount = 30

	out := r.Run(context.Background(), []domain.PassRequest{first, second})

	// The panicking row becomes one recorded error; the next row still ships.
	require.Len(t, out.Errors, 1)
	assert.Equal(t, domain.KindUnexpected, out.Errors[0].Kind)
	assert.Equal(t, "101", out.Errors[0].PassNumber)
	assert.Contains(t, out.Errors[0].Detail, "Unexpected error")

	require.Len(t, disp.sent, 1)
	assert.Equal(t, "code-body-102", disp.sent[0].Body)
	assert.Equal(t, 1, out.EmailsSent)
	assert.Zero(t, out.DiamondPasses)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "diamondPass_ArtDept_101.pdf",
		batch.SanitizeFilename("diamondPass_Art Dept_101.pdf"))
	assert.Equal(t, "diamondPass_AB_7.pdf",
		batch.SanitizeFilename("diamondPass_A/B_7.pdf"))
	assert.Equal(t, "a-b_c.1.pdf", batch.SanitizeFilename("a-b_c.1.pdf"))
}

func TestWriteSummary(t *testing.T) {
	var out domain.Outcome
	out.DiamondPasses = 2
	out.EmailsSent = 3
	out.Record("101", domain.KindSend, "Failed to send Diamond Pass email to pat@nd.edu")

	var buf bytes.Buffer
	batch.WriteSummary(&buf, out)

	s := buf.String()
	assert.Contains(t, s, "Diamond Passes generated: 2")
	assert.Contains(t, s, "Total emails sent: 3")
	assert.Contains(t, s, "Errors encountered:")
	assert.Contains(t, s, "- Pass 101: Failed to send Diamond Pass email to pat@nd.edu")
}

func TestWriteSummaryNoErrors(t *testing.T) {
	var buf bytes.Buffer
	batch.WriteSummary(&buf, domain.Outcome{DiamondPasses: 1, EmailsSent: 1})
	assert.False(t, strings.Contains(buf.String(), "Errors encountered"))
}
