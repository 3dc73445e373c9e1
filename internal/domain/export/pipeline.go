package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"spendwise/internal/domain/transaction"
)

// State is the shared state threaded through the pipeline steps.
type State struct {
	Transactions []*transaction.Transaction
	Format       Format
	Currency     string
	Report       ReportOptions

	Payload     []byte
	Filename    string
	ScratchURI  string
	RenderedURI string
	SharedURI   string
}

// Step is a single pipeline stage. Name tags failures for telemetry.
type Step interface {
	Name() string
	Execute(ctx context.Context, p *Pipeline, st *State) error
}

// Pipeline runs serialize → scratch-write → share against the device
// contracts. A single invocation is strictly ordered; concurrent
// invocations must be serialized by the caller.
type Pipeline struct {
	sink    ShareSink
	printer PrintEngine
	files   FileStore
}

func NewPipeline(sink ShareSink, printer PrintEngine, files FileStore) *Pipeline {
	return &Pipeline{sink: sink, printer: printer, files: files}
}

// Export runs the stage chain for the requested format. It returns
// ErrUnavailable when no share sink exists, and otherwise wraps any stage
// failure in *Error carrying the stage name. On failure the scratch file
// is left for the OS cache to reap and no share is performed.
func (p *Pipeline) Export(ctx context.Context, st *State) error {
	var steps []Step
	switch st.Format {
	case FormatPDF:
		steps = []Step{
			&CheckAvailabilityStep{},
			&SerializeStep{},
			&RenderPDFStep{},
			&CopyRenderedStep{},
			&ShareStep{},
		}
	default:
		steps = []Step{
			&CheckAvailabilityStep{},
			&SerializeStep{},
			&WriteScratchStep{},
			&ShareStep{},
		}
	}

	for _, step := range steps {
		if err := step.Execute(ctx, p, st); err != nil {
			if errors.Is(err, ErrUnavailable) {
				return ErrUnavailable
			}
			return &Error{Stage: step.Name(), Err: err}
		}
	}
	return nil
}

// CheckAvailabilityStep fails the whole export up front when the device
// has no share sink.
type CheckAvailabilityStep struct{}

func (s *CheckAvailabilityStep) Name() string { return "availability" }

func (s *CheckAvailabilityStep) Execute(ctx context.Context, p *Pipeline, st *State) error {
	if p.sink == nil || !p.sink.IsAvailable(ctx) {
		return ErrUnavailable
	}
	return nil
}

// SerializeStep produces the payload and filename for the chosen format.
// For PDF the payload is the HTML report handed to the print engine.
type SerializeStep struct{}

func (s *SerializeStep) Name() string { return "serialize" }

func (s *SerializeStep) Execute(ctx context.Context, p *Pipeline, st *State) error {
	now := time.Now()
	switch st.Format {
	case FormatCSV:
		st.Payload = []byte(TransactionsToCSV(st.Transactions))
		st.Filename = Filename("transactions", "csv", now)
	case FormatJSON:
		st.Payload = []byte(TransactionsToJSON(st.Transactions))
		st.Filename = Filename("transactions", "json", now)
	case FormatPDF:
		opts := st.Report
		opts.Currency = st.Currency
		st.Payload = []byte(BuildHTMLReport(st.Transactions, opts))
		st.Filename = Filename("report", "pdf", now)
	default:
		return fmt.Errorf("unknown export format %q", st.Format)
	}
	return nil
}

// WriteScratchStep persists the payload under the cache directory.
type WriteScratchStep struct{}

func (s *WriteScratchStep) Name() string { return "write" }

func (s *WriteScratchStep) Execute(ctx context.Context, p *Pipeline, st *State) error {
	path := filepath.Join(p.files.CacheDir(), st.Filename)
	if err := p.files.WriteFile(ctx, path, st.Payload); err != nil {
		return err
	}
	st.ScratchURI = path
	return nil
}

// RenderPDFStep hands the HTML report to the print engine.
type RenderPDFStep struct{}

func (s *RenderPDFStep) Name() string { return "print" }

func (s *RenderPDFStep) Execute(ctx context.Context, p *Pipeline, st *State) error {
	if p.printer == nil {
		return errors.New("no print engine configured")
	}
	uri, err := p.printer.PrintToFile(ctx, string(st.Payload))
	if err != nil {
		return err
	}
	st.RenderedURI = uri
	return nil
}

// CopyRenderedStep moves the print engine's output to a cache path
// bearing the generated filename.
type CopyRenderedStep struct{}

func (s *CopyRenderedStep) Name() string { return "copy" }

func (s *CopyRenderedStep) Execute(ctx context.Context, p *Pipeline, st *State) error {
	dst := filepath.Join(p.files.CacheDir(), st.Filename)
	if err := p.files.CopyFile(ctx, st.RenderedURI, dst); err != nil {
		return err
	}
	st.ScratchURI = dst
	return nil
}

// ShareStep invokes the share sink with the format's MIME type and UTI.
type ShareStep struct{}

func (s *ShareStep) Name() string { return "share" }

func (s *ShareStep) Execute(ctx context.Context, p *Pipeline, st *State) error {
	if err := p.sink.Share(ctx, st.ScratchURI, shareOptionsFor(st.Format)); err != nil {
		return err
	}
	st.SharedURI = st.ScratchURI
	return nil
}
