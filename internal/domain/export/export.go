// Package export turns a sequence of transactions into CSV, JSON, or an
// HTML-backed PDF and hands the result to a share sink. Serialization is
// pure; the pipeline stages that touch the filesystem and the sink run in
// a fixed order and fail loudly with the failing stage attached.
package export

import (
	"context"
	"errors"
	"fmt"
)

// Format selects the artifact produced by the pipeline.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ErrUnavailable is returned when no share sink exists on this device.
var ErrUnavailable = errors.New("sharing is not available on this device")

// Error marks a failed pipeline stage. Stage carries the step name so
// telemetry can identify where the export broke.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export failed at %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ShareOptions describe the payload to the share sink.
type ShareOptions struct {
	MimeType    string
	DialogTitle string
	UTI         string
}

// ShareSink hands a local file to a user-chosen application.
type ShareSink interface {
	IsAvailable(ctx context.Context) bool
	Share(ctx context.Context, uri string, opts ShareOptions) error
}

// PrintEngine renders HTML into a PDF file and returns its URI.
type PrintEngine interface {
	PrintToFile(ctx context.Context, html string) (string, error)
}

// FileStore is the cache-directory file system the pipeline writes
// scratch files into.
type FileStore interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	CopyFile(ctx context.Context, src, dst string) error
	CacheDir() string
}

// shareOptionsFor maps a format to its MIME type and platform
// uniform-type-identifier.
func shareOptionsFor(f Format) ShareOptions {
	switch f {
	case FormatJSON:
		return ShareOptions{
			MimeType:    "application/json",
			DialogTitle: "Export Transactions",
			UTI:         "public.json",
		}
	case FormatPDF:
		return ShareOptions{
			MimeType:    "application/pdf",
			DialogTitle: "Export Transactions",
			UTI:         "com.adobe.pdf",
		}
	default:
		return ShareOptions{
			MimeType:    "text/csv",
			DialogTitle: "Export Transactions",
			UTI:         "public.comma-separated-values-text",
		}
	}
}
