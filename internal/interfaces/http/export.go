package http

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"spendwise/internal/domain/export"
	"spendwise/internal/domain/transaction"
	"spendwise/internal/shared/middleware"
)

type ExportHandler struct {
	service  *transaction.Service
	printer  export.PrintEngine
	files    export.FileStore
	share    export.ShareSink
	currency string
}

func NewExportHandler(service *transaction.Service, printer export.PrintEngine, files export.FileStore, share export.ShareSink, currency string) *ExportHandler {
	return &ExportHandler{service: service, printer: printer, files: files, share: share, currency: currency}
}

// HandleExport runs the export pipeline for the caller's transactions. By
// default the response itself acts as the share target and the artifact is
// streamed back as a download; with target=device the artifact is handed to
// the host's configured share command instead.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal := middleware.PrincipalFrom(r.Context())
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	format, err := parseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	transactions, err := h.service.List(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = h.currency
	}

	toDevice := r.URL.Query().Get("target") == "device"
	if toDevice && h.share == nil {
		writeError(w, r, export.ErrUnavailable)
		return
	}

	download := &downloadSink{w: w}
	var sink export.ShareSink = download
	if toDevice {
		sink = h.share
	}
	pipeline := export.NewPipeline(sink, h.printer, h.files)

	state := &export.State{
		Transactions: transactions,
		Format:       format,
		Currency:     currency,
		Report: export.ReportOptions{
			Title:           r.URL.Query().Get("title"),
			GroupByCategory: r.URL.Query().Get("groupByCategory") == "true",
		},
	}

	if err := pipeline.Export(r.Context(), state); err != nil {
		if !download.wrote {
			writeError(w, r, err)
		}
		return
	}
	if toDevice {
		writeJSON(w, http.StatusOK, map[string]any{"status": "shared"})
	}
}

func parseFormat(raw string) (export.Format, error) {
	switch export.Format(raw) {
	case export.FormatCSV, "":
		return export.FormatCSV, nil
	case export.FormatJSON:
		return export.FormatJSON, nil
	case export.FormatPDF:
		return export.FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown export format %q", raw)
	}
}

// downloadSink is the share target for HTTP exports: it streams the scratch
// file into the response as an attachment.
type downloadSink struct {
	w     http.ResponseWriter
	wrote bool
}

func (s *downloadSink) IsAvailable(_ context.Context) bool {
	return true
}

func (s *downloadSink) Share(_ context.Context, uri string, opts export.ShareOptions) error {
	data, err := os.ReadFile(uri)
	if err != nil {
		return fmt.Errorf("reading export artifact: %w", err)
	}

	s.w.Header().Set("Content-Type", opts.MimeType)
	s.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(uri)))
	s.wrote = true
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("writing export response: %w", err)
	}
	return nil
}
