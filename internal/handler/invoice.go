package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventbill/internal/metrics"
	"eventbill/internal/model"
	"eventbill/internal/pdf"
	"eventbill/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func invoiceID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// ListInvoicesHandler returns every invoice. An empty store yields 200 with
// an empty array unless the legacy 404 compatibility mode is enabled.
func ListInvoicesHandler(invoiceSvc *service.InvoiceService, legacyEmpty404 bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoices, err := invoiceSvc.List(r.Context())
		if err != nil {
			slog.Error("invoice list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(invoices) == 0 {
			if legacyEmpty404 {
				http.Error(w, "no invoices found", http.StatusNotFound)
				return
			}
			invoices = []model.Invoice{}
		}

		writeJSON(w, http.StatusOK, invoices)
	}
}

func CreateInvoiceHandler(invoiceSvc *service.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inv model.Invoice
		if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := invoiceSvc.Create(r.Context(), inv)
		if err != nil {
			if errors.Is(err, service.ErrInvoiceInvalid) {
				http.Error(w, "customer and invoiceNumber are required", http.StatusBadRequest)
				return
			}
			slog.Error("invoice create failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		metrics.InvoicesCreated.Inc()
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetInvoiceHandler(invoiceSvc *service.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := invoiceID(r)
		if err != nil {
			http.Error(w, "invalid invoice id", http.StatusBadRequest)
			return
		}

		inv, err := invoiceSvc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrInvoiceNotFound) {
				http.Error(w, "invoice not found", http.StatusNotFound)
				return
			}
			slog.Error("invoice get failed", "id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, inv)
	}
}

func UpdateInvoiceHandler(invoiceSvc *service.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := invoiceID(r)
		if err != nil {
			http.Error(w, "invalid invoice id", http.StatusBadRequest)
			return
		}

		var inv model.Invoice
		if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := invoiceSvc.Update(r.Context(), inv, id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvoiceInvalid):
				http.Error(w, "customer and invoiceNumber are required", http.StatusBadRequest)
			case errors.Is(err, service.ErrInvoiceNotFound):
				http.Error(w, "invoice not found", http.StatusNotFound)
			default:
				slog.Error("invoice update failed", "id", id, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteInvoiceHandler(invoiceSvc *service.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := invoiceID(r)
		if err != nil {
			http.Error(w, "invalid invoice id", http.StatusBadRequest)
			return
		}

		if err := invoiceSvc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, service.ErrInvoiceNotFound) {
				http.Error(w, "invoice not found", http.StatusNotFound)
				return
			}
			slog.Error("invoice delete failed", "id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// InvoicePDFHandler streams the invoice as a PDF download.
func InvoicePDFHandler(invoiceSvc *service.InvoiceService, renderer *pdf.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := invoiceID(r)
		if err != nil {
			http.Error(w, "invalid invoice id", http.StatusBadRequest)
			return
		}

		inv, err := invoiceSvc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrInvoiceNotFound) {
				// Empty body: the download endpoint never serves partial bytes.
				w.WriteHeader(http.StatusNotFound)
				return
			}
			slog.Error("invoice get failed", "id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := renderer.Render(*inv)
		if err != nil {
			slog.Error("pdf render failed", "id", id, "error", err)
			http.Error(w, "pdf generation failed", http.StatusInternalServerError)
			return
		}

		metrics.PDFRenders.Inc()
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", id))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfBytes); err != nil {
			slog.Error("pdf write failed", "id", id, "error", err)
		}
	}
}
