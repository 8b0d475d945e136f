package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventbill/internal/model"
	"eventbill/internal/service"
)

func CreateQuotationHandler(quotationSvc *service.QuotationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q model.Quotation
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := quotationSvc.Create(r.Context(), q)
		if err != nil {
			if errors.Is(err, service.ErrQuotationInvalid) {
				http.Error(w, "customer and quotationNumber are required", http.StatusBadRequest)
				return
			}
			slog.Error("quotation create failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListQuotationsHandler(quotationSvc *service.QuotationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quotations, err := quotationSvc.List(r.Context())
		if err != nil {
			slog.Error("quotation list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if quotations == nil {
			quotations = []model.Quotation{}
		}
		writeJSON(w, http.StatusOK, quotations)
	}
}
