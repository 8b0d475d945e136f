package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventbill/internal/model"
	"eventbill/internal/service"
)

func CreateVendorHandler(vendorSvc *service.VendorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v model.Vendor
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := vendorSvc.Create(r.Context(), v)
		if err != nil {
			if errors.Is(err, service.ErrVendorInvalid) {
				http.Error(w, "name is required", http.StatusBadRequest)
				return
			}
			slog.Error("vendor create failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListVendorsHandler(vendorSvc *service.VendorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendors, err := vendorSvc.List(r.Context())
		if err != nil {
			slog.Error("vendor list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if vendors == nil {
			vendors = []model.Vendor{}
		}
		writeJSON(w, http.StatusOK, vendors)
	}
}
