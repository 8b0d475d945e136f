package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbill/internal/model"
	"eventbill/internal/pdf"
	"eventbill/internal/service"
)

var invoiceColumns = []string{
	"id", "customer", "invoice_number", "phone_number", "address",
	"email_id", "gstin_number", "date_time", "venue_details",
}

func newInvoiceRouter(t *testing.T, legacyEmpty404 bool) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return invoiceRoutes(db, legacyEmpty404), mock
}

func invoiceRoutes(db *sql.DB, legacyEmpty404 bool) chi.Router {
	svc := service.NewInvoiceService(db, nil)
	renderer := pdf.NewRenderer()

	r := chi.NewRouter()
	r.Get("/invoice", ListInvoicesHandler(svc, legacyEmpty404))
	r.Post("/invoice", CreateInvoiceHandler(svc))
	r.Get("/invoice/{id}", GetInvoiceHandler(svc))
	r.Put("/invoice/{id}", UpdateInvoiceHandler(svc))
	r.Delete("/invoice/{id}", DeleteInvoiceHandler(svc))
	r.Get("/invoice/{id}/pdf", InvoicePDFHandler(svc, renderer))
	return r
}

func TestCreateInvoiceReturnsCreatedRecord(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	body := `{"customer":"Acme","invoiceNumber":"INV-1","phoneNumber":"555-0100","address":"1 Main St","emailId":"a@x.com","gstinNumber":"GST1","dateTime":"2024-01-01T10:00","venueDetails":"Hall A"}`
	req := httptest.NewRequest(http.MethodPost, "/invoice", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got model.Invoice
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Acme", got.Customer)
	assert.Equal(t, "INV-1", got.InvoiceNumber)
	assert.Equal(t, "Hall A", got.VenueDetails)
}

func TestCreateInvoiceMissingFields(t *testing.T) {
	r, _ := newInvoiceRouter(t, false)

	req := httptest.NewRequest(http.MethodPost, "/invoice", strings.NewReader(`{"customer":"Acme"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetInvoiceNotFound(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectQuery("SELECT (.+) FROM invoices").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(invoiceColumns))

	req := httptest.NewRequest(http.MethodGet, "/invoice/99", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListInvoicesEmptyDefault(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectQuery("SELECT (.+) FROM invoices").
		WillReturnRows(sqlmock.NewRows(invoiceColumns))

	req := httptest.NewRequest(http.MethodGet, "/invoice", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListInvoicesEmptyLegacy404(t *testing.T) {
	r, mock := newInvoiceRouter(t, true)

	mock.ExpectQuery("SELECT (.+) FROM invoices").
		WillReturnRows(sqlmock.NewRows(invoiceColumns))

	req := httptest.NewRequest(http.MethodGet, "/invoice", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateInvoiceUnknownID(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectExec("UPDATE invoices").
		WillReturnResult(sqlmock.NewResult(0, 0))

	body := `{"customer":"Acme","invoiceNumber":"INV-1"}`
	req := httptest.NewRequest(http.MethodPut, "/invoice/99", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteInvoice(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectExec("DELETE FROM invoices").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/invoice/7", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestInvoicePDFExport(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectQuery("SELECT (.+) FROM invoices").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(invoiceColumns).
			AddRow(7, "Acme", "INV-1", "555-0100", "1 Main St", "a@x.com", "GST1", "2024-01-01T10:00", "Hall A"))

	req := httptest.NewRequest(http.MethodGet, "/invoice/7/pdf", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice_7.pdf", rr.Header().Get("Content-Disposition"))
	assert.NotZero(t, rr.Body.Len())
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
	assert.True(t, bytes.Contains(rr.Body.Bytes(), []byte("Customer Name: Acme")))
}

func TestInvoicePDFExportAbsentID(t *testing.T) {
	r, mock := newInvoiceRouter(t, false)

	mock.ExpectQuery("SELECT (.+) FROM invoices").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(invoiceColumns))

	req := httptest.NewRequest(http.MethodGet, "/invoice/99/pdf", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, rr.Body.Len())
}
