package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"eventbill/internal/events"
	"eventbill/internal/model"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvoiceInvalid  = errors.New("invoice failed validation")
)

type InvoiceService struct {
	db        *sql.DB
	publisher events.Publisher
}

func NewInvoiceService(db *sql.DB, publisher events.Publisher) *InvoiceService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &InvoiceService{db: db, publisher: publisher}
}

const invoiceColumns = `id, customer, invoice_number, phone_number, address, email_id, gstin_number, date_time, venue_details`

func validateInvoice(inv model.Invoice) error {
	if inv.Customer == "" || inv.InvoiceNumber == "" {
		return ErrInvoiceInvalid
	}
	return nil
}

func (s *InvoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.Customer, &inv.InvoiceNumber, &inv.PhoneNumber,
			&inv.Address, &inv.EmailID, &inv.GstinNumber, &inv.DateTime, &inv.VenueDetails); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return invoices, nil
}

func (s *InvoiceService) Create(ctx context.Context, inv model.Invoice) (*model.Invoice, error) {
	if err := validateInvoice(inv); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO invoices (customer, invoice_number, phone_number, address, email_id, gstin_number, date_time, venue_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, inv.Customer, inv.InvoiceNumber, inv.PhoneNumber, inv.Address, inv.EmailID,
		inv.GstinNumber, inv.DateTime, inv.VenueDetails)

	if err := row.Scan(&inv.ID); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	s.publish(ctx, "invoice.created", inv)
	return &inv, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id int) (*model.Invoice, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE id = $1
	`, id)

	var inv model.Invoice
	err := row.Scan(&inv.ID, &inv.Customer, &inv.InvoiceNumber, &inv.PhoneNumber,
		&inv.Address, &inv.EmailID, &inv.GstinNumber, &inv.DateTime, &inv.VenueDetails)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	return &inv, nil
}

// Update overwrites the record matching id. It never creates: an unknown id
// reports ErrInvoiceNotFound.
func (s *InvoiceService) Update(ctx context.Context, inv model.Invoice, id int) (*model.Invoice, error) {
	if err := validateInvoice(inv); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE invoices
		SET customer = $1, invoice_number = $2, phone_number = $3, address = $4,
		    email_id = $5, gstin_number = $6, date_time = $7, venue_details = $8
		WHERE id = $9
	`, inv.Customer, inv.InvoiceNumber, inv.PhoneNumber, inv.Address, inv.EmailID,
		inv.GstinNumber, inv.DateTime, inv.VenueDetails, id)
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrInvoiceNotFound
	}

	inv.ID = id
	s.publish(ctx, "invoice.updated", inv)
	return &inv, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}

	s.publish(ctx, "invoice.deleted", map[string]int{"id": id})
	return nil
}

func (s *InvoiceService) publish(ctx context.Context, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		slog.Error("event publish failed", "event", key, "error", err)
	}
}
