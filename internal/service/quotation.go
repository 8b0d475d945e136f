package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventbill/internal/model"
)

var ErrQuotationInvalid = errors.New("quotation failed validation")

type QuotationService struct {
	db *sql.DB
}

func NewQuotationService(db *sql.DB) *QuotationService {
	return &QuotationService{db: db}
}

func (s *QuotationService) Create(ctx context.Context, q model.Quotation) (*model.Quotation, error) {
	if q.Customer == "" || q.QuotationNumber == "" {
		return nil, ErrQuotationInvalid
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO quotations (customer, quotation_number, email_id, date_time, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, q.Customer, q.QuotationNumber, q.EmailID, q.DateTime, q.Details)

	if err := row.Scan(&q.ID); err != nil {
		return nil, fmt.Errorf("insert quotation: %w", err)
	}

	return &q, nil
}

func (s *QuotationService) List(ctx context.Context) ([]model.Quotation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer, quotation_number, email_id, date_time, details
		FROM quotations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query quotations: %w", err)
	}
	defer rows.Close()

	var quotations []model.Quotation
	for rows.Next() {
		var q model.Quotation
		if err := rows.Scan(&q.ID, &q.Customer, &q.QuotationNumber, &q.EmailID, &q.DateTime, &q.Details); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return quotations, nil
}
