package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventbill/internal/model"
)

var ErrVendorInvalid = errors.New("vendor failed validation")

type VendorService struct {
	db *sql.DB
}

func NewVendorService(db *sql.DB) *VendorService {
	return &VendorService{db: db}
}

func (s *VendorService) Create(ctx context.Context, v model.Vendor) (*model.Vendor, error) {
	if v.Name == "" {
		return nil, ErrVendorInvalid
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO vendors (name, phone_number, email_id, address, service)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, v.Name, v.PhoneNumber, v.EmailID, v.Address, v.Service)

	if err := row.Scan(&v.ID); err != nil {
		return nil, fmt.Errorf("insert vendor: %w", err)
	}

	return &v, nil
}

func (s *VendorService) List(ctx context.Context) ([]model.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone_number, email_id, address, service
		FROM vendors
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []model.Vendor
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.PhoneNumber, &v.EmailID, &v.Address, &v.Service); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return vendors, nil
}
