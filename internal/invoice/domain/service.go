package domain

import (
	"context"
	"errors"
)

// Service is the invoice application surface consumed by the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Save(ctx context.Context, inv Invoice) (Invoice, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (Invoice, error)
}

var (
	ErrInvoiceNotFound  = errors.New("invoice_not_found")
	ErrInvalidInvoiceID = errors.New("invalid_invoice_id")
)
