// Package service implements the invoice application surface on top of
// the document store.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/inkvoice/inkvoice/internal/invoice/compute"
	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/format"
	"github.com/inkvoice/inkvoice/internal/store"
	"go.uber.org/zap"
)

const StoreKind = "invoices"

type Service struct {
	repo store.Store[domain.Invoice]
	node *snowflake.Node
	log  *zap.Logger
}

func NewService(repo store.Store[domain.Invoice], node *snowflake.Node, log *zap.Logger) domain.Service {
	return &Service{repo: repo, node: node, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Invoice, 0, len(records))
	for _, rec := range records {
		rec.Normalize()
		out = append(out, *rec)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Invoice{}, domain.ErrInvalidInvoiceID
	}

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if rec == nil {
		return domain.Invoice{}, domain.ErrInvoiceNotFound
	}

	rec.Normalize()
	return *rec, nil
}

// Save persists the invoice as a full snapshot. A missing ID means first
// save and mints one; an existing ID overwrites the prior snapshot.
//
// Totals are recomputed here from the items; a derived day-count quantity
// is never written back over the user's stored quantity, it is recomputed
// from the dates by every consumer instead.
func (s *Service) Save(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	now := time.Now().UTC()

	inv.ID = strings.TrimSpace(inv.ID)
	if inv.ID == "" {
		inv.ID = s.node.Generate().String()
		inv.CreatedAt = now
	} else {
		existing, err := s.repo.Get(ctx, inv.ID)
		if err != nil {
			return domain.Invoice{}, err
		}
		if existing == nil {
			return domain.Invoice{}, domain.ErrInvoiceNotFound
		}
		inv.CreatedAt = existing.CreatedAt
	}
	inv.UpdatedAt = now

	inv.Normalize()
	resolved, totals := compute.AggregateInvoice(inv)
	inv.SubTotal = domain.Number(totals.SubTotal)
	inv.TotalFee = domain.Number(totals.TotalFee)

	if err := s.repo.Set(ctx, inv.ID, &inv); err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice saved",
		zap.String("invoice_id", inv.ID),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Int("items", len(resolved)),
		zap.Float64("total", totals.TotalFee),
	)
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// Duplicate copies the invoice under a fresh ID with a suffixed number.
func (s *Service) Duplicate(ctx context.Context, id string) (domain.Invoice, error) {
	source, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}

	copied := source
	copied.ID = ""
	copied.InvoiceNumber = format.DuplicateNumber(source.InvoiceNumber)
	copied.Items = append([]domain.LineItem(nil), source.Items...)

	return s.Save(ctx, copied)
}
