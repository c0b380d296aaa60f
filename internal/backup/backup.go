// Package backup moves the whole application state through a JSON
// envelope, and projects invoices to CSV/XLSX.
package backup

import (
	"context"
	"errors"
	"fmt"

	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/profile"
	"github.com/inkvoice/inkvoice/internal/store"
	"go.uber.org/zap"
)

// Envelope carries every persisted category. Restore replaces all four in
// full; it is not a merge.
type Envelope struct {
	CompanyProfile *profile.CompanyProfile    `json:"companyProfile"`
	Clients        []profile.Client           `json:"clients"`
	SavedItems     []profile.SavedItem        `json:"savedItems"`
	Invoices       []invoicedomain.Invoice    `json:"invoices"`
}

var ErrRestoreUnsupported = errors.New("store_does_not_support_restore")

type Service struct {
	invoices   store.Store[invoicedomain.Invoice]
	profiles   store.Store[profile.CompanyProfile]
	clients    store.Store[profile.Client]
	savedItems store.Store[profile.SavedItem]
	log        *zap.Logger
}

func NewService(
	invoices store.Store[invoicedomain.Invoice],
	profiles store.Store[profile.CompanyProfile],
	clients store.Store[profile.Client],
	savedItems store.Store[profile.SavedItem],
	log *zap.Logger,
) *Service {
	return &Service{
		invoices:   invoices,
		profiles:   profiles,
		clients:    clients,
		savedItems: savedItems,
		log:        log,
	}
}

// Export snapshots all state into an envelope.
func (s *Service) Export(ctx context.Context) (Envelope, error) {
	env := Envelope{
		Clients:    []profile.Client{},
		SavedItems: []profile.SavedItem{},
		Invoices:   []invoicedomain.Invoice{},
	}

	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return Envelope{}, err
	}
	if len(profiles) > 0 {
		env.CompanyProfile = profiles[0]
	}

	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		return Envelope{}, err
	}
	for _, c := range clients {
		env.Clients = append(env.Clients, *c)
	}

	items, err := s.savedItems.ListAll(ctx)
	if err != nil {
		return Envelope{}, err
	}
	for _, it := range items {
		env.SavedItems = append(env.SavedItems, *it)
	}

	invoices, err := s.invoices.ListAll(ctx)
	if err != nil {
		return Envelope{}, err
	}
	for _, inv := range invoices {
		inv.Normalize()
		env.Invoices = append(env.Invoices, *inv)
	}

	return env, nil
}

// Restore wipes every category and loads the envelope's contents.
func (s *Service) Restore(ctx context.Context, env Envelope) error {
	if err := wipe(ctx, s.invoices, s.profiles, s.clients, s.savedItems); err != nil {
		return err
	}

	if env.CompanyProfile != nil {
		if err := s.profiles.Set(ctx, profile.CompanyProfileKind, env.CompanyProfile); err != nil {
			return err
		}
	}
	for i := range env.Clients {
		if err := s.clients.Set(ctx, env.Clients[i].ID, &env.Clients[i]); err != nil {
			return err
		}
	}
	for i := range env.SavedItems {
		if err := s.savedItems.Set(ctx, env.SavedItems[i].ID, &env.SavedItems[i]); err != nil {
			return err
		}
	}
	for i := range env.Invoices {
		env.Invoices[i].Normalize()
		if err := s.invoices.Set(ctx, env.Invoices[i].ID, &env.Invoices[i]); err != nil {
			return err
		}
	}

	s.log.Info("restore complete",
		zap.Int("invoices", len(env.Invoices)),
		zap.Int("clients", len(env.Clients)),
		zap.Int("saved_items", len(env.SavedItems)),
	)
	return nil
}

func wipe(ctx context.Context, stores ...any) error {
	for _, st := range stores {
		wiper, ok := st.(store.Wiper)
		if !ok {
			return ErrRestoreUnsupported
		}
		if err := wiper.DeleteAll(ctx); err != nil {
			return err
		}
	}
	return nil
}

// invoiceRow flattens top-level invoice fields for tabular projections.
func invoiceRow(inv invoicedomain.Invoice) []any {
	return []any{
		inv.ID,
		inv.InvoiceNumber,
		inv.InvoiceDate,
		inv.DueDate,
		inv.CompanyName,
		inv.CustomerName,
		inv.CurrencyCode,
		fmt.Sprintf("%.2f", inv.SubTotal.Float()),
		string(inv.GlobalDiscountType),
		fmt.Sprintf("%.2f", inv.GlobalDiscountValue.Float()),
		fmt.Sprintf("%.2f", inv.TotalFee.Float()),
		fmt.Sprintf("%d", len(inv.Items)),
	}
}

var tableHeader = []any{
	"id", "invoiceNumber", "invoiceDate", "dueDate", "companyName",
	"customerName", "currencyCode", "subTotal", "globalDiscountType",
	"globalDiscountValue", "totalFee", "itemCount",
}

func (s *Service) listNormalized(ctx context.Context) ([]invoicedomain.Invoice, error) {
	records, err := s.invoices.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]invoicedomain.Invoice, 0, len(records))
	for _, rec := range records {
		rec.Normalize()
		out = append(out, *rec)
	}
	return out, nil
}
