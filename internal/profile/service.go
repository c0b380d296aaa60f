package profile

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/store"
	"go.uber.org/zap"
)

const (
	CompanyProfileKind = "company-profile"
	ClientKind         = "clients"
	SavedItemKind      = "saved-items"

	// companyProfileKey is the fixed id of the singleton profile record.
	companyProfileKey = "company-profile"
)

type Service struct {
	profiles   store.Store[CompanyProfile]
	clients    store.Store[Client]
	savedItems store.Store[SavedItem]
	node       *snowflake.Node
	log        *zap.Logger
}

func NewService(
	profiles store.Store[CompanyProfile],
	clients store.Store[Client],
	savedItems store.Store[SavedItem],
	node *snowflake.Node,
	log *zap.Logger,
) *Service {
	return &Service{
		profiles:   profiles,
		clients:    clients,
		savedItems: savedItems,
		node:       node,
		log:        log,
	}
}

// GetCompanyProfile returns the singleton profile, empty when never saved.
func (s *Service) GetCompanyProfile(ctx context.Context) (CompanyProfile, error) {
	rec, err := s.profiles.Get(ctx, companyProfileKey)
	if err != nil {
		return CompanyProfile{}, err
	}
	if rec == nil {
		return CompanyProfile{}, nil
	}
	return *rec, nil
}

func (s *Service) SetCompanyProfile(ctx context.Context, profile CompanyProfile) (CompanyProfile, error) {
	profile.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Set(ctx, companyProfileKey, &profile); err != nil {
		return CompanyProfile{}, err
	}
	return profile, nil
}

func (s *Service) ListClients(ctx context.Context) ([]Client, error) {
	records, err := s.clients.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Client, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec)
	}
	return out, nil
}

func (s *Service) SaveClient(ctx context.Context, client Client) (Client, error) {
	now := time.Now().UTC()
	client.ID = strings.TrimSpace(client.ID)
	if client.ID == "" {
		client.ID = s.node.Generate().String()
		client.CreatedAt = now
	} else {
		existing, err := s.clients.Get(ctx, client.ID)
		if err != nil {
			return Client{}, err
		}
		if existing == nil {
			return Client{}, ErrClientNotFound
		}
		client.CreatedAt = existing.CreatedAt
	}
	client.UpdatedAt = now

	if err := s.clients.Set(ctx, client.ID, &client); err != nil {
		return Client{}, err
	}
	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id string) error {
	existing, err := s.clients.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrClientNotFound
	}
	return s.clients.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) ListSavedItems(ctx context.Context) ([]SavedItem, error) {
	records, err := s.savedItems.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavedItem, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec)
	}
	return out, nil
}

func (s *Service) SaveSavedItem(ctx context.Context, item SavedItem) (SavedItem, error) {
	now := time.Now().UTC()
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		item.ID = s.node.Generate().String()
		item.CreatedAt = now
	} else {
		existing, err := s.savedItems.Get(ctx, item.ID)
		if err != nil {
			return SavedItem{}, err
		}
		if existing == nil {
			return SavedItem{}, ErrSavedItemNotFound
		}
		item.CreatedAt = existing.CreatedAt
	}
	item.UpdatedAt = now

	if err := s.savedItems.Set(ctx, item.ID, &item); err != nil {
		return SavedItem{}, err
	}
	return item, nil
}

func (s *Service) DeleteSavedItem(ctx context.Context, id string) error {
	existing, err := s.savedItems.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSavedItemNotFound
	}
	return s.savedItems.Delete(ctx, strings.TrimSpace(id))
}

// PrefillInvoice builds an unsaved invoice draft seeded with the company
// profile defaults.
func (s *Service) PrefillInvoice(ctx context.Context) (invoicedomain.Invoice, error) {
	profile, err := s.GetCompanyProfile(ctx)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	draft := invoicedomain.Invoice{
		InvoiceDate:        time.Now().UTC().Format(invoicedomain.DateLayout),
		CompanyName:        profile.CompanyName,
		CompanyLogoDataURL: profile.LogoDataURL,
		CurrencyCode:       profile.DefaultCurrency,
		ThemeColor:         profile.DefaultThemeColor,
		FontTheme:          profile.DefaultFontTheme,
		TemplateStyle:      profile.DefaultTemplateStyle,
		InvoiceNotes:       profile.DefaultNotes,
		TermsAndConditions: profile.DefaultTerms,
		Items:              []invoicedomain.LineItem{invoicedomain.PlaceholderItem()},
	}
	draft.Normalize()
	return draft, nil
}
