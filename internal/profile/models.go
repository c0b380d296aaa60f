// Package profile manages the user-scoped defaults consumed read-only by
// the invoice core: company branding, the client book, and reusable
// line-item presets.
package profile

import (
	"errors"
	"time"

	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
)

// CompanyProfile is a singleton record of company branding and defaults.
type CompanyProfile struct {
	CompanyName     string `json:"companyName"`
	Address         string `json:"address,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LogoDataURL     string `json:"logoDataUrl,omitempty"`
	DefaultCurrency string `json:"defaultCurrency,omitempty"`

	DefaultThemeColor    string `json:"defaultThemeColor,omitempty"`
	DefaultFontTheme     string `json:"defaultFontTheme,omitempty"`
	DefaultTemplateStyle string `json:"defaultTemplateStyle,omitempty"`

	DefaultNotes string `json:"defaultNotes,omitempty"`
	DefaultTerms string `json:"defaultTerms,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Client is a saved customer.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SavedItem is a reusable line-item preset.
type SavedItem struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Item        invoicedomain.LineItem `json:"item"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

var (
	ErrClientNotFound    = errors.New("client_not_found")
	ErrSavedItemNotFound = errors.New("saved_item_not_found")
)
