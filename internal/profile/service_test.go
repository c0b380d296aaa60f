package profile

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/inkvoice/inkvoice/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupProfileTest(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(
		store.ForKind[CompanyProfile](db, CompanyProfileKind),
		store.ForKind[Client](db, ClientKind),
		store.ForKind[SavedItem](db, SavedItemKind),
		node,
		zap.NewNop(),
	)
}

func TestCompanyProfile_Singleton(t *testing.T) {
	svc := setupProfileTest(t)
	ctx := context.Background()

	empty, err := svc.GetCompanyProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.CompanyName)

	_, err = svc.SetCompanyProfile(ctx, CompanyProfile{CompanyName: "Acme Studio", DefaultCurrency: "EUR"})
	require.NoError(t, err)
	_, err = svc.SetCompanyProfile(ctx, CompanyProfile{CompanyName: "Acme GmbH"})
	require.NoError(t, err)

	got, err := svc.GetCompanyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", got.CompanyName)
	// full overwrite, not a merge
	assert.Empty(t, got.DefaultCurrency)
}

func TestClients_CRUD(t *testing.T) {
	svc := setupProfileTest(t)
	ctx := context.Background()

	created, err := svc.SaveClient(ctx, Client{Name: "Globex LLC", Email: "ap@globex.test"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.Email = "billing@globex.test"
	updated, err := svc.SaveClient(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	list, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "billing@globex.test", list[0].Email)

	require.NoError(t, svc.DeleteClient(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteClient(ctx, created.ID), ErrClientNotFound)
}

func TestSavedItems_UnknownIDOnUpdate(t *testing.T) {
	svc := setupProfileTest(t)

	_, err := svc.SaveSavedItem(context.Background(), SavedItem{ID: "404", Name: "preset"})
	assert.ErrorIs(t, err, ErrSavedItemNotFound)
}

func TestPrefillInvoice_UsesProfileDefaults(t *testing.T) {
	svc := setupProfileTest(t)
	ctx := context.Background()

	_, err := svc.SetCompanyProfile(ctx, CompanyProfile{
		CompanyName:       "Acme Studio",
		DefaultCurrency:   "EUR",
		DefaultThemeColor: "emerald-green",
		DefaultTerms:      "Net 30",
	})
	require.NoError(t, err)

	draft, err := svc.PrefillInvoice(ctx)
	require.NoError(t, err)

	assert.Empty(t, draft.ID)
	assert.Equal(t, "Acme Studio", draft.CompanyName)
	assert.Equal(t, "EUR", draft.CurrencyCode)
	assert.Equal(t, "emerald-green", draft.ThemeColor)
	assert.Equal(t, "Net 30", draft.TermsAndConditions)
	require.Len(t, draft.Items, 1)
}
