package catalog

import (
	"context"
	"testing"

	"hogarlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRepo struct {
	entries []models.ServiceCatalogEntry
}

func (r staticRepo) ListEntries(ctx context.Context) ([]models.ServiceCatalogEntry, error) {
	return r.entries, nil
}

func TestCatalogLookup(t *testing.T) {
	repo := staticRepo{entries: []models.ServiceCatalogEntry{
		{ID: "deep-cleaning", Name: "Deep Cleaning", BasePriceMinorUnits: 85000, DurationMinutes: 180},
		{ID: "plumbing-visit", Name: "Plumbing Visit", BasePriceMinorUnits: 60000, DurationMinutes: 60},
	}}

	svc, err := NewDefaultCatalogService(context.Background(), repo)
	require.NoError(t, err)

	entry, ok := svc.GetEntry("deep-cleaning")
	assert.True(t, ok)
	assert.Equal(t, int64(85000), entry.BasePriceMinorUnits)

	_, ok = svc.GetEntry("missing")
	assert.False(t, ok)

	assert.Len(t, svc.ListEntries(), 2)
}
