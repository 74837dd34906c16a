package catalog

import (
	"context"

	"hogarlink/models"
)

// CatalogRepository supplies read-only service catalog entries. The catalog
// is externally managed; this repository never writes.
type CatalogRepository interface {
	ListEntries(ctx context.Context) ([]models.ServiceCatalogEntry, error)
}
