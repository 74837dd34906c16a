package catalog

import (
	"context"
	"fmt"

	catalogRepo "hogarlink/database/repository/catalog"
	"hogarlink/models"
)

// CatalogService serves read-only catalog lookups. Entries are loaded once
// and treated as immutable for the lifetime of the process, so reads need
// no locking.
type CatalogService interface {
	GetEntry(id string) (models.ServiceCatalogEntry, bool)
	ListEntries() []models.ServiceCatalogEntry
}

// DefaultCatalogService implements CatalogService over an in-memory index.
type DefaultCatalogService struct {
	byID    map[string]models.ServiceCatalogEntry
	ordered []models.ServiceCatalogEntry
}

// NewDefaultCatalogService loads the full catalog from the repository.
func NewDefaultCatalogService(ctx context.Context, repo catalogRepo.CatalogRepository) (*DefaultCatalogService, error) {
	entries, err := repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	byID := make(map[string]models.ServiceCatalogEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return &DefaultCatalogService{byID: byID, ordered: entries}, nil
}

func (s *DefaultCatalogService) GetEntry(id string) (models.ServiceCatalogEntry, bool) {
	e, ok := s.byID[id]
	return e, ok
}

func (s *DefaultCatalogService) ListEntries() []models.ServiceCatalogEntry {
	return s.ordered
}
