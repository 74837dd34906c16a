package invoice

import (
	"context"

	"hogarlink/models"
)

// InvoiceRepository records payment attempts, successful or failed.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
}
