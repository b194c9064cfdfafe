package store

import (
	"context"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
)

// DrugStore defines the interface for drug catalog persistence.
type DrugStore interface {
	// List returns up to limit drugs starting at offset, ordered by
	// name ascending.
	List(ctx context.Context, limit, offset int) ([]*domain.Drug, error)

	// GetByID retrieves a drug by ID.
	// Returns ErrDrugNotFound if the drug does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Drug, error)

	// Create saves a new drug and returns it with the server-assigned
	// ID. Returns ErrDrugNameExists if a drug with the same name
	// already exists (case-insensitive).
	Create(ctx context.Context, drug *domain.Drug) (*domain.Drug, error)

	// Update applies a partial update to the drug with the given ID and
	// returns the resulting row. Fields absent from the patch are left
	// untouched. When the patch renames the drug, the name uniqueness
	// check is re-run. Returns ErrDrugNotFound if the drug does not
	// exist and ErrEmptyPatch when the patch carries no fields.
	Update(ctx context.Context, id int64, patch domain.DrugPatch) (*domain.Drug, error)

	// Delete removes a drug and returns the deleted row as
	// confirmation. Returns ErrDrugNotFound if the drug does not exist.
	Delete(ctx context.Context, id int64) (*domain.Drug, error)
}
