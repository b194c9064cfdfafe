package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
	"github.com/pharmabolt/pharmabolt-api/internal/platform/logger"
	"github.com/pharmabolt/pharmabolt-api/internal/store"
)

const defaultListLimit = 50

// drugColumns is the scan order shared by every drug query.
const drugColumns = "id, name, description, price, stock"

// PostgresDrugStore implements the store.DrugStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDrugStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDrugStore creates a new PostgreSQL implementation of the
// DrugStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresDrugStore(db store.DBTX, log *slog.Logger) *PostgresDrugStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresDrugStore{
		db:     db,
		logger: log.With(slog.String("component", "drug_store")),
	}
}

// Ensure PostgresDrugStore implements store.DrugStore interface
var _ store.DrugStore = (*PostgresDrugStore)(nil)

func scanDrug(row interface{ Scan(...any) error }) (*domain.Drug, error) {
	var d domain.Drug
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Stock)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List implements store.DrugStore.List. Results are ordered by name
// ascending; non-positive limits and negative offsets fall back to the
// defaults so the database never sees an invalid LIMIT clause.
func (s *PostgresDrugStore) List(ctx context.Context, limit, offset int) ([]*domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + drugColumns + `
		FROM drugs
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list drugs",
			slog.String("error", err.Error()),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var drugs []*domain.Drug
	for rows.Next() {
		drug, err := scanDrug(rows)
		if err != nil {
			log.Error("failed to scan drug row", slog.String("error", err.Error()))
			return nil, err
		}
		drugs = append(drugs, drug)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if drugs == nil {
		drugs = []*domain.Drug{}
	}

	log.Debug("listed drugs", slog.Int("count", len(drugs)))
	return drugs, nil
}

// GetByID implements store.DrugStore.GetByID.
// Returns store.ErrDrugNotFound if the drug does not exist.
func (s *PostgresDrugStore) GetByID(ctx context.Context, id int64) (*domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + drugColumns + ` FROM drugs WHERE id = $1`

	drug, err := scanDrug(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("drug not found", slog.Int64("drug_id", id))
			return nil, store.ErrDrugNotFound
		}
		log.Error("failed to get drug by ID",
			slog.String("error", err.Error()),
			slog.Int64("drug_id", id))
		return nil, err
	}

	return drug, nil
}

// nameTaken reports whether any drug row already uses the given name,
// compared case-insensitively. The row being updated is deliberately
// not excluded: renaming "Aspirin" to "aspirin" is rejected, matching
// the service's long-standing behavior.
func (s *PostgresDrugStore) nameTaken(ctx context.Context, name string) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM drugs WHERE LOWER(name) = LOWER($1)`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create implements store.DrugStore.Create.
// Returns store.ErrDrugNameExists when the name is already taken.
func (s *PostgresDrugStore) Create(ctx context.Context, drug *domain.Drug) (*domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	taken, err := s.nameTaken(ctx, drug.Name)
	if err != nil {
		log.Error("failed to check drug name uniqueness",
			slog.String("error", err.Error()))
		return nil, err
	}
	if taken {
		log.Debug("drug name already exists", slog.String("name", drug.Name))
		return nil, store.ErrDrugNameExists
	}

	query := `
		INSERT INTO drugs (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + drugColumns

	created, err := scanDrug(s.db.QueryRowContext(
		ctx, query, drug.Name, drug.Description, drug.Price, drug.Stock))
	if err != nil {
		// The unique index is the real enforcer; a race past the
		// pre-check above lands here.
		if isUniqueViolation(err) {
			log.Debug("drug name already exists", slog.String("name", drug.Name))
			return nil, store.ErrDrugNameExists
		}
		log.Error("failed to create drug",
			slog.String("error", err.Error()),
			slog.String("name", drug.Name))
		return nil, err
	}

	log.Info("drug created", slog.Int64("drug_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

// buildDrugSet renders the SET clause for a partial drug update from
// the non-nil patch fields. Column names come from this fixed mapping,
// never from client input.
func buildDrugSet(patch domain.DrugPatch) (string, []any) {
	var assignments []string
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Price != nil {
		appendSet("price", *patch.Price)
	}
	if patch.Stock != nil {
		appendSet("stock", *patch.Stock)
	}

	return strings.Join(assignments, ", "), args
}

// Update implements store.DrugStore.Update. Fields absent from the
// patch are left untouched.
func (s *PostgresDrugStore) Update(ctx context.Context, id int64, patch domain.DrugPatch) (*domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Existence check runs first so a missing row reports not-found
	// even when the patch is empty.
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if patch.Name != nil {
		taken, err := s.nameTaken(ctx, *patch.Name)
		if err != nil {
			log.Error("failed to check drug name uniqueness",
				slog.String("error", err.Error()))
			return nil, err
		}
		if taken {
			log.Debug("drug name already exists", slog.String("name", *patch.Name))
			return nil, store.ErrDrugNameExists
		}
	}

	setClause, args := buildDrugSet(patch)
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE drugs SET %s WHERE id = $%d RETURNING %s`,
		setClause, len(args), drugColumns)

	updated, err := scanDrug(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDrugNotFound
		}
		if isUniqueViolation(err) {
			return nil, store.ErrDrugNameExists
		}
		log.Error("failed to update drug",
			slog.String("error", err.Error()),
			slog.Int64("drug_id", id))
		return nil, err
	}

	log.Info("drug updated", slog.Int64("drug_id", id))
	return updated, nil
}

// Delete implements store.DrugStore.Delete, returning the deleted row
// as confirmation.
func (s *PostgresDrugStore) Delete(ctx context.Context, id int64) (*domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM drugs WHERE id = $1 RETURNING ` + drugColumns

	deleted, err := scanDrug(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("drug not found for delete", slog.Int64("drug_id", id))
			return nil, store.ErrDrugNotFound
		}
		log.Error("failed to delete drug",
			slog.String("error", err.Error()),
			slog.Int64("drug_id", id))
		return nil, err
	}

	log.Info("drug deleted", slog.Int64("drug_id", id), slog.String("name", deleted.Name))
	return deleted, nil
}
