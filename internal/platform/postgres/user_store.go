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
	"github.com/pharmabolt/pharmabolt-api/internal/service/auth"
	"github.com/pharmabolt/pharmabolt-api/internal/store"
)

// userColumns is the scan order shared by every user query. The
// password column holds the bcrypt digest; it never leaves the store
// layer in serialized form because domain.User hides it from JSON.
const userColumns = "id, full_name, email, phone_no, password, address, city, state, role"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. The hasher is applied to plaintext passwords on
// Create and on Update when the patch carries one.
func NewPostgresUserStore(db store.DBTX, hasher auth.PasswordHasher, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		hasher: hasher,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PhoneNo, &u.HashedPassword,
		&u.Address, &u.City, &u.State, &u.Role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// emailTaken reports whether any user row already uses the given email,
// compared case-insensitively.
func (s *PostgresUserStore) emailTaken(ctx context.Context, email string) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE LOWER(email) = LOWER($1)`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists when the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	taken, err := s.emailTaken(ctx, user.Email)
	if err != nil {
		log.Error("failed to check email uniqueness", slog.String("error", err.Error()))
		return nil, err
	}
	if taken {
		log.Debug("email already registered")
		return nil, store.ErrEmailExists
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO users (full_name, email, phone_no, password, address, city, state, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := scanUser(s.db.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.PhoneNo, hashed,
		user.Address, user.City, user.State, user.Role))
	if err != nil {
		// The unique index is the real enforcer; a race past the
		// pre-check above lands here.
		if isUniqueViolation(err) {
			log.Debug("email already registered")
			return nil, store.ErrEmailExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("user created",
		slog.Int64("user_id", created.ID),
		slog.String("role", string(created.Role)))
	return created, nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail. The lookup is an
// exact match; only the uniqueness checks are case-insensitive.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if users == nil {
		users = []*domain.User{}
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	return users, nil
}

// buildUserSet renders the SET clause for a partial user update from
// the non-nil patch fields, hashing a plaintext password when present.
// Column names come from this fixed mapping, never from client input.
func (s *PostgresUserStore) buildUserSet(patch domain.UserPatch) (string, []any, error) {
	var assignments []string
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FullName != nil {
		appendSet("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.PhoneNo != nil {
		appendSet("phone_no", *patch.PhoneNo)
	}
	if patch.Password != nil {
		hashed, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return "", nil, err
		}
		appendSet("password", hashed)
	}
	if patch.Address != nil {
		appendSet("address", *patch.Address)
	}
	if patch.City != nil {
		appendSet("city", *patch.City)
	}
	if patch.State != nil {
		appendSet("state", *patch.State)
	}
	if patch.Role != nil {
		appendSet("role", *patch.Role)
	}

	return strings.Join(assignments, ", "), args, nil
}

// Update implements store.UserStore.Update. Fields absent from the
// patch are left untouched.
func (s *PostgresUserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	if patch.Role != nil && !patch.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	setClause, args, err := s.buildUserSet(patch)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		setClause, len(args), userColumns)

	updated, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, store.ErrEmailExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	log.Info("user updated", slog.Int64("user_id", id))
	return updated, nil
}

// Delete implements store.UserStore.Delete, returning the deleted row
// as confirmation.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	deleted, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found for delete", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	log.Info("user deleted", slog.Int64("user_id", deleted.ID))
	return deleted, nil
}
