package api

import (
	"context"
	"errors"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
	"github.com/pharmabolt/pharmabolt-api/internal/service/auth"
)

// Function-field stubs for the store and auth interfaces. Each test
// fills in only the calls it expects; an unexpected call panics on the
// nil function, which is the failure we want.

type stubUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	listFn       func(ctx context.Context) ([]*domain.User, error)
	updateFn     func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	deleteFn     func(ctx context.Context, id int64) (*domain.User, error)
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserStore) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	return s.deleteFn(ctx, id)
}

type stubDrugStore struct {
	listFn    func(ctx context.Context, limit, offset int) ([]*domain.Drug, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Drug, error)
	createFn  func(ctx context.Context, drug *domain.Drug) (*domain.Drug, error)
	updateFn  func(ctx context.Context, id int64, patch domain.DrugPatch) (*domain.Drug, error)
	deleteFn  func(ctx context.Context, id int64) (*domain.Drug, error)
}

func (s *stubDrugStore) List(ctx context.Context, limit, offset int) ([]*domain.Drug, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubDrugStore) GetByID(ctx context.Context, id int64) (*domain.Drug, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubDrugStore) Create(ctx context.Context, drug *domain.Drug) (*domain.Drug, error) {
	return s.createFn(ctx, drug)
}

func (s *stubDrugStore) Update(ctx context.Context, id int64, patch domain.DrugPatch) (*domain.Drug, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubDrugStore) Delete(ctx context.Context, id int64) (*domain.Drug, error) {
	return s.deleteFn(ctx, id)
}

type stubTokenService struct {
	generateFn func(ctx context.Context, userID int64, role domain.Role) (string, error)
	validateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (s *stubTokenService) GenerateToken(ctx context.Context, userID int64, role domain.Role) (string, error) {
	return s.generateFn(ctx, userID, role)
}

func (s *stubTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return s.validateFn(ctx, tokenString)
}

// stubVerifier approves one password and rejects everything else,
// without touching bcrypt.
type stubVerifier struct {
	accept string
}

func (v *stubVerifier) Compare(hashedPassword, password string) error {
	if password == v.accept {
		return nil
	}
	return errors.New("password mismatch")
}
