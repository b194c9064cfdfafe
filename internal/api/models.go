package api

import "github.com/pharmabolt/pharmabolt-api/internal/domain"

// Request/response structures for the JSON API.

// RegisterRequest defines the payload for the user registration
// endpoint. Role is optional and defaults to "user". Accepting a
// caller-supplied role is a known privilege-escalation exposure kept
// for compatibility with existing clients.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=255"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	PhoneNo  string `json:"phone_no"  validate:"required,min=3,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=255"`
	Address  string `json:"address"   validate:"required,min=3,max=255"`
	City     string `json:"city"      validate:"required,min=3,max=255"`
	State    string `json:"state"     validate:"required,min=3,max=255"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin user"`
}

// LoginRequest defines the payload for the user login endpoint. It is
// deliberately unvalidated beyond JSON shape: any credential mismatch,
// including absent fields, collapses into the same generic failure.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the successful login body.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateDrugRequest defines the payload for drug creation. Price and
// stock are pointers so that an explicit zero passes validation while
// an absent field fails it.
type CreateDrugRequest struct {
	Name        string   `json:"name"        validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required,min=5"`
	Price       *float64 `json:"price"       validate:"required"`
	Stock       *int     `json:"stock"       validate:"required"`
}

// UpdateDrugRequest defines the payload for a partial drug update.
// Every field is optional; present fields must still satisfy the
// creation bounds.
type UpdateDrugRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3,max=255"`
	Description *string  `json:"description" validate:"omitempty,min=5"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// Patch converts the request into the typed partial update applied by
// the store.
func (r UpdateDrugRequest) Patch() domain.DrugPatch {
	return domain.DrugPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// UpdateUserRequest defines the payload for a partial user update.
// Role is honored only on the admin edit path; the self-edit handler
// discards it before building the patch.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=255"`
	Email    *string `json:"email"     validate:"omitempty,email,max=255"`
	PhoneNo  *string `json:"phone_no"  validate:"omitempty,min=3,max=255"`
	Password *string `json:"password"  validate:"omitempty,min=8,max=255"`
	Address  *string `json:"address"   validate:"omitempty,min=3,max=255"`
	City     *string `json:"city"      validate:"omitempty,min=3,max=255"`
	State    *string `json:"state"     validate:"omitempty,min=3,max=255"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin user"`
}

// Patch converts the request into the typed partial update applied by
// the store. When allowRole is false the role field is dropped, which
// is how self-edits are prevented from touching it.
func (r UpdateUserRequest) Patch(allowRole bool) domain.UserPatch {
	patch := domain.UserPatch{
		FullName: r.FullName,
		Email:    r.Email,
		PhoneNo:  r.PhoneNo,
		Password: r.Password,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
	}
	if allowRole && r.Role != nil {
		role := domain.Role(*r.Role)
		patch.Role = &role
	}
	return patch
}
