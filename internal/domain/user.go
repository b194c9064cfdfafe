package domain

import "errors"

// Role gates access to administrative routes.
type Role string

// Valid roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Common validation errors.
var (
	ErrInvalidRole = errors.New("role must be either \"admin\" or \"user\"")
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered account.
//
// Password holds a transient plaintext value during registration and
// password updates only; it is hashed before any row is written and is
// never serialized. HashedPassword is the stored bcrypt digest and is
// likewise never exposed in JSON.
type User struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	PhoneNo        string `json:"phone_no"`
	Password       string `json:"-"`
	HashedPassword string `json:"-"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Role           Role   `json:"role"`
}

// Validate checks the invariants the store relies on. Field-shape rules
// (lengths, email format) are enforced at the API boundary.
func (u *User) Validate() error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// UserPatch is a partial update for a user row. Nil fields are left
// untouched. The field set doubles as the allow-list of updatable
// columns: the ID is not representable here, and Role is honored only
// on the admin edit path (self-edits clear it before applying).
type UserPatch struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	PhoneNo  *string `json:"phone_no"`
	Password *string `json:"password"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Role     *Role   `json:"role"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.PhoneNo == nil &&
		p.Password == nil && p.Address == nil && p.City == nil &&
		p.State == nil && p.Role == nil
}
