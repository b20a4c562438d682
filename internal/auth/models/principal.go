package models

import "fmt"

// Role tags the closed set of principal variants. There is no open-ended
// hierarchy behind this: every principal is exactly one of these.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r names a known variant.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Principal is an identity tracked by the registry. The shared fields are
// immutable after registration; CredentialDigest holds the salted hash
// produced by the hasher, never a plaintext password.
//
// Variant payloads live directly on the struct and are meaningful only for
// the matching Role: Address for customers, AccessLevel for admins.
type Principal struct {
	Username         string
	Email            string
	CredentialDigest string
	Role             Role

	Address     string
	AccessLevel int
}

// IsAdmin reports whether the principal holds the administrative capability.
func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Describe renders the role-specific projection of the principal. Dispatch is
// a switch over the role tag; adding a variant means extending this switch.
func (p *Principal) Describe() string {
	switch p.Role {
	case RoleCustomer:
		return fmt.Sprintf("Customer: %s, Email: %s, Address: %s", p.Username, p.Email, p.Address)
	case RoleAdmin:
		return fmt.Sprintf("Admin: %s, Email: %s, Access level: %d", p.Username, p.Email, p.AccessLevel)
	default:
		return fmt.Sprintf("User: %s, Email: %s", p.Username, p.Email)
	}
}
