// Package domain contains the core entities of the service: users,
// drugs, roles, and the typed partial-update structures applied to
// them. It has no dependencies on transport or persistence layers.
package domain
