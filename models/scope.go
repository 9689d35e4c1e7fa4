package models

// ScopeDefinition describes one permission a user can delegate to a
// third-party application. Its position in the scope table is its bit
// position on the wire.
type ScopeDefinition struct {
	ID          string
	DisplayName string
	Description string
}
