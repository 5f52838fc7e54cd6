package domain

import "github.com/google/uuid"

// Principal is the caller identity attached to every command. It is produced
// by the upstream auth gateway; the core never re-derives it.
type Principal struct {
	ID          uuid.UUID
	IsAdmin     bool
	IsModerator bool
}

// CanModerate reports whether the principal holds moderator-or-admin capability.
func (p Principal) CanModerate() bool {
	return p.IsAdmin || p.IsModerator
}

// CanEdit is the access predicate shared by every mutating command.
func (p Principal) CanEdit(ownerID uuid.UUID) bool {
	return p.IsAdmin || (p.ID != uuid.Nil && ownerID == p.ID)
}
