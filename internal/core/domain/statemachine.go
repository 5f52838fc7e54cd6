package domain

import "slices"

// EntityKind names the entity a state machine or error refers to.
type EntityKind string

const (
	EntityCampaign  EntityKind = "CAMPAIGN"
	EntityPlatform  EntityKind = "PLATFORM"
	EntityPlacement EntityKind = "PLACEMENT"
)

// Machine validates status transitions against an exhaustive edge table.
// There is no implicit any-to-any edge and no self-transition.
type Machine[S ~string] struct {
	kind  EntityKind
	edges map[S][]S
}

// NewMachine builds a machine for kind from its edge table.
func NewMachine[S ~string](kind EntityKind, edges map[S][]S) Machine[S] {
	return Machine[S]{kind: kind, edges: edges}
}

// Can reports whether from→to is a listed edge.
func (m Machine[S]) Can(from, to S) bool {
	return slices.Contains(m.edges[from], to)
}

// Check returns InvalidTransition when from→to is not a listed edge.
func (m Machine[S]) Check(from, to S) error {
	if !m.Can(from, to) {
		return InvalidTransition(m.kind, string(from), string(to))
	}
	return nil
}

// Terminal reports whether s has no outgoing edges.
func (m Machine[S]) Terminal(s S) bool {
	return len(m.edges[s]) == 0
}

// Next returns the statuses reachable from s in one step.
func (m Machine[S]) Next(s S) []S {
	return slices.Clone(m.edges[s])
}

var CampaignMachine = NewMachine(EntityCampaign, map[CampaignStatus][]CampaignStatus{
	CampaignDraft:           {CampaignPendingApproval, CampaignArchived},
	CampaignPendingApproval: {CampaignActive, CampaignRejected, CampaignDraft},
	CampaignActive:          {CampaignPaused, CampaignCompleted},
	CampaignPaused:          {CampaignActive, CampaignCompleted},
	CampaignRejected:        {CampaignDraft},
})

var PlatformMachine = NewMachine(EntityPlatform, map[PlatformStatus][]PlatformStatus{
	PlatformDraft:         {PlatformPendingReview},
	PlatformPendingReview: {PlatformActive, PlatformRejected},
	PlatformActive:        {PlatformPaused, PlatformSuspended, PlatformArchived},
	PlatformPaused:        {PlatformActive, PlatformArchived},
	PlatformSuspended:     {PlatformActive, PlatformArchived},
	PlatformRejected:      {PlatformDraft},
})

var PlacementMachine = NewMachine(EntityPlacement, map[PlacementStatus][]PlacementStatus{
	PlacementPending:  {PlacementApproved, PlacementRejected, PlacementCancelled},
	PlacementApproved: {PlacementActive, PlacementCancelled},
	PlacementActive:   {PlacementPaused, PlacementCompleted, PlacementCancelled},
	PlacementPaused:   {PlacementActive, PlacementCancelled},
})

// CanTransition dispatches on the entity kind. Unknown kinds never transition.
func CanTransition(kind EntityKind, from, to string) bool {
	switch kind {
	case EntityCampaign:
		return CampaignMachine.Can(CampaignStatus(from), CampaignStatus(to))
	case EntityPlatform:
		return PlatformMachine.Can(PlatformStatus(from), PlatformStatus(to))
	case EntityPlacement:
		return PlacementMachine.Can(PlacementStatus(from), PlacementStatus(to))
	default:
		return false
	}
}
