package model

import "time"

// Space is a bookable physical unit (a room or a desk) belonging to
// exactly one Spacetype. Spaces own equipment and schedules; deleting a
// space cascades to both.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the space.
//  SpacetypeID – category the space belongs to.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Space struct {
	ID          uint64    // spaces.id
	Name        string    // spaces.name
	SpacetypeID uint64    // spaces.spacetype_id
	CreatedAt   time.Time // spaces.created_at
	UpdatedAt   time.Time // spaces.updated_at
}
