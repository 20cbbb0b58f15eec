package model

// Spacetype categorizes spaces (meeting room, open desk, studio...).
//
// Fields:
//  ID          – primary key identifier.
//  Description – human readable category description.
type Spacetype struct {
	ID          uint64 // spacetypes.id
	Description string // spacetypes.description
}
