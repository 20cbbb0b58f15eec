package model

// Equipment is an item installed in a space (projector, whiteboard...).
// Equipment is deleted together with its space.
//
// Fields:
//  ID          – primary key identifier.
//  Quantity    – number of units available in the space.
//  Name        – item name.
//  Description – free-form description.
//  SpaceID     – space the equipment belongs to.
type Equipment struct {
	ID          uint64 // equipments.id
	Quantity    int    // equipments.quantity
	Name        string // equipments.name
	Description string // equipments.description
	SpaceID     uint64 // equipments.space_id
}
