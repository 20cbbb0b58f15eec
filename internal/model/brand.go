package model

// Brand is a commercial brand registered under an enterprise. Brands
// carry no scheduling logic; they are deleted together with their
// enterprise.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – brand name.
//  Description  – free-form description.
//  Logo         – URL of the brand logo.
//  EnterpriseID – owning enterprise.
type Brand struct {
	ID           uint64 // brands.id
	Name         string // brands.name
	Description  string // brands.description
	Logo         string // brands.logo
	EnterpriseID uint64 // brands.enterprise_id
}
