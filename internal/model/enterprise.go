package model

import "time"

// Enterprise represents a customer company renting spaces, as stored in
// the `enterprises` table. An enterprise purchases a block of bookable
// hours up front (TotHours) and spends them one hour per booked slot;
// CurrentHours tracks what remains. The balance is only ever decremented
// by the booking path and TotHours never changes after registration.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – company or contact first name.
//  LastName     – contact last name.
//  Email        – unique login email.
//  PasswordHash – bcrypt hashed password.
//  CIF          – fiscal identification code.
//  Phone        – unique contact phone.
//  TotHours     – purchased hours entitlement (immutable).
//  CurrentHours – remaining bookable hours (>= 0).
//  IsAdmin      – grants access to the administrative endpoints.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Enterprise struct {
	ID           uint64    // enterprises.id
	Name         string    // enterprises.name
	LastName     string    // enterprises.last_name
	Email        string    // enterprises.email
	PasswordHash string    // enterprises.password_hash
	CIF          string    // enterprises.cif
	Phone        string    // enterprises.phone
	TotHours     int       // enterprises.tot_hours
	CurrentHours int       // enterprises.current_hours
	IsAdmin      bool      // enterprises.is_admin
	CreatedAt    time.Time // enterprises.created_at
	UpdatedAt    time.Time // enterprises.updated_at
}
