package entity

// Unit is the organizational requester of a booking.
type Unit struct {
	Base
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}
