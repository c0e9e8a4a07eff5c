package entity

// Consumption is a catering/supply item selectable per booking.
type Consumption struct {
	Base
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}
