package entity

type MeetingRoom struct {
	Base
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	IsActive bool   `db:"is_active"`
}
