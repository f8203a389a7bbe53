package entity

type Hotel struct {
	Base
	Name        string   `db:"name"`
	Location    string   `db:"location"`
	Description string   `db:"description"`
	Amenities   []string `db:"amenities"`
	Images      []string `db:"images"`
	IsActive    bool     `db:"is_active"`
}
