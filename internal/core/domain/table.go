package domain

// Table is a seat-bearing table in the dining room.
type Table struct {
	ID              uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TableNumber     int  `gorm:"uniqueIndex;not null"     json:"table_number"`
	SeatingCapacity int  `gorm:"not null"                 json:"seating_capacity"`
	IsAvailable     bool `gorm:"not null;default:true"    json:"is_available"`
}
