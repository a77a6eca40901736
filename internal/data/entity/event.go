package entity

type Event struct {
	ID              string `db:"id" json:"id"`
	Title           string `db:"title" json:"title"`
	Description     string `db:"description" json:"description"`
	Date            string `db:"date" json:"date"`
	Time            string `db:"time" json:"time"`
	Location        string `db:"location" json:"location"`
	Capacity        int    `db:"capacity" json:"capacity"`
	RegisteredCount int    `db:"registered_count" json:"registeredCount"`
	Status          string `db:"status" json:"status"`
}
