package entity

const HealthHealthy = "Healthy"

type Animal struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Species      string  `db:"species" json:"species"`
	Age          int     `db:"age" json:"age"`
	Gender       string  `db:"gender" json:"gender"`
	HealthStatus string  `db:"health_status" json:"healthStatus"`
	CageID       *string `db:"cage_id" json:"cageId"`
	Notes        string  `db:"notes" json:"notes"`
}

type Cage struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Type      string `db:"type" json:"type"`
	Location  string `db:"location" json:"location"`
	Capacity  int    `db:"capacity" json:"capacity"`
	Occupancy int    `db:"occupancy" json:"occupancy"`
	Status    string `db:"status" json:"status"`
}
