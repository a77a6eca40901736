package entity

type ZooInfo struct {
	ZooID       string `db:"zoo_id" json:"zooId"`
	Name        string `db:"name" json:"name"`
	Location    string `db:"location" json:"location"`
	Description string `db:"description" json:"description"`
	Capacity    string `db:"capacity" json:"capacity"`
	StartTime   string `db:"start_time" json:"startTime"`
	EndTime     string `db:"end_time" json:"endTime"`
}

// DashboardStats is computed on every request.
type DashboardStats struct {
	Animals   int64   `json:"animals"`
	Employees int64   `json:"employees"`
	Cages     int64   `json:"cages"`
	Revenue   float64 `json:"revenue"`
}
