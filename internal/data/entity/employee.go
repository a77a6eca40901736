package entity

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
	EmployeePending  EmployeeStatus = "Pending"
)

// Employee is a staff record. Role is the job title, not the access tier.
type Employee struct {
	ID       string         `db:"id" json:"id"`
	Name     string         `db:"name" json:"name"`
	Email    string         `db:"email" json:"email"`
	Role     string         `db:"role" json:"role"`
	Phone    string         `db:"phone" json:"phone"`
	Salary   float64        `db:"salary" json:"salary"`
	JoinDate string         `db:"join_date" json:"joinDate"`
	Status   EmployeeStatus `db:"status" json:"status"`
}
