package entity

const AttendancePresent = "Present"

type Attendance struct {
	ID           string  `db:"id" json:"id"`
	EmployeeID   string  `db:"employee_id" json:"employeeId"`
	EmployeeName string  `db:"employee_name" json:"employeeName,omitempty"`
	Date         string  `db:"date" json:"date"`
	CheckIn      string  `db:"check_in" json:"checkIn"`
	CheckOut     *string `db:"check_out" json:"checkOut,omitempty"`
	Status       string  `db:"status" json:"status"`
}

type JobStatus string

const (
	JobPending    JobStatus = "Pending"
	JobInProgress JobStatus = "In Progress"
	JobCompleted  JobStatus = "Completed"
)

type Job struct {
	ID           string    `db:"id" json:"id"`
	EmployeeID   string    `db:"employee_id" json:"employeeId"`
	EmployeeName string    `db:"employee_name" json:"employeeName,omitempty"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Status       JobStatus `db:"status" json:"status"`
	AssignedDate string    `db:"assigned_date" json:"assignedDate"`
	DueDate      string    `db:"due_date" json:"dueDate"`
}
