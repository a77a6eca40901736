package request

// EmployeeRequest is the staff form for creating an employee.
type EmployeeRequest struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Role     string   `json:"role" validate:"required"`
	Phone    string   `json:"phone"`
	Salary   *float64 `json:"salary" validate:"omitempty,min=0"`
	JoinDate string   `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	Status   string   `json:"status" validate:"omitempty,oneof=Active Inactive Pending"`
}

// EmployeeUpdateRequest carries only the fields being changed.
type EmployeeUpdateRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	Role     *string  `json:"role" validate:"omitempty,min=1"`
	Phone    *string  `json:"phone"`
	Salary   *float64 `json:"salary" validate:"omitempty,min=0"`
	JoinDate *string  `json:"joinDate"`
	Status   *string  `json:"status" validate:"omitempty,oneof=Active Inactive Pending"`
}

// ProfileRequest is what an employee may change about themselves.
type ProfileRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}
