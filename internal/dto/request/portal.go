package request

type AttendanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

type AssignJobRequest struct {
	EmployeeID  string `json:"employeeId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type JobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type StockRequestRequest struct {
	EmployeeID string  `json:"employeeId" validate:"required"`
	ItemName   string  `json:"itemName" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gt=0"`
	Unit       string  `json:"unit"`
	Reason     string  `json:"reason"`
}
