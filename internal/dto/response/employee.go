package response

import (
	"math"

	"zoo-admin/internal/data/entity"
)

type SalaryResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Status  string  `json:"status"`
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
}

func EmployeeToSalary(e *entity.Employee) SalaryResponse {
	return SalaryResponse{
		ID:      e.ID,
		Name:    e.Name,
		Role:    e.Role,
		Status:  string(e.Status),
		Annual:  e.Salary,
		Monthly: math.Round(e.Salary / 12),
	}
}
