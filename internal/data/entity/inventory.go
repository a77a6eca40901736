package entity

type InventoryItem struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Category     string  `db:"category" json:"category"`
	Quantity     float64 `db:"quantity" json:"quantity"`
	Unit         string  `db:"unit" json:"unit"`
	MinThreshold float64 `db:"min_threshold" json:"minThreshold"`
	ExpiryDate   *string `db:"expiry_date" json:"expiryDate,omitempty"`
	Supplier     *string `db:"supplier" json:"supplier,omitempty"`
}

type StockRequestStatus string

const (
	StockRequestPending  StockRequestStatus = "Pending"
	StockRequestApproved StockRequestStatus = "Approved"
	StockRequestRejected StockRequestStatus = "Rejected"
)

type StockRequest struct {
	ID          string             `db:"id" json:"id"`
	EmployeeID  string             `db:"employee_id" json:"employeeId"`
	ItemName    string             `db:"item_name" json:"itemName"`
	Quantity    float64            `db:"quantity" json:"quantity"`
	Unit        string             `db:"unit" json:"unit"`
	Reason      string             `db:"reason" json:"reason"`
	Status      StockRequestStatus `db:"status" json:"status"`
	RequestDate string             `db:"request_date" json:"requestDate"`
}
