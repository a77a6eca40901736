package request

// Identity is embedded by requests whose id is chosen by the client.
type Identity struct {
	ID string `json:"id" validate:"required"`
}

func (i *Identity) GetID() string { return i.ID }

func (i *Identity) SetID(id string) { i.ID = id }

type AnimalRequest struct {
	Identity
	Name         string `json:"name" validate:"required"`
	Species      string `json:"species" validate:"required"`
	Age          *int   `json:"age" validate:"required,min=0"`
	Gender       string `json:"gender" validate:"omitempty,oneof=Male Female"`
	HealthStatus string `json:"healthStatus"`
	CageID       string `json:"cageId"`
	Notes        string `json:"notes"`
}

type CageRequest struct {
	Identity
	Name      string `json:"name"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity" validate:"min=0"`
	Occupancy int    `json:"occupancy" validate:"min=0"`
	Status    string `json:"status" validate:"omitempty,oneof=Active Maintenance Closed"`
}

type DoctorRequest struct {
	Identity
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Availability   string `json:"availability"`
	Experience     string `json:"experience"`
}

type EventRequest struct {
	Identity
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	Capacity        int    `json:"capacity" validate:"min=0"`
	RegisteredCount int    `json:"registeredCount" validate:"min=0"`
	Status          string `json:"status" validate:"omitempty,oneof=Upcoming Completed Cancelled"`
}

type TicketRequest struct {
	Identity
	Type               string  `json:"type"`
	Price              float64 `json:"price" validate:"min=0"`
	Description        string  `json:"description"`
	StartDate          string  `json:"startDate"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"min=0,max=100"`
}

type InventoryRequest struct {
	Identity
	Name         string  `json:"name"`
	Category     string  `json:"category" validate:"omitempty,oneof=Food Medicine Equipment Supplies"`
	Quantity     float64 `json:"quantity" validate:"min=0"`
	Unit         string  `json:"unit"`
	MinThreshold float64 `json:"minThreshold" validate:"min=0"`
	ExpiryDate   *string `json:"expiryDate"`
	Supplier     *string `json:"supplier"`
}

type MedicalCheckRequest struct {
	Identity
	AnimalID  string `json:"animalId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Status    string `json:"status" validate:"omitempty,oneof=Scheduled Completed"`
	Notes     string `json:"notes"`
}

type VaccinationRequest struct {
	Identity
	AnimalID         string `json:"animalId"`
	VaccineName      string `json:"vaccineName"`
	DateAdministered string `json:"dateAdministered"`
	NextDueDate      string `json:"nextDueDate"`
	Veterinarian     string `json:"veterinarian"`
	Notes            string `json:"notes"`
}

type VisitorRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name" validate:"required"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone"`
	RegistrationDate string  `json:"registrationDate"`
}

type TicketSaleRequest struct {
	ID           string  `json:"id"`
	TicketID     string  `json:"ticketId" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	TotalAmount  float64 `json:"totalAmount" validate:"required"`
	Date         string  `json:"date"`
	VisitorName  string  `json:"visitorName" validate:"required"`
	VisitorEmail string  `json:"visitorEmail" validate:"omitempty,email"`
	VisitorPhone string  `json:"visitorPhone"`
}
