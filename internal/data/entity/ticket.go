package entity

type Ticket struct {
	ID                 string  `db:"id" json:"id"`
	Type               string  `db:"type" json:"type"`
	Price              float64 `db:"price" json:"price"`
	Description        string  `db:"description" json:"description"`
	StartDate          string  `db:"start_date" json:"startDate"`
	DiscountPercentage float64 `db:"discount_percentage" json:"discountPercentage"`
}

type TicketSale struct {
	ID           string  `db:"id" json:"id"`
	TicketID     string  `db:"ticket_id" json:"ticketId"`
	Quantity     int     `db:"quantity" json:"quantity"`
	TotalAmount  float64 `db:"total_amount" json:"totalAmount"`
	Date         string  `db:"date" json:"date"`
	VisitorName  string  `db:"visitor_name" json:"visitorName"`
	VisitorEmail *string `db:"visitor_email" json:"visitorEmail,omitempty"`
	VisitorPhone *string `db:"visitor_phone" json:"visitorPhone,omitempty"`
}

type Visitor struct {
	ID               string  `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Email            *string `db:"email" json:"email"`
	Phone            *string `db:"phone" json:"phone"`
	RegistrationDate string  `db:"registration_date" json:"registrationDate"`
}
