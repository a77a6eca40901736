package usecase

import (
	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/dto/request"
)

// identified is satisfied by requests embedding request.Identity.
type identified interface {
	GetID() string
	SetID(id string)
}

func idOf(req any) string {
	if r, ok := req.(identified); ok {
		return r.GetID()
	}
	return ""
}

func setID(req any, id string) {
	if r, ok := req.(identified); ok {
		r.SetID(id)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func animalFromRequest(id string, req *request.AnimalRequest, _ string) *entity.Animal {
	animal := &entity.Animal{
		ID:           id,
		Name:         req.Name,
		Species:      req.Species,
		Gender:       req.Gender,
		HealthStatus: orDefault(req.HealthStatus, entity.HealthHealthy),
		Notes:        req.Notes,
	}
	if req.Age != nil {
		animal.Age = *req.Age
	}
	// an empty cage selection means unassigned
	if req.CageID != "" {
		cageID := req.CageID
		animal.CageID = &cageID
	}
	return animal
}

func cageFromRequest(id string, req *request.CageRequest, _ string) *entity.Cage {
	return &entity.Cage{
		ID:        id,
		Name:      req.Name,
		Type:      req.Type,
		Location:  req.Location,
		Capacity:  req.Capacity,
		Occupancy: req.Occupancy,
		Status:    orDefault(req.Status, "Active"),
	}
}

func doctorFromRequest(id string, req *request.DoctorRequest, _ string) *entity.Doctor {
	return &entity.Doctor{
		ID:             id,
		Name:           req.Name,
		Specialization: req.Specialization,
		Email:          req.Email,
		Phone:          req.Phone,
		Availability:   orDefault(req.Availability, "Available"),
		Experience:     req.Experience,
	}
}

func eventFromRequest(id string, req *request.EventRequest, _ string) *entity.Event {
	return &entity.Event{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Capacity:        req.Capacity,
		RegisteredCount: req.RegisteredCount,
		Status:          orDefault(req.Status, "Upcoming"),
	}
}

func ticketFromRequest(id string, req *request.TicketRequest, today string) *entity.Ticket {
	return &entity.Ticket{
		ID:                 id,
		Type:               orDefault(req.Type, "Standard"),
		Price:              req.Price,
		Description:        req.Description,
		StartDate:          orDefault(req.StartDate, today),
		DiscountPercentage: req.DiscountPercentage,
	}
}

func inventoryFromRequest(id string, req *request.InventoryRequest, _ string) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		ExpiryDate:   req.ExpiryDate,
		Supplier:     req.Supplier,
	}
}

func medicalCheckFromRequest(id string, req *request.MedicalCheckRequest, today string) *entity.MedicalCheck {
	return &entity.MedicalCheck{
		ID:        id,
		AnimalID:  req.AnimalID,
		DoctorID:  req.DoctorID,
		Date:      orDefault(req.Date, today),
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Status:    orDefault(req.Status, "Completed"),
		Notes:     req.Notes,
	}
}

func vaccinationFromRequest(id string, req *request.VaccinationRequest, today string) *entity.Vaccination {
	return &entity.Vaccination{
		ID:               id,
		AnimalID:         req.AnimalID,
		VaccineName:      req.VaccineName,
		DateAdministered: orDefault(req.DateAdministered, today),
		NextDueDate:      req.NextDueDate,
		Veterinarian:     req.Veterinarian,
		Notes:            req.Notes,
	}
}
