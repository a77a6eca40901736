package adaptor

import (
	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/dto/request"
	"zoo-admin/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Employee     *EmployeeHandler
	Animal       *CatalogHandler[request.AnimalRequest, entity.Animal]
	Cage         *CatalogHandler[request.CageRequest, entity.Cage]
	Doctor       *CatalogHandler[request.DoctorRequest, entity.Doctor]
	Event        *CatalogHandler[request.EventRequest, entity.Event]
	Ticket       *CatalogHandler[request.TicketRequest, entity.Ticket]
	Inventory    *CatalogHandler[request.InventoryRequest, entity.InventoryItem]
	MedicalCheck *CatalogHandler[request.MedicalCheckRequest, entity.MedicalCheck]
	Vaccination  *CatalogHandler[request.VaccinationRequest, entity.Vaccination]
	Sales        *SalesHandler
	Dashboard    *DashboardHandler
	Portal       *PortalHandler
}

func NewHandler(service usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.AuthService, log),
		Employee:     NewEmployeeHandler(service.EmployeeService, log),
		Animal:       NewCatalogHandler("animal", service.AnimalService, log),
		Cage:         NewCatalogHandler("cage", service.CageService, log),
		Doctor:       NewCatalogHandler("doctor", service.DoctorService, log),
		Event:        NewCatalogHandler("event", service.EventService, log),
		Ticket:       NewCatalogHandler("ticket", service.TicketService, log),
		Inventory:    NewCatalogHandler("inventory item", service.InventoryService, log),
		MedicalCheck: NewCatalogHandler("medical check", service.MedicalService, log),
		Vaccination:  NewCatalogHandler("vaccination", service.VaccinationService, log),
		Sales:        NewSalesHandler(service.TicketSaleService, service.VisitorService, log),
		Dashboard:    NewDashboardHandler(service.DashboardService, service.ZooInfoService, log),
		Portal:       NewPortalHandler(service.AttendanceService, service.JobService, service.StockRequestService, log),
	}
}
