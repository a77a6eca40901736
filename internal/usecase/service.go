package usecase

import (
	"time"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/dto/request"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

// Clock returns the current time. Services take one so tests can pin dates.
type Clock func() time.Time

type Service struct {
	AuthService         AuthService
	EmployeeService     EmployeeService
	AnimalService       CatalogService[request.AnimalRequest, entity.Animal]
	CageService         CatalogService[request.CageRequest, entity.Cage]
	DoctorService       CatalogService[request.DoctorRequest, entity.Doctor]
	EventService        CatalogService[request.EventRequest, entity.Event]
	TicketService       CatalogService[request.TicketRequest, entity.Ticket]
	InventoryService    CatalogService[request.InventoryRequest, entity.InventoryItem]
	MedicalService      CatalogService[request.MedicalCheckRequest, entity.MedicalCheck]
	VaccinationService  CatalogService[request.VaccinationRequest, entity.Vaccination]
	VisitorService      VisitorService
	TicketSaleService   TicketSaleService
	DashboardService    DashboardService
	AttendanceService   AttendanceService
	JobService          JobService
	StockRequestService StockRequestService
	ZooInfoService      ZooInfoService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) Service {
	return newService(repo, config, log, time.Now)
}

func newService(repo *repository.Repository, config *utils.Config, log *zap.Logger, now Clock) Service {
	hasher := utils.PasswordHasher{Hash: config.Auth.HashPasswords}

	return Service{
		AuthService:         NewAuthService(repo, hasher, log, now),
		EmployeeService:     NewEmployeeService(repo, hasher, config.Auth.DefaultEmployeePassword, log, now),
		AnimalService:       newCatalogService("animal", repo.Animal, animalFromRequest, log, now),
		CageService:         newCatalogService("cage", repo.Cage, cageFromRequest, log, now),
		DoctorService:       newCatalogService("doctor", repo.Doctor, doctorFromRequest, log, now),
		EventService:        newCatalogService("event", repo.Event, eventFromRequest, log, now),
		TicketService:       newCatalogService("ticket", repo.Ticket, ticketFromRequest, log, now),
		InventoryService:    newCatalogService("inventory item", repo.Inventory, inventoryFromRequest, log, now),
		MedicalService:      newCatalogService("medical check", repo.MedicalCheck, medicalCheckFromRequest, log, now),
		VaccinationService:  newCatalogService("vaccination", repo.Vaccination, vaccinationFromRequest, log, now),
		VisitorService:      NewVisitorService(repo.Visitor, log, now),
		TicketSaleService:   NewTicketSaleService(repo, log, now),
		DashboardService:    NewDashboardService(repo, log, now),
		AttendanceService:   NewAttendanceService(repo.Attendance, log, now),
		JobService:          NewJobService(repo.Job, log, now),
		StockRequestService: NewStockRequestService(repo.StockRequest, log, now),
		ZooInfoService:      NewZooInfoService(repo.ZooInfo, log),
	}
}
