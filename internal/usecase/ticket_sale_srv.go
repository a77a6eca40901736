package usecase

import (
	"context"
	"time"

	"zoo-admin/internal/data/entity"
	"zoo-admin/internal/data/repository"
	"zoo-admin/internal/dto/request"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

type VisitorService interface {
	List(ctx context.Context) ([]*entity.Visitor, error)
	Create(ctx context.Context, req *request.VisitorRequest) (*entity.Visitor, error)
}

type visitorService struct {
	visitorRepo repository.VisitorRepository
	log         *zap.Logger
	now         Clock
}

func NewVisitorService(visitorRepo repository.VisitorRepository, log *zap.Logger, now Clock) VisitorService {
	return &visitorService{
		visitorRepo: visitorRepo,
		log:         log,
		now:         now,
	}
}

func (vs *visitorService) List(ctx context.Context) ([]*entity.Visitor, error) {
	visitors, err := vs.visitorRepo.FindAll(ctx)
	if err != nil {
		return nil, storageErr("list visitors", err)
	}
	return visitors, nil
}

func (vs *visitorService) Create(ctx context.Context, req *request.VisitorRequest) (*entity.Visitor, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := vs.now()
	visitor := &entity.Visitor{
		ID:               orDefault(req.ID, utils.GenerateRandomID("visitor", now)),
		Name:             req.Name,
		Email:            nonEmpty(req.Email),
		Phone:            nonEmpty(req.Phone),
		RegistrationDate: orDefault(req.RegistrationDate, utils.FormatDate(now)),
	}

	if err := vs.visitorRepo.Create(ctx, visitor); err != nil {
		return nil, storageErr("create visitor", err)
	}
	return visitor, nil
}

type TicketSaleService interface {
	List(ctx context.Context) ([]*entity.TicketSale, error)
	Create(ctx context.Context, req *request.TicketSaleRequest) (*entity.TicketSale, error)
}

type ticketSaleService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  Clock
}

func NewTicketSaleService(repo *repository.Repository, log *zap.Logger, now Clock) TicketSaleService {
	return &ticketSaleService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket_sale")),
		now:  now,
	}
}

func (ts *ticketSaleService) List(ctx context.Context) ([]*entity.TicketSale, error) {
	sales, err := ts.repo.TicketSale.FindAll(ctx)
	if err != nil {
		return nil, storageErr("list ticket sales", err)
	}
	return sales, nil
}

// Create records a sale. When the buyer left an email the visitor
// directory is updated too: an existing visitor with that email gets the
// new name and phone, otherwise a visitor is added.
func (ts *ticketSaleService) Create(ctx context.Context, req *request.TicketSaleRequest) (*entity.TicketSale, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := ts.now()
	sale := &entity.TicketSale{
		ID:           orDefault(req.ID, utils.GenerateRandomID("sale", now)),
		TicketID:     req.TicketID,
		Quantity:     req.Quantity,
		TotalAmount:  req.TotalAmount,
		Date:         orDefault(req.Date, utils.FormatDate(now)),
		VisitorName:  req.VisitorName,
		VisitorEmail: nonEmpty(&req.VisitorEmail),
		VisitorPhone: nonEmpty(&req.VisitorPhone),
	}

	err := ts.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.TicketSale.Create(ctx, sale); err != nil {
			return err
		}
		if sale.VisitorEmail == nil {
			return nil
		}
		return ts.upsertVisitor(ctx, tx, sale, now)
	})
	if err != nil {
		return nil, storageErr("create ticket sale", err)
	}

	ts.log.Info("Ticket sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Int("quantity", sale.Quantity),
	)
	return sale, nil
}

func (ts *ticketSaleService) upsertVisitor(ctx context.Context, tx *repository.Repository, sale *entity.TicketSale, now time.Time) error {
	visitorID, err := tx.Visitor.FindIDByEmail(ctx, *sale.VisitorEmail)
	if err != nil {
		return err
	}

	if visitorID != "" {
		return tx.Visitor.UpdateContact(ctx, visitorID, sale.VisitorName, sale.VisitorPhone)
	}

	return tx.Visitor.Create(ctx, &entity.Visitor{
		ID:               utils.GenerateRandomID("visitor", now),
		Name:             sale.VisitorName,
		Email:            sale.VisitorEmail,
		Phone:            sale.VisitorPhone,
		RegistrationDate: sale.Date,
	})
}

// nonEmpty maps nil and "" to nil so optional columns store NULL.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
