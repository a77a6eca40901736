package usecase

import (
	"context"
	"strings"
	"testing"

	"zoo-admin/internal/dto/request"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleRequest() *request.TicketSaleRequest {
	return &request.TicketSaleRequest{
		TicketID:     "t-1",
		Quantity:     2,
		TotalAmount:  30,
		VisitorName:  "Eve",
		VisitorEmail: "eve@mail.io",
	}
}

func TestTicketSale_UpdatesKnownVisitor(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ticket_sales").
		WithArgs(pgxmock.AnyArg(), "t-1", 2, float64(30), "2024-03-15", "Eve", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT id FROM visitors").
		WithArgs("eve@mail.io").
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("visitor-1"))
	mock.ExpectExec("UPDATE visitors").
		WithArgs("visitor-1", "Eve", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	sale, err := svc.TicketSaleService.Create(context.Background(), newSaleRequest())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sale.ID, "sale-"))
	assert.Nil(t, sale.VisitorPhone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketSale_AddsNewVisitor(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ticket_sales").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT id FROM visitors").
		WithArgs("eve@mail.io").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("INSERT INTO visitors").
		WithArgs(pgxmock.AnyArg(), "Eve", pgxmock.AnyArg(), pgxmock.AnyArg(), "2024-03-15").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	_, err := svc.TicketSaleService.Create(context.Background(), newSaleRequest())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketSale_WithoutEmailSkipsVisitors(t *testing.T) {
	mock, svc := newTestService(t)
	req := newSaleRequest()
	req.VisitorEmail = ""
	req.ID = "sale-fixed"

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ticket_sales").
		WithArgs("sale-fixed", "t-1", 2, float64(30), "2024-03-15", "Eve", (*string)(nil), (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	sale, err := svc.TicketSaleService.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "sale-fixed", sale.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketSale_MissingFields(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.TicketSaleService.Create(context.Background(), &request.TicketSaleRequest{TicketID: "t-1"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: quantity, totalAmount, visitorName", verr.Message())
}

func TestVisitor_CreateDefaults(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectExec("INSERT INTO visitors").
		WithArgs(pgxmock.AnyArg(), "Walk-in", (*string)(nil), ptr("0812"), "2024-03-15").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	visitor, err := svc.VisitorService.Create(context.Background(), &request.VisitorRequest{
		Name:  "Walk-in",
		Phone: ptr("0812"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(visitor.ID, "visitor-"))
	assert.Nil(t, visitor.Email)
	assert.Equal(t, "2024-03-15", visitor.RegistrationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZooInfo_Missing(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery("FROM zoo_info").WillReturnError(pgx.ErrNoRows)

	_, err := svc.ZooInfoService.Get(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
