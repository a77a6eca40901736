package usecase

import (
	"testing"
	"time"

	"zoo-admin/internal/data/repository"
	"zoo-admin/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestService(t *testing.T) (pgxmock.PgxPoolIface, Service) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	config := &utils.Config{
		Auth: utils.AuthConfig{DefaultEmployeePassword: "emp123"},
	}
	repo := repository.NewRepository(mock, zap.NewNop())

	return mock, newService(repo, config, zap.NewNop(), fixedClock)
}

func ptr[T any](v T) *T { return &v }
