package queries_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/adapters/out/postgres/orderlogrepo"
	"ordertracker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type GetOrderLogSnapshotsQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderLogSnapshotsQueryHandler
	archive   *orderlogrepo.GormOrderLogRepository
}

func (suite *GetOrderLogSnapshotsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.OpenDSN(ctx, dsn)
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres.Migrate(db))

	suite.handler = queries.NewGetOrderLogSnapshotsQueryHandler(db)
	suite.archive = orderlogrepo.NewGormOrderLogRepository(db)
}

func (suite *GetOrderLogSnapshotsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_log_snapshots CASCADE").Error)
}

func (suite *GetOrderLogSnapshotsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderLogSnapshotsQueryHandlerTestSuite) TestHandle_Empty() {
	snapshots, err := suite.handler.Handle(context.Background(), queries.NewGetOrderLogSnapshotsQuery())

	suite.Require().NoError(err)
	suite.NotNil(snapshots)
	suite.Empty(snapshots)
}

func (suite *GetOrderLogSnapshotsQueryHandlerTestSuite) TestHandle_NewestFirst() {
	ctx := context.Background()
	suite.Require().NoError(suite.archive.WriteOrderLog(ctx, slices.Values([]string{"a"})))
	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.archive.WriteOrderLog(ctx, slices.Values([]string{"a", "b", "c"})))

	snapshots, err := suite.handler.Handle(ctx, queries.NewGetOrderLogSnapshotsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 2)
	suite.Equal(3, snapshots[0].OrderCount)
	suite.Equal(1, snapshots[1].OrderCount)
	suite.True(snapshots[0].SavedAt.After(snapshots[1].SavedAt))
	suite.NoError(snapshots[0].ID.Validate())
}

func (suite *GetOrderLogSnapshotsQueryHandlerTestSuite) TestHandle_NotConstructed() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderLogSnapshotsQuery{})

	suite.ErrorIs(err, queries.ErrGetOrderLogSnapshotsQueryIsNotConstructed)
}

func TestGetOrderLogSnapshotsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetOrderLogSnapshotsQueryHandlerTestSuite))
}
