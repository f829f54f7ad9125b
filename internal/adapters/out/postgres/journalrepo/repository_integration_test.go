package journalrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/journalrepo"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// JournalRepositoryIntegrationTestSuite provides integration tests for
// GormJournalRepository using PostgreSQL containers.
type JournalRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *journalrepo.GormJournalRepository
	tracker    *MockAggregateTracker
}

func (suite *JournalRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&journalrepo.EntryDTO{}))
}

func (suite *JournalRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_journal").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = journalrepo.NewGormJournalRepository(suite.db, suite.tracker)
}

func (suite *JournalRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JournalRepositoryIntegrationTestSuite) TestAdd_ValidEntry_Success() {
	ctx := context.Background()

	entry := suite.createEntry(kernel.NewUUID(), journal.ActionPushed, "CN-5001", time.Now().UTC())
	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	var count int64
	suite.Require().NoError(suite.db.Model(&journalrepo.EntryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JournalRepositoryIntegrationTestSuite) TestAdd_UnconstructedEntry_Fails() {
	ctx := context.Background()

	var entry journal.Entry
	err := suite.repository.Add(ctx, &entry)
	suite.Require().ErrorIs(err, journal.ErrEntryIsNotConstructed)
}

func (suite *JournalRepositoryIntegrationTestSuite) TestGetByOrderID_ReturnsOldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	tracked := suite.createEntry(orderID, journal.ActionTracked, "CN-5002", base.Add(time.Hour))
	pushed := suite.createEntry(orderID, journal.ActionPushed, "CN-5002", base)
	other := suite.createEntry(kernel.NewUUID(), journal.ActionPushed, "CN-9999", base)

	suite.Require().NoError(suite.repository.Add(ctx, tracked))
	suite.Require().NoError(suite.repository.Add(ctx, pushed))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	entries, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	suite.Equal(journal.ActionPushed, entries[0].Action())
	suite.Equal(journal.ActionTracked, entries[1].Action())
	suite.True(entries[0].OrderID().IsEqual(orderID))
	suite.JSONEq(`{"k":"v"}`, string(entries[0].Details()))
}

func (suite *JournalRepositoryIntegrationTestSuite) TestGetByOrderID_NoEntries_ReturnsEmptySlice() {
	ctx := context.Background()

	entries, err := suite.repository.GetByOrderID(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *JournalRepositoryIntegrationTestSuite) TestHasPush() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	// Tracking entries alone do not count as a push.
	tracked := suite.createEntry(orderID, journal.ActionTracked, "CN-5003", time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, tracked))

	has, err := suite.repository.HasPush(ctx, orderID)
	suite.Require().NoError(err)
	suite.False(has)

	pushed := suite.createEntry(orderID, journal.ActionPushed, "CN-5003", time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, pushed))

	has, err = suite.repository.HasPush(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(has)

	has, err = suite.repository.HasPush(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(has)
}

func (suite *JournalRepositoryIntegrationTestSuite) createEntry(
	orderID kernel.UUID,
	action journal.Action,
	trackingNumber string,
	createdAt time.Time,
) *journal.Entry {
	entry, err := journal.NewEntry(
		orderID,
		courier.ProviderPostex,
		action,
		trackingNumber,
		json.RawMessage(`{"k":"v"}`),
		createdAt,
	)
	suite.Require().NoError(err)
	return entry
}

func TestJournalRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(JournalRepositoryIntegrationTestSuite))
}
