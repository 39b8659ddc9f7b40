package queries_test

import (
	"context"
	"time"

	"smartlogi/internal/adapters/out/postgres/clientrepo"
	"smartlogi/internal/adapters/out/postgres/courierrepo"
	"smartlogi/internal/adapters/out/postgres/parcelrepo"
	"smartlogi/internal/adapters/out/postgres/zonerepo"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the repository's aggregate tracking dependency in tests.
type nopTracker struct{}

func (nopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlerTestSuite is the shared fixture for query handler integration
// tests: one PostgreSQL container per suite, a truncated schema per test,
// and seeding helpers that persist through the write-side repositories.
type QueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ProductLineDTO{},
		&parcelrepo.HistoryEntryDTO{},
		&courierrepo.CourierDTO{},
		&zonerepo.ZoneDTO{},
		&clientrepo.SenderDTO{},
		&clientrepo.RecipientDTO{},
	))
}

func (suite *QueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE parcel_products, parcel_history, parcels, couriers, zones, senders, recipients",
	).Error)
}

func (suite *QueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// parcelSeed describes one parcel to persist. Zero fields fall back to
// sensible defaults.
type parcelSeed struct {
	description string
	city        string
	weight      float64
	priority    parcel.Priority
	status      parcel.Status
	createdAt   time.Time
	courierID   *kernel.UUID
	zoneID      kernel.UUID
	senderID    kernel.UUID
}

func (suite *QueryHandlerTestSuite) seedParcel(seed parcelSeed) *parcel.Parcel {
	if seed.city == "" {
		seed.city = "Casablanca"
	}
	if seed.weight == 0 {
		seed.weight = 1.0
	}
	if seed.priority == parcel.PriorityUnknown {
		seed.priority = parcel.PriorityNormal
	}
	if seed.createdAt.IsZero() {
		seed.createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if seed.zoneID.Validate() != nil {
		seed.zoneID = kernel.NewUUID()
	}
	if seed.senderID.Validate() != nil {
		seed.senderID = kernel.NewUUID()
	}

	p, err := parcel.NewParcel(
		kernel.NewUUID(), seed.description, seed.weight, seed.priority, seed.city,
		seed.senderID, kernel.NewUUID(), seed.zoneID, seed.createdAt,
	)
	suite.Require().NoError(err)

	if seed.courierID != nil {
		suite.Require().NoError(p.AssignCourier(*seed.courierID, "Sara Alami", seed.createdAt))
	}
	if seed.status != parcel.StatusUnknown && seed.status != parcel.StatusCreated {
		suite.Require().NoError(p.ChangeStatus(seed.status, "", seed.createdAt))
	}

	repo := parcelrepo.NewGormParcelRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

func (suite *QueryHandlerTestSuite) updateParcel(p *parcel.Parcel) {
	repo := parcelrepo.NewGormParcelRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), p))
}

func (suite *QueryHandlerTestSuite) seedZone(name string) kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&zonerepo.ZoneDTO{
		ID:         id.Bytes(),
		Name:       name,
		PostalCode: "20000",
	}).Error)
	return id
}

func (suite *QueryHandlerTestSuite) seedCourier(firstName, lastName string) kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&courierrepo.CourierDTO{
		ID:        id.Bytes(),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     "+212600000001",
	}).Error)
	return id
}
