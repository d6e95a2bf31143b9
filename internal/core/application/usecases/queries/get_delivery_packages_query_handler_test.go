package queries_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/postgres/parcelrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetDeliveryPackagesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDeliveryPackagesQueryHandler
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(&suite.Suite)
	suite.handler = queries.NewGetDeliveryPackagesQueryHandler(suite.db)
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE packages CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) createAssignedPackage(clientName string, courierID uint) *parcel.Package {
	pkg, err := parcel.NewPackage(clientName, 2, 1.5, "742 Evergreen Terrace", parcel.Pending)
	suite.Require().NoError(err)

	repo := parcelrepo.NewGormPackageRepository(suite.db, &mockAggregateTracker{})
	created, err := repo.Add(context.Background(), pkg)
	suite.Require().NoError(err)

	err = repo.AssignCourier(context.Background(), []uint{created.ID()}, courierID)
	suite.Require().NoError(err)

	return created
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) TestHandle_NoAssignedPackages_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveryPackagesQuery(7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) TestHandle_ReturnsOnlyCourierPackages() {
	mine := suite.createAssignedPackage("Alice", 7)
	suite.createAssignedPackage("Bob", 8)

	query, err := queries.NewGetDeliveryPackagesQuery(7)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID(), result[0].ID)
	suite.Equal("Alice", result[0].ClientName)
	suite.Equal(uint(7), result[0].CourierID)
}

func (suite *GetDeliveryPackagesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDeliveryPackagesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetDeliveryPackagesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryPackagesQueryHandlerTestSuite))
}
