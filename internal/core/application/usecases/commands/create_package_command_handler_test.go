package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) (*parcel.Package, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}
func (m *MockPackageRepository) Get(_ context.Context, _ uint) (*parcel.Package, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPackageRepository) GetAllByIDs(_ context.Context, _ []uint) ([]*parcel.Package, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPackageRepository) AssignCourier(_ context.Context, _ []uint, _ uint) error {
	return errors.New("not implemented in mock")
}
func (m *MockPackageRepository) Update(ctx context.Context, id uint, patch ports.PackagePatch) (*parcel.Package, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}
func (m *MockPackageRepository) UpdateOwned(ctx context.Context, id, courierID uint, patch ports.PackagePatch) (*parcel.Package, error) {
	args := m.Called(ctx, id, courierID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}
func (m *MockPackageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreatePackageCommand("Alice", 2, 1.5, "742 Evergreen Terrace", parcel.Pending)

	created := restorePendingPackage(t, 3)

	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Package")).Return(created, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePackageCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID())
	assert.Nil(t, got.Courier())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CreatePackageCommand{} // not constructed properly
	factory := new(MockPackageUoWFactory)
	h := commands.NewCreatePackageCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreatePackageCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreatePackageCommand("Alice", 2, 1.5, "742 Evergreen Terrace", parcel.Pending)

	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Package")).Return(nil, errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePackageCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreatePackageCommand("Alice", 2, 1.5, "742 Evergreen Terrace", parcel.Pending)

	uow := new(MockPackageUoW)
	factory := new(MockPackageUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreatePackageCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
