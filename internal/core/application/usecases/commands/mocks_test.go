package commands_test

import (
	"context"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the command handler tests.

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByCode(ctx context.Context, code string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ExistsWithCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) ExistsWithPlate(ctx context.Context, plate string, excludeID int64) (bool, error) {
	args := m.Called(ctx, plate, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Add(ctx context.Context, entry *vehicle.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) Update(ctx context.Context, entry *vehicle.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetOpenByVehicle(ctx context.Context, vehicleID int64) (*vehicle.HistoryEntry, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(*vehicle.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]*vehicle.HistoryEntry, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]*vehicle.HistoryEntry), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) VehicleTypeExists(ctx context.Context, typeID int64) (bool, error) {
	args := m.Called(ctx, typeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) ModelExists(ctx context.Context, modelID int64) (bool, error) {
	args := m.Called(ctx, modelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) AddVehicleType(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) AddModel(ctx context.Context, name string, make string) (int64, error) {
	args := m.Called(ctx, name, make)
	return args.Get(0).(int64), args.Error(1)
}

type MockVehicleUoW struct {
	mock.Mock
}

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct {
	mock.Mock
}

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockTransitionUoW struct {
	mock.Mock
}

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockTransitionUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockTransitionUoWFactory struct {
	mock.Mock
}

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockRegistrationUoW struct {
	mock.Mock
}

func (m *MockRegistrationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockRegistrationUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockRegistrationUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockRegistrationUoWFactory struct {
	mock.Mock
}

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}
