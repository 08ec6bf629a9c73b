package commands_test

import (
	"errors"
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateVehicleCommand(t *testing.T) commands.CreateVehicleCommand {
	t.Helper()

	cmd, err := commands.NewCreateVehicleCommand(
		"VEH-001", 1, 2, "ABC-1234", vehicle.MachineryLight,
		2020, time.Now().UTC().AddDate(-1, 0, 0), 1000, 80, "2.5L")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateVehicleCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockRegistrationUoWFactory)

	// Act
	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	var capturedEntry *vehicle.HistoryEntry
	mockVehicleRepo := new(MockVehicleRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("ExistsWithCode", ctx, "VEH-001").Return(false, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "ABC-1234", int64(0)).Return(false, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(1)).Return(true, nil).Once(),
		mockCatalogRepo.On("ModelExists", ctx, int64(2)).Return(true, nil).Once(),
		mockVehicleRepo.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).
			Run(func(args mock.Arguments) {
				// The store assigns the generated id on insert.
				aggregate := args.Get(1).(*vehicle.Vehicle)
				require.NoError(t, aggregate.AssignID(42))
			}).Return(nil).Once(),
		mockUoW.On("HistoryRepository").Return(mockHistoryRepo).Once(),
		mockHistoryRepo.On("Add", ctx, mock.MatchedBy(func(entry *vehicle.HistoryEntry) bool {
			capturedEntry = entry
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	// Verify the initial history entry belongs to the new vehicle
	require.NotNil(t, capturedEntry)
	assert.Equal(t, int64(42), capturedEntry.VehicleID())
	assert.Equal(t, vehicle.StateActive, capturedEntry.State())
	assert.Equal(t, vehicle.InitialStateReason, capturedEntry.Reason())
	assert.Equal(t, vehicle.SystemActor, capturedEntry.Actor())
	assert.True(t, capturedEntry.IsOpen())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateVehicleCommand // zero value command

	mockFactory := new(MockRegistrationUoWFactory)
	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateVehicleCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestCreateVehicleCommandHandler_Handle_DuplicateCode(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("ExistsWithCode", ctx, "VEH-001").Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.IsType(t, &errs.DuplicateValueError{}, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_DuplicatePlate(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("ExistsWithCode", ctx, "VEH-001").Return(false, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "ABC-1234", int64(0)).Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.IsType(t, &errs.DuplicateValueError{}, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_UnknownVehicleType(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("ExistsWithCode", ctx, "VEH-001").Return(false, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "ABC-1234", int64(0)).Return(false, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(1)).Return(false, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_UnknownModel(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("ExistsWithCode", ctx, "VEH-001").Return(false, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "ABC-1234", int64(0)).Return(false, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(1)).Return(true, nil).Once(),
		mockCatalogRepo.On("ModelExists", ctx, int64(2)).Return(false, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateVehicleCommand(t)

	expectedError := errors.New("commit failed")
	mockVehicleRepo := new(MockVehicleRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("ExistsWithCode", ctx, "VEH-001").Return(false, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "ABC-1234", int64(0)).Return(false, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(1)).Return(true, nil).Once(),
		mockCatalogRepo.On("ModelExists", ctx, int64(2)).Return(true, nil).Once(),
		mockVehicleRepo.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*vehicle.Vehicle)
				require.NoError(t, aggregate.AssignID(42))
			}).Return(nil).Once(),
		mockUoW.On("HistoryRepository").Return(mockHistoryRepo).Once(),
		mockHistoryRepo.On("Add", ctx, mock.AnythingOfType("*vehicle.HistoryEntry")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateVehicleCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}
