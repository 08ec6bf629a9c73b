package commands_test

import (
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validUpdateVehicleCommand(t *testing.T, vehicleID int64, plate string) commands.UpdateVehicleCommand {
	t.Helper()

	cmd, err := commands.NewUpdateVehicleCommand(
		vehicleID, plate, 3, 4, 2021, time.Now().UTC().AddDate(-2, 0, 0), 120, "3.0L")
	require.NoError(t, err)
	return cmd
}

func TestNewUpdateVehicleCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockRegistrationUoWFactory)

	// Act
	handler := commands.NewUpdateVehicleCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestUpdateVehicleCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	vehicleID := int64(7)
	aggregate := restoreVehicleInState(t, vehicleID, vehicle.StateActive) // plate ABC-1234
	cmd := validUpdateVehicleCommand(t, vehicleID, "XYZ-9876")

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("Get", ctx, vehicleID).Return(aggregate, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "XYZ-9876", vehicleID).Return(false, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(3)).Return(true, nil).Once(),
		mockCatalogRepo.On("ModelExists", ctx, int64(4)).Return(true, nil).Once(),
		mockVehicleRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateVehicleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "XYZ-9876", aggregate.Plate())
	assert.Equal(t, int64(3), aggregate.TypeID())
	assert.Equal(t, int64(4), aggregate.ModelID())
	assert.Equal(t, 2021, aggregate.Year())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}

func TestUpdateVehicleCommandHandler_Handle_UnchangedPlateSkipsUniquenessCheck(t *testing.T) {
	// Arrange
	ctx := t.Context()
	vehicleID := int64(7)
	aggregate := restoreVehicleInState(t, vehicleID, vehicle.StateActive)
	cmd := validUpdateVehicleCommand(t, vehicleID, "ABC-1234") // same plate

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("Get", ctx, vehicleID).Return(aggregate, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(3)).Return(true, nil).Once(),
		mockCatalogRepo.On("ModelExists", ctx, int64(4)).Return(true, nil).Once(),
		mockVehicleRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateVehicleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockVehicleRepo.AssertNotCalled(t, "ExistsWithPlate", mock.Anything, mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}

func TestUpdateVehicleCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.UpdateVehicleCommand // zero value command

	mockFactory := new(MockRegistrationUoWFactory)
	handler := commands.NewUpdateVehicleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateVehicleCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestUpdateVehicleCommandHandler_Handle_DuplicatePlate(t *testing.T) {
	// Arrange
	ctx := t.Context()
	vehicleID := int64(7)
	aggregate := restoreVehicleInState(t, vehicleID, vehicle.StateActive)
	cmd := validUpdateVehicleCommand(t, vehicleID, "XYZ-9876")

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("Get", ctx, vehicleID).Return(aggregate, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "XYZ-9876", vehicleID).Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateVehicleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.IsType(t, &errs.DuplicateValueError{}, err)
	assert.Equal(t, "ABC-1234", aggregate.Plate(), "plate should be unchanged")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}

func TestUpdateVehicleCommandHandler_Handle_UnknownVehicleType(t *testing.T) {
	// Arrange
	ctx := t.Context()
	vehicleID := int64(7)
	aggregate := restoreVehicleInState(t, vehicleID, vehicle.StateActive)
	cmd := validUpdateVehicleCommand(t, vehicleID, "XYZ-9876")

	mockVehicleRepo := new(MockVehicleRepository)
	mockCatalogRepo := new(MockCatalogRepository)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockUoW.On("CatalogRepository").Return(mockCatalogRepo).Once(),
		mockVehicleRepo.On("Get", ctx, vehicleID).Return(aggregate, nil).Once(),
		mockVehicleRepo.On("ExistsWithPlate", ctx, "XYZ-9876", vehicleID).Return(false, nil).Once(),
		mockCatalogRepo.On("VehicleTypeExists", ctx, int64(3)).Return(false, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateVehicleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockCatalogRepo.AssertExpectations(t)
}
