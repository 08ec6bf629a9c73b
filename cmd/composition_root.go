package cmd

import (
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeVehicleStateCommandHandler() commands.ChangeVehicleStateCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeVehicleStateCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseReservationCommandHandler() commands.ReleaseReservationCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseReservationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOdometerCommandHandler() commands.UpdateOdometerCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOdometerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterMaintenanceCommandHandler() commands.RegisterMaintenanceCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMaintenanceCommandHandler(f)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleDetailQueryHandler() queries.GetVehicleDetailQueryHandler {
	return queries.NewGetVehicleDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMaintenanceDueQueryHandler() queries.ListMaintenanceDueQueryHandler {
	return queries.NewListMaintenanceDueQueryHandler(c.gormDB)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}
