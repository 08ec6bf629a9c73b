// Package http exposes the vehicle lifecycle operations over an echo server.
// Handlers stay thin: they translate requests into commands and queries,
// delegate to the application layer, and map error kinds onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// actorHeader carries the authenticated identity performing the operation.
// Authentication itself happens upstream; an absent header means the change
// originated from the system.
const actorHeader = "X-Actor"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createVehicleHandler       commands.CreateVehicleCommandHandler
	updateVehicleHandler       commands.UpdateVehicleCommandHandler
	changeStateHandler         commands.ChangeVehicleStateCommandHandler
	releaseReservationHandler  commands.ReleaseReservationCommandHandler
	updateOdometerHandler      commands.UpdateOdometerCommandHandler
	registerMaintenanceHandler commands.RegisterMaintenanceCommandHandler

	// Query handlers
	getVehicleHandler       queries.GetVehicleQueryHandler
	getVehicleDetailHandler queries.GetVehicleDetailQueryHandler
	listVehiclesHandler     queries.ListVehiclesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createVehicleHandler commands.CreateVehicleCommandHandler,
	updateVehicleHandler commands.UpdateVehicleCommandHandler,
	changeStateHandler commands.ChangeVehicleStateCommandHandler,
	releaseReservationHandler commands.ReleaseReservationCommandHandler,
	updateOdometerHandler commands.UpdateOdometerCommandHandler,
	registerMaintenanceHandler commands.RegisterMaintenanceCommandHandler,
	getVehicleHandler queries.GetVehicleQueryHandler,
	getVehicleDetailHandler queries.GetVehicleDetailQueryHandler,
	listVehiclesHandler queries.ListVehiclesQueryHandler,
) *Server {
	return &Server{
		createVehicleHandler:       createVehicleHandler,
		updateVehicleHandler:       updateVehicleHandler,
		changeStateHandler:         changeStateHandler,
		releaseReservationHandler:  releaseReservationHandler,
		updateOdometerHandler:      updateOdometerHandler,
		registerMaintenanceHandler: registerMaintenanceHandler,
		getVehicleHandler:          getVehicleHandler,
		getVehicleDetailHandler:    getVehicleDetailHandler,
		listVehiclesHandler:        listVehiclesHandler,
	}
}

// RegisterRoutes attaches all vehicle endpoints and shared middleware to the
// echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.ListVehicles)
	api.GET("/vehicles/:id", s.GetVehicle)
	api.GET("/vehicles/:id/detail", s.GetVehicleDetail)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.PUT("/vehicles/:id/odometer", s.UpdateOdometer)
	api.POST("/vehicles/:id/state", s.ChangeState)
	api.POST("/vehicles/:id/activate", s.Activate)
	api.POST("/vehicles/:id/maintenance", s.SendToMaintenance)
	api.POST("/vehicles/:id/maintenance/register", s.RegisterMaintenance)
	api.POST("/vehicles/:id/repair", s.SendToRepair)
	api.POST("/vehicles/:id/reserve", s.Reserve)
	api.POST("/vehicles/:id/deactivate", s.Deactivate)
	api.POST("/vehicles/:id/release", s.ReleaseReservation)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "ok"})
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new fleet vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req CreateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	machineryClass, ok := vehicle.MachineryClassFromString(req.MachineryClass)
	if !ok {
		return badRequest(ctx, "Unknown machinery class: "+req.MachineryClass)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		req.Code,
		req.TypeID,
		req.ModelID,
		req.Plate,
		machineryClass,
		req.Year,
		req.PurchaseDate,
		req.InitialOdometer,
		req.FuelCapacity,
		req.EngineCapacity,
	)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	id, err := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Vehicle registered",
		Data:    map[string]int64{"id": id},
	})
}

// ListVehicles handles GET /api/v1/vehicles - filtered, paginated listing.
func (s *Server) ListVehicles(ctx echo.Context) error {
	filter, err := filterFromQueryParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query, err := queries.NewListVehiclesQuery(filter, page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.listVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "ok", Data: result})
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetVehicleQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getVehicleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "ok", Data: result})
}

// GetVehicleDetail handles GET /api/v1/vehicles/:id/detail - vehicle plus its
// full state history.
func (s *Server) GetVehicleDetail(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetVehicleDetailQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getVehicleDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "ok", Data: result})
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id - updates descriptive attributes.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req UpdateVehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		id,
		req.Plate,
		req.TypeID,
		req.ModelID,
		req.Year,
		req.PurchaseDate,
		req.FuelCapacity,
		req.EngineCapacity,
	)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if err = s.updateVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "Vehicle updated"})
}

// UpdateOdometer handles PUT /api/v1/vehicles/:id/odometer.
func (s *Server) UpdateOdometer(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req UpdateOdometerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOdometerCommand(id, req.Value)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOdometerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "Odometer updated"})
}

// RegisterMaintenance handles POST /api/v1/vehicles/:id/maintenance/register -
// records that maintenance was performed and schedules the next one.
func (s *Server) RegisterMaintenance(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req RegisterMaintenanceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterMaintenanceCommand(id, req.NextMaintenance)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerMaintenanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "Maintenance registered"})
}

// ChangeState handles POST /api/v1/vehicles/:id/state - generic transition to
// a named target state.
func (s *Server) ChangeState(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ChangeStateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetState, ok := vehicle.StateFromString(req.State)
	if !ok {
		return badRequest(ctx, "Unknown state: "+req.State)
	}

	cmd, err := commands.NewChangeVehicleStateCommand(id, targetState, req.Reason, actor(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return s.runTransition(ctx, cmd)
}

// Activate handles POST /api/v1/vehicles/:id/activate.
func (s *Server) Activate(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewActivateVehicleCommand(id, actor(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return s.runTransition(ctx, cmd)
}

// SendToMaintenance handles POST /api/v1/vehicles/:id/maintenance.
func (s *Server) SendToMaintenance(ctx echo.Context) error {
	return s.reasonedTransition(ctx, commands.NewSendToMaintenanceCommand)
}

// SendToRepair handles POST /api/v1/vehicles/:id/repair.
func (s *Server) SendToRepair(ctx echo.Context) error {
	return s.reasonedTransition(ctx, commands.NewSendToRepairCommand)
}

// Reserve handles POST /api/v1/vehicles/:id/reserve.
func (s *Server) Reserve(ctx echo.Context) error {
	return s.reasonedTransition(ctx, commands.NewReserveVehicleCommand)
}

// Deactivate handles POST /api/v1/vehicles/:id/deactivate.
func (s *Server) Deactivate(ctx echo.Context) error {
	return s.reasonedTransition(ctx, commands.NewDeactivateVehicleCommand)
}

// ReleaseReservation handles POST /api/v1/vehicles/:id/release - returns a
// reserved vehicle to active service.
func (s *Server) ReleaseReservation(ctx echo.Context) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReleaseReservationCommand(id, actor(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.releaseReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "Reservation released"})
}

// reasonedTransition is shared by the named transition endpoints whose body
// carries only a reason.
func (s *Server) reasonedTransition(
	ctx echo.Context,
	newCommand func(int64, string, string) (commands.ChangeVehicleStateCommand, error),
) error {
	id, err := vehicleID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newCommand(id, req.Reason, actor(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return s.runTransition(ctx, cmd)
}

func (s *Server) runTransition(ctx echo.Context, cmd commands.ChangeVehicleStateCommand) error {
	if err := s.changeStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "State changed"})
}

// vehicleID parses the :id path parameter.
func vehicleID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("vehicle id must be a positive integer")
	}
	return id, nil
}

// actor extracts the caller identity from the request headers.
func actor(ctx echo.Context) string {
	if a := ctx.Request().Header.Get(actorHeader); a != "" {
		return a
	}
	return vehicle.SystemActor
}

// filterFromQueryParams translates listing query parameters into a filter.
func filterFromQueryParams(ctx echo.Context) (queries.VehicleFilter, error) {
	filter := queries.VehicleFilter{
		Code:           ctx.QueryParam("code"),
		Plate:          ctx.QueryParam("plate"),
		State:          ctx.QueryParam("state"),
		MachineryClass: ctx.QueryParam("machineryClass"),
	}

	if raw := ctx.QueryParam("typeId"); raw != "" {
		typeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return queries.VehicleFilter{}, errors.New("typeId must be an integer")
		}
		filter.TypeID = typeID
	}
	if raw := ctx.QueryParam("modelId"); raw != "" {
		modelID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return queries.VehicleFilter{}, errors.New("modelId must be an integer")
		}
		filter.ModelID = modelID
	}
	if raw := ctx.QueryParam("purchasedFrom"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.VehicleFilter{}, errors.New("purchasedFrom must be an RFC3339 timestamp")
		}
		filter.PurchasedFrom = &from
	}
	if raw := ctx.QueryParam("purchasedTo"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.VehicleFilter{}, errors.New("purchasedTo must be an RFC3339 timestamp")
		}
		filter.PurchasedTo = &to
	}
	filter.MaintenanceDue = ctx.QueryParam("maintenanceDue") == "true"

	return filter, nil
}

// badRequest writes a 400 envelope.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// fail maps a use-case error onto a status code and writes the envelope.
func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusFromError(err), Envelope{Success: false, Message: err.Error()})
}
