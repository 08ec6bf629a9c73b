package http

import "time"

// Envelope is the uniform response body. Data is omitted for plain
// acknowledgements.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CreateVehicleRequest is the body for registering a new fleet vehicle.
type CreateVehicleRequest struct {
	Code            string    `json:"code"`
	TypeID          int64     `json:"typeId"`
	ModelID         int64     `json:"modelId"`
	Plate           string    `json:"plate"`
	MachineryClass  string    `json:"machineryClass"`
	Year            int       `json:"year"`
	PurchaseDate    time.Time `json:"purchaseDate"`
	InitialOdometer float64   `json:"initialOdometer"`
	FuelCapacity    float64   `json:"fuelCapacity"`
	EngineCapacity  string    `json:"engineCapacity"`
}

// UpdateVehicleRequest is the body for updating descriptive attributes.
// Identity fields (code, initial odometer, machinery class) are fixed at
// registration and absent here.
type UpdateVehicleRequest struct {
	Plate          string    `json:"plate"`
	TypeID         int64     `json:"typeId"`
	ModelID        int64     `json:"modelId"`
	Year           int       `json:"year"`
	PurchaseDate   time.Time `json:"purchaseDate"`
	FuelCapacity   float64   `json:"fuelCapacity"`
	EngineCapacity string    `json:"engineCapacity"`
}

// TransitionRequest is the body for the named transition endpoints.
type TransitionRequest struct {
	Reason string `json:"reason"`
}

// ChangeStateRequest is the body for the generic state endpoint; the target
// state is named explicitly.
type ChangeStateRequest struct {
	State  string `json:"state"`
	Reason string `json:"reason"`
}

// UpdateOdometerRequest is the body for recording a new odometer reading.
type UpdateOdometerRequest struct {
	Value float64 `json:"value"`
}

// RegisterMaintenanceRequest is the body for recording performed maintenance.
// NextMaintenance is optional; when absent the next date defaults to three
// months out.
type RegisterMaintenanceRequest struct {
	NextMaintenance *time.Time `json:"nextMaintenance"`
}
