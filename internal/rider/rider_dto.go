package rider

import "time"

type CreateRiderRequest struct {
	Username          string `json:"username" binding:"required"`
	DefaultPassword   string `json:"defaultPassword"`
	FullName          string `json:"fullName" binding:"required"`
	Phone             string `json:"phone" binding:"required"`
	VehicleNumber     string `json:"vehicleNumber" binding:"required"`
	Status            string `json:"status"`
	CurrentAssignment string `json:"currentAssignment"`
}

// UpdateRiderRequest is a partial update: nil means "leave untouched".
// CurrentAssignment present but empty ("") explicitly unassigns the rider.
type UpdateRiderRequest struct {
	FullName          *string `json:"fullName"`
	Phone             *string `json:"phone"`
	VehicleNumber     *string `json:"vehicleNumber"`
	Status            *string `json:"status"`
	CurrentAssignment *string `json:"currentAssignment"`
}

type AssignedCompany struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type RiderResponse struct {
	ID                string           `json:"id"`
	FullName          string           `json:"fullName"`
	Phone             string           `json:"phone"`
	VehicleNumber     string           `json:"vehicleNumber"`
	Status            string           `json:"status"`
	CurrentAssignment *AssignedCompany `json:"currentAssignment"`
	Username          string           `json:"username"`
	CreatedAt         time.Time        `json:"createdAt"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

type FleetStatsResponse struct {
	TotalRiders    int64          `json:"totalRiders"`
	ActiveRiders   int64          `json:"activeRiders"`
	InactiveRiders int64          `json:"inactiveRiders"`
	PerCompany     []CompanyCount `json:"perCompany"`
}
