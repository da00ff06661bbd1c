package progress

import "time"

type RecordProgressRequest struct {
	RiderID             string  `json:"riderId" binding:"required"`
	Date                string  `json:"date"`
	DeliveriesCompleted int     `json:"deliveriesCompleted"`
	HoursWorked         float64 `json:"hoursWorked"`
	Earnings            float64 `json:"earnings"`
}

type ProgressResponse struct {
	ID                  string    `json:"id"`
	RiderID             string    `json:"riderId"`
	Date                time.Time `json:"date"`
	DeliveriesCompleted int       `json:"deliveriesCompleted"`
	HoursWorked         float64   `json:"hoursWorked"`
	Earnings            float64   `json:"earnings"`
}

type ProgressSummary struct {
	TotalDeliveries int64   `json:"totalDeliveries"`
	TotalEarnings   float64 `json:"totalEarnings"`
}

type SelfProgressResponse struct {
	Items   []ProgressResponse `json:"items"`
	Summary ProgressSummary    `json:"summary"`
}
