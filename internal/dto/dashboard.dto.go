package dto

type DashboardDTO struct {
	Pending   []ReservationListDTO `json:"pending"`
	Confirmed []ReservationListDTO `json:"confirmed"`
	Finished  []ReservationListDTO `json:"finished"`
}
