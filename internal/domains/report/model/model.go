package model

import "time"

type Kpis struct {
	TotalRevenue  float64
	RevenueToday  float64
	TotalBookings int
	Occupancy     int
	ADR           int
	RevPAR        int
}

type TrendPoint struct {
	Day     time.Time `db:"day"`
	Revenue float64   `db:"revenue"`
}

type RoomRevenue struct {
	RoomName string  `db:"room_name"`
	Revenue  float64 `db:"revenue"`
}

type PaymentBucket struct {
	Status          string  `db:"status"`
	Count           int     `db:"count"`
	TotalBillAmount float64 `db:"total_bill_amount"`
	PaidAmount      float64 `db:"paid_amount"`
	PendingAmount   float64 `db:"pending_amount"`
}

type Occupancy struct {
	TotalRooms    int `db:"total_rooms"`
	OccupiedRooms int `db:"occupied_rooms"`
}
