package model

import "time"

type Summary struct {
	TotalUsers       int     `db:"total_users"`
	NewUsersToday    int     `db:"new_users_today"`
	BookingsToday    int     `db:"bookings_today"`
	CheckInsToday    int     `db:"check_ins_today"`
	CheckOutsToday   int     `db:"check_outs_today"`
	UpcomingBookings int     `db:"upcoming_bookings"`
	RevenueToday     float64 `db:"revenue_today"`
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type MinuteCount struct {
	Minute time.Time `db:"minute"`
	Count  int       `db:"count"`
}
