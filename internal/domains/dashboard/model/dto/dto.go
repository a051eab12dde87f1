package dto

import (
	"atithi/internal/domains/dashboard/model"
	"atithi/shared/constant"
	"atithi/shared/timezone"
)

type SummaryResponse struct {
	TotalUsers       int     `json:"total_users"`
	NewUsersToday    int     `json:"new_users_today"`
	BookingsToday    int     `json:"bookings_today"`
	CheckInsToday    int     `json:"check_ins_today"`
	CheckOutsToday   int     `json:"check_outs_today"`
	UpcomingBookings int     `json:"upcoming_bookings"`
	RevenueToday     float64 `json:"revenue_today"`

	StatusBreakdown   []StatusCountResponse `json:"status_breakdown"`
	BookingsPerMinute []MinuteCountResponse `json:"bookings_per_minute"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MinuteCountResponse struct {
	Minute string `json:"minute"`
	Count  int    `json:"count"`
}

func (res *SummaryResponse) FromModels(summary model.Summary, statuses []model.StatusCount, minutes []model.MinuteCount) {
	res.TotalUsers = summary.TotalUsers
	res.NewUsersToday = summary.NewUsersToday
	res.BookingsToday = summary.BookingsToday
	res.CheckInsToday = summary.CheckInsToday
	res.CheckOutsToday = summary.CheckOutsToday
	res.UpcomingBookings = summary.UpcomingBookings
	res.RevenueToday = summary.RevenueToday

	res.StatusBreakdown = make([]StatusCountResponse, 0, len(statuses))
	for _, status := range statuses {
		res.StatusBreakdown = append(res.StatusBreakdown, StatusCountResponse(status))
	}

	res.BookingsPerMinute = make([]MinuteCountResponse, 0, len(minutes))
	for _, minute := range minutes {
		res.BookingsPerMinute = append(res.BookingsPerMinute, MinuteCountResponse{
			Minute: timezone.Format(minute.Minute, constant.DateFormat),
			Count:  minute.Count,
		})
	}
}
