package dto

import (
	"time"

	"atithi/internal/domains/report/model"
	"atithi/shared/constant"
	"atithi/shared/failure"
	"atithi/shared/timezone"
)

type SummaryResponse struct {
	Kpis   KpisResponse   `json:"kpis"`
	Charts ChartsResponse `json:"charts"`
}

type KpisResponse struct {
	TotalRevenue  float64 `json:"total_revenue"`
	RevenueToday  float64 `json:"revenue_today"`
	TotalBookings int     `json:"total_bookings"`
	Occupancy     int     `json:"occupancy"`
	ADR           int     `json:"adr"`
	RevPAR        int     `json:"revpar"`
}

type ChartsResponse struct {
	RevenueTrend  []TrendPointResponse    `json:"revenue_trend"`
	RevenueByRoom []RoomRevenueResponse   `json:"revenue_by_room"`
	PaymentStatus []PaymentBucketResponse `json:"payment_status"`
}

type TrendPointResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type RoomRevenueResponse struct {
	RoomName string  `json:"room_name"`
	Revenue  float64 `json:"revenue"`
}

type PaymentBucketResponse struct {
	Status          string  `json:"status"`
	Count           int     `json:"count"`
	TotalBillAmount float64 `json:"total_bill_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	PendingAmount   float64 `json:"pending_amount"`
}

// ParseDateRange resolves the optional from/to query params. Both default to
// today, from at midnight and to at the end of the day.
func ParseDateRange(fromParam, toParam string) (from, to time.Time, err error) {
	now := timezone.Now()
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to = from.AddDate(0, 0, 1).Add(-time.Nanosecond)

	if fromParam != "" {
		from, err = timezone.Parse(constant.DateOnlyFormat, fromParam)
		if err != nil {
			return from, to, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD") //nolint:wrapcheck
		}
	}

	if toParam != "" {
		to, err = timezone.Parse(constant.DateOnlyFormat, toParam)
		if err != nil {
			return from, to, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD") //nolint:wrapcheck
		}

		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if to.Before(from) {
		return from, to, failure.UnprocessableEntity("to date must not be before from date") //nolint:wrapcheck
	}

	return from, to, nil
}

func (res *SummaryResponse) FromModels(
	kpis model.Kpis,
	trend []model.TrendPoint,
	byRoom []model.RoomRevenue,
	buckets []model.PaymentBucket,
) {
	res.Kpis = KpisResponse(kpis)

	res.Charts.RevenueTrend = make([]TrendPointResponse, 0, len(trend))
	for _, point := range trend {
		res.Charts.RevenueTrend = append(res.Charts.RevenueTrend, TrendPointResponse{
			Date:    timezone.Format(point.Day, constant.DateOnlyFormat),
			Revenue: point.Revenue,
		})
	}

	res.Charts.RevenueByRoom = make([]RoomRevenueResponse, 0, len(byRoom))
	for _, revenue := range byRoom {
		res.Charts.RevenueByRoom = append(res.Charts.RevenueByRoom, RoomRevenueResponse(revenue))
	}

	res.Charts.PaymentStatus = make([]PaymentBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		res.Charts.PaymentStatus = append(res.Charts.PaymentStatus, PaymentBucketResponse(bucket))
	}
}
