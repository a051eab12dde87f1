package dto

import (
	"time"

	"atithi/internal/domains/booking/model"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"
)

type GuestInfo struct {
	Name           string `json:"name"            validate:"required"`
	Email          string `json:"email"           validate:"omitempty,email"`
	WhatsappNumber string `json:"whatsapp_number" validate:"omitempty"`
}

type CreateBookingRequest struct {
	RoomID        string     `json:"room_id"        validate:"required"`
	CheckIn       string     `json:"check_in"       validate:"required"`
	CheckOut      string     `json:"check_out"      validate:"required"`
	UserID        *string    `json:"user_id"        validate:"omitempty"`
	Guest         *GuestInfo `json:"guest"          validate:"omitempty"`
	Adults        int        `json:"adults"         validate:"omitempty,gte=0"`
	Children      int        `json:"children"       validate:"omitempty,gte=0"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=partial_online full_online offline"`
}

type RescheduleBookingRequest struct {
	RoomID        string    `json:"room_id"        validate:"required"`
	CheckIn       string    `json:"check_in"       validate:"required"`
	CheckOut      string    `json:"check_out"      validate:"required"`
	Guest         GuestInfo `json:"guest"          validate:"required"`
	Adults        int       `json:"adults"         validate:"omitempty,gte=0"`
	Children      int       `json:"children"       validate:"omitempty,gte=0"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=partial_online full_online offline"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ParseDateRange parses check-in and check-out dates and enforces the
// check-out-after-check-in invariant.
func ParseDateRange(checkIn, checkOut string) (in, out time.Time, err error) {
	in, err = timezone.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return in, out, failure.BadRequestFromString("invalid check-in date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	out, err = timezone.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return in, out, failure.BadRequestFromString("invalid check-out date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	if !out.After(in) {
		return in, out, failure.UnprocessableEntity("check-out must be after check-in") //nolint:wrapcheck
	}

	return in, out, nil
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

type CreateBookingResponse struct {
	BookingID     string  `json:"booking_id"`
	Status        string  `json:"status"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	BillAmount    float64 `json:"bill_amount"`
}

type BookingResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	UserID   string `json:"user_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	gDto.Metadata
}

func (res *BookingResponse) FromModel(booking model.Booking) {
	res.ID = shared.FormatID(booking.ID)
	res.RoomID = shared.FormatID(booking.RoomID)
	res.UserID = shared.FormatID(booking.UserID)
	res.CheckIn = timezone.Format(booking.CheckIn, constant.DateOnlyFormat)
	res.CheckOut = timezone.Format(booking.CheckOut, constant.DateOnlyFormat)
	res.Status = booking.Status
	res.Adults = booking.Adults
	res.Children = booking.Children
	res.Metadata.FromModel(booking.Metadata)
}

type BookingDetailResponse struct {
	BookingResponse
	UserName       string   `json:"user_name"`
	UserEmail      string   `json:"user_email"`
	WhatsappNumber string   `json:"whatsapp_number"`
	RoomName       string   `json:"room_name"`
	RoomNumber     string   `json:"room_number"`
	RoomType       string   `json:"room_type"`
	PaymentMethod  *string  `json:"payment_method"`
	PaymentStatus  *string  `json:"payment_status"`
	BillAmount     *float64 `json:"bill_amount"`
	BillPaidAmount *float64 `json:"bill_paid_amount"`
}

func (res *BookingDetailResponse) FromModel(detail model.BookingDetail) {
	res.BookingResponse.FromModel(detail.Booking)
	res.UserName = detail.UserName
	res.UserEmail = detail.UserEmail
	res.WhatsappNumber = detail.WhatsappNumber
	res.RoomName = detail.RoomName
	res.RoomNumber = detail.RoomNumber
	res.RoomType = detail.RoomType
	res.PaymentMethod = detail.PaymentMethod
	res.PaymentStatus = detail.PaymentStatus
	res.BillAmount = detail.BillAmount
	res.BillPaidAmount = detail.BillPaidAmount
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}

func (res *GetBookingsResponse) FromModels(bookings []model.Booking, total, limit int) {
	res.Bookings = make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		bookingRes := BookingResponse{}
		bookingRes.FromModel(booking)
		res.Bookings = append(res.Bookings, bookingRes)
	}

	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetBookingDetailsResponse struct {
	Bookings []BookingDetailResponse `json:"bookings"`
	Total    int                     `json:"total"`
}

func (res *GetBookingDetailsResponse) FromModels(details []model.BookingDetail) {
	res.Bookings = make([]BookingDetailResponse, 0, len(details))

	for _, detail := range details {
		detailRes := BookingDetailResponse{}
		detailRes.FromModel(detail)
		res.Bookings = append(res.Bookings, detailRes)
	}

	res.Total = len(details)
}

// BookingEvent is the payload published to the booking lifecycle topic.
type BookingEvent struct {
	Event      string  `json:"event"`
	BookingID  string  `json:"booking_id"`
	RoomID     string  `json:"room_id"`
	UserID     string  `json:"user_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Status     string  `json:"status"`
	BillAmount float64 `json:"bill_amount,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}
