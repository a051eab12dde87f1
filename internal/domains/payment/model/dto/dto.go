package dto

import (
	"atithi/internal/domains/payment/model"
	"atithi/shared"
	gDto "atithi/shared/dto"
)

// UpdatePaymentRequest carries bill_paid_amount as a delta to add to the
// cumulative paid total, not as a replacement value.
type UpdatePaymentRequest struct {
	Method         *string  `json:"method"           validate:"omitempty,oneof=partial_online full_online offline"`
	Status         *string  `json:"status"           validate:"omitempty,oneof=partial_paid paid pending"`
	BillPaidAmount *float64 `json:"bill_paid_amount" validate:"omitempty,gt=0"`
}

type PaymentResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	UserID         string  `json:"user_id"`
	Method         string  `json:"method"`
	Status         string  `json:"status"`
	Currency       string  `json:"currency"`
	BillAmount     float64 `json:"bill_amount"`
	BillPaidAmount float64 `json:"bill_paid_amount"`
	gDto.Metadata
}

func (res *PaymentResponse) FromModel(payment model.Payment) {
	res.ID = shared.FormatID(payment.ID)
	res.BookingID = shared.FormatID(payment.BookingID)
	res.UserID = shared.FormatID(payment.UserID)
	res.Method = payment.Method
	res.Status = payment.Status
	res.Currency = payment.Currency
	res.BillAmount = payment.BillAmount
	res.BillPaidAmount = payment.BillPaidAmount
	res.Metadata.FromModel(payment.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}

func (res *GetPaymentsResponse) FromModels(payments []model.Payment, total, limit int) {
	res.Payments = make([]PaymentResponse, 0, len(payments))

	for _, payment := range payments {
		paymentRes := PaymentResponse{}
		paymentRes.FromModel(payment)
		res.Payments = append(res.Payments, paymentRes)
	}

	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, limit)
}
