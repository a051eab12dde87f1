package dto

import (
	"time"

	"atithi/internal/domains/offer/model"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"
)

type CreateOfferRequest struct {
	RoomID          string   `json:"room_id"          validate:"required"`
	Title           string   `json:"title"            validate:"required"`
	DiscountPercent float64  `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	OfferPrice      *float64 `json:"offer_price"      validate:"omitempty,gt=0"`
	StartDate       *string  `json:"start_date"       validate:"omitempty"`
	EndDate         *string  `json:"end_date"         validate:"omitempty"`
	IsActive        bool     `json:"is_active"`
}

func (req *CreateOfferRequest) ToModel(id int64) (model.Offer, error) {
	roomID, err := shared.ParseID(req.RoomID)
	if err != nil {
		return model.Offer{}, failure.BadRequestFromString("invalid room id") //nolint:wrapcheck
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return model.Offer{}, failure.BadRequestFromString("invalid start date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return model.Offer{}, failure.BadRequestFromString("invalid end date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	if startDate != nil && endDate != nil && !endDate.After(*startDate) {
		return model.Offer{}, failure.UnprocessableEntity("offer end date must be after start date") //nolint:wrapcheck
	}

	return model.Offer{
		ID:              id,
		RoomID:          roomID,
		Title:           req.Title,
		DiscountPercent: req.DiscountPercent,
		OfferPrice:      req.OfferPrice,
		StartDate:       startDate,
		EndDate:         endDate,
		IsActive:        req.IsActive,
	}, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, *value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}

type UpdateOfferRequest struct {
	Title           *string  `json:"title"            db:"title"            validate:"omitempty"`
	DiscountPercent *float64 `json:"discount_percent" db:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	OfferPrice      *float64 `json:"offer_price"      db:"offer_price"      validate:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active"        db:"is_active"        validate:"omitempty"`
}

type OfferResponse struct {
	ID              string   `json:"id"`
	RoomID          string   `json:"room_id"`
	Title           string   `json:"title"`
	DiscountPercent float64  `json:"discount_percent"`
	OfferPrice      *float64 `json:"offer_price"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	IsActive        bool     `json:"is_active"`
	gDto.Metadata
}

func (res *OfferResponse) FromModel(offer model.Offer) {
	res.ID = shared.FormatID(offer.ID)
	res.RoomID = shared.FormatID(offer.RoomID)
	res.Title = offer.Title
	res.DiscountPercent = offer.DiscountPercent
	res.OfferPrice = offer.OfferPrice
	res.StartDate = formatOptionalDate(offer.StartDate)
	res.EndDate = formatOptionalDate(offer.EndDate)
	res.IsActive = offer.IsActive
	res.Metadata.FromModel(offer.Metadata)
}

func formatOptionalDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := timezone.Format(*value, constant.DateOnlyFormat)

	return &formatted
}

type GetOffersResponse struct {
	Offers    []OfferResponse `json:"offers"`
	Total     int             `json:"total"`
	TotalPage int             `json:"total_page"`
}

func (res *GetOffersResponse) FromModels(offers []model.Offer, total, limit int) {
	res.Offers = make([]OfferResponse, 0, len(offers))

	for _, offer := range offers {
		offerRes := OfferResponse{}
		offerRes.FromModel(offer)
		res.Offers = append(res.Offers, offerRes)
	}

	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, limit)
}
