package dto

import (
	"atithi/infras/serpapi"
	"atithi/shared/constant"
	"atithi/shared/failure"
	"atithi/shared/timezone"
)

const defaultAdults = 2

type SearchRequest struct {
	Query         string
	CheckIn       string
	CheckOut      string
	Adults        int
	PropertyToken string
}

// Normalize fills the defaults the upstream engine expects. Dates default to
// today and tomorrow so a bare query still returns live rates.
func (req *SearchRequest) Normalize() error {
	if req.Query == "" {
		return failure.BadRequestFromString("query is required") //nolint:wrapcheck
	}

	if req.Adults <= 0 {
		req.Adults = defaultAdults
	}

	if req.CheckIn == "" || req.CheckOut == "" {
		today := timezone.Now()
		req.CheckIn = today.Format(constant.DateOnlyFormat)
		req.CheckOut = today.AddDate(0, 0, 1).Format(constant.DateOnlyFormat)

		return nil
	}

	for _, date := range []string{req.CheckIn, req.CheckOut} {
		if _, err := timezone.Parse(constant.DateOnlyFormat, date); err != nil {
			return failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") //nolint:wrapcheck
		}
	}

	return nil
}

func (req *SearchRequest) ToParams() serpapi.SearchParams {
	return serpapi.SearchParams{
		Query:         req.Query,
		CheckInDate:   req.CheckIn,
		CheckOutDate:  req.CheckOut,
		Adults:        req.Adults,
		PropertyToken: req.PropertyToken,
	}
}

type ListingResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Type          string   `json:"type,omitempty"`
	Source        string   `json:"source,omitempty"`
	Amenities     []string `json:"amenities"`
	PropertyToken string   `json:"property_token"`
}

type SearchResponse struct {
	Ads        []ListingResponse `json:"ads"`
	Properties []ListingResponse `json:"properties"`
}

func (res *SearchResponse) FromResult(result *serpapi.SearchResult) {
	res.Ads = make([]ListingResponse, 0, len(result.Ads))
	for _, ad := range result.Ads {
		res.Ads = append(res.Ads, ListingResponse{
			ID:            ad.PropertyToken,
			Name:          ad.Name,
			Price:         ad.ExtractedPrice,
			Image:         ad.Thumbnail,
			Rating:        ad.OverallRating,
			Reviews:       ad.Reviews,
			Source:        ad.Source,
			Amenities:     emptyIfNil(ad.Amenities),
			PropertyToken: ad.PropertyToken,
		})
	}

	res.Properties = make([]ListingResponse, 0, len(result.Properties))
	for _, property := range result.Properties {
		listing := ListingResponse{
			ID:            property.PropertyToken,
			Name:          property.Name,
			Price:         property.RatePerNight.ExtractedLowest,
			Rating:        property.OverallRating,
			Reviews:       property.Reviews,
			Type:          property.Type,
			Amenities:     emptyIfNil(property.Amenities),
			PropertyToken: property.PropertyToken,
		}

		if len(property.Images) > 0 {
			listing.Image = property.Images[0].Thumbnail
		}

		res.Properties = append(res.Properties, listing)
	}
}

type ImageResponse struct {
	Thumbnail string `json:"thumbnail"`
	Original  string `json:"original"`
}

type FeaturedRoomResponse struct {
	Name         string   `json:"name"`
	Link         string   `json:"link"`
	Images       []string `json:"images"`
	RatePerNight float64  `json:"rate_per_night"`
}

type FeaturedPriceResponse struct {
	Source       string                 `json:"source"`
	Link         string                 `json:"link"`
	Logo         string                 `json:"logo"`
	Remarks      []string               `json:"remarks"`
	RatePerNight float64                `json:"rate_per_night"`
	Rooms        []FeaturedRoomResponse `json:"rooms"`
}

type DetailResponse struct {
	PropertyToken  string                  `json:"property_token"`
	Name           string                  `json:"name"`
	Type           string                  `json:"type"`
	Description    string                  `json:"description"`
	Link           string                  `json:"link"`
	Address        string                  `json:"address"`
	Phone          string                  `json:"phone"`
	CheckInTime    string                  `json:"check_in_time"`
	CheckOutTime   string                  `json:"check_out_time"`
	RatePerNight   float64                 `json:"rate_per_night"`
	Images         []ImageResponse         `json:"images"`
	FeaturedPrices []FeaturedPriceResponse `json:"featured_prices"`
}

func (res *DetailResponse) FromDetail(detail *serpapi.PropertyDetail) {
	res.PropertyToken = detail.PropertyToken
	res.Name = detail.Name
	res.Type = detail.Type
	res.Description = detail.Description
	res.Link = detail.Link
	res.Address = detail.Address
	res.Phone = detail.Phone
	res.CheckInTime = detail.CheckInTime
	res.CheckOutTime = detail.CheckOutTime
	res.RatePerNight = detail.RatePerNight.ExtractedLowest

	res.Images = make([]ImageResponse, 0, len(detail.Images))
	for _, image := range detail.Images {
		res.Images = append(res.Images, ImageResponse{
			Thumbnail: image.Thumbnail,
			Original:  image.Original,
		})
	}

	res.FeaturedPrices = make([]FeaturedPriceResponse, 0, len(detail.FeaturedPrices))
	for _, price := range detail.FeaturedPrices {
		rooms := make([]FeaturedRoomResponse, 0, len(price.Rooms))
		for _, room := range price.Rooms {
			rooms = append(rooms, FeaturedRoomResponse{
				Name:         room.Name,
				Link:         room.Link,
				Images:       emptyIfNil(room.Images),
				RatePerNight: room.RatePerNight.ExtractedLowest,
			})
		}

		res.FeaturedPrices = append(res.FeaturedPrices, FeaturedPriceResponse{
			Source:       price.Source,
			Link:         price.Link,
			Logo:         price.Logo,
			Remarks:      emptyIfNil(price.Remarks),
			RatePerNight: price.RatePerNight.ExtractedLowest,
			Rooms:        rooms,
		})
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
