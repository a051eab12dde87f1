// Package serpapi wraps the SerpAPI google_hotels engine used by the hotel
// inventory search proxy.
package serpapi

//go:generate go run go.uber.org/mock/mockgen -source=./serpapi.go -destination=./mocks/serpapi_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/shared/constant"

	"github.com/rs/zerolog/log"
)

const requestTimeout = 10 * time.Second

type RatePlan struct {
	Lowest          string  `json:"lowest"`
	ExtractedLowest float64 `json:"extracted_lowest"`
}

type Image struct {
	Thumbnail string `json:"thumbnail"`
	Original  string `json:"original_image"`
}

type Property struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Link          string   `json:"link"`
	PropertyToken string   `json:"property_token"`
	RatePerNight  RatePlan `json:"rate_per_night"`
	TotalRate     RatePlan `json:"total_rate"`
	OverallRating float64  `json:"overall_rating"`
	Reviews       int      `json:"reviews"`
	Images        []Image  `json:"images"`
	Amenities     []string `json:"amenities"`
}

type Ad struct {
	Name           string   `json:"name"`
	Source         string   `json:"source"`
	Link           string   `json:"link"`
	PropertyToken  string   `json:"property_token"`
	Price          string   `json:"price"`
	ExtractedPrice float64  `json:"extracted_price"`
	Thumbnail      string   `json:"thumbnail"`
	OverallRating  float64  `json:"overall_rating"`
	Reviews        int      `json:"reviews"`
	Amenities      []string `json:"amenities"`
}

type SearchResult struct {
	Ads        []Ad       `json:"ads"`
	Properties []Property `json:"properties"`
	Error      string     `json:"error"`
}

type FeaturedRoom struct {
	Name         string   `json:"name"`
	Link         string   `json:"link"`
	Images       []string `json:"images"`
	RatePerNight RatePlan `json:"rate_per_night"`
}

type FeaturedPrice struct {
	Source       string         `json:"source"`
	Link         string         `json:"link"`
	Logo         string         `json:"logo"`
	Remarks      []string       `json:"remarks"`
	RatePerNight RatePlan       `json:"rate_per_night"`
	Rooms        []FeaturedRoom `json:"rooms"`
}

type PropertyDetail struct {
	PropertyToken  string          `json:"property_token"`
	Type           string          `json:"type"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Link           string          `json:"link"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	CheckInTime    string          `json:"check_in_time"`
	CheckOutTime   string          `json:"check_out_time"`
	RatePerNight   RatePlan        `json:"rate_per_night"`
	Images         []Image         `json:"images"`
	FeaturedPrices []FeaturedPrice `json:"featured_prices"`
	Error          string          `json:"error"`
}

type SearchParams struct {
	Query         string
	CheckInDate   string
	CheckOutDate  string
	Adults        int
	PropertyToken string
}

type Client interface {
	SearchHotels(ctx context.Context, params SearchParams) (*SearchResult, error)
	GetPropertyDetails(ctx context.Context, params SearchParams) (*PropertyDetail, error)
}

type clientImpl struct {
	config *config.Config
	http   *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		config: cfg,
		http:   &http.Client{Timeout: requestTimeout},
		otel:   ot,
	}
}

func (c *clientImpl) SearchHotels(ctx context.Context, params SearchParams) (result *SearchResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSerpAPIScopeName, constant.OtelSerpAPIScopeName+".SearchHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	var payload SearchResult
	if err = c.search(ctx, params, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("hotel search rejected: %s", payload.Error)
	}

	return &payload, nil
}

func (c *clientImpl) GetPropertyDetails(ctx context.Context, params SearchParams) (detail *PropertyDetail, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSerpAPIScopeName, constant.OtelSerpAPIScopeName+".GetPropertyDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	var payload PropertyDetail
	if err = c.search(ctx, params, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("property lookup rejected: %s", payload.Error)
	}

	if payload.PropertyToken == "" {
		payload.PropertyToken = params.PropertyToken
	}

	return &payload, nil
}

func (c *clientImpl) search(ctx context.Context, searchParams SearchParams, dest any) error {
	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", searchParams.Query)
	params.Set("check_in_date", searchParams.CheckInDate)
	params.Set("check_out_date", searchParams.CheckOutDate)
	params.Set("adults", strconv.Itoa(searchParams.Adults))
	params.Set("currency", constant.Currency)
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("api_key", c.config.External.SerpAPI.APIKey)

	if searchParams.PropertyToken != "" {
		params.Set("property_token", searchParams.PropertyToken)
	}

	endpoint := c.config.External.SerpAPI.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("query", searchParams.Query).Msg("hotel search request failed")

		return fmt.Errorf("hotel search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hotel search returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode hotel search response: %w", err)
	}

	return nil
}
