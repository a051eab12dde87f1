package shared

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"atithi/shared/cache"
	"atithi/shared/constant"
	"atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return 0, err //nolint:wrapcheck
	}

	return intValue, nil
}

func ConvertStringToFloat(value string) (float64, error) {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to float")

		return 0, err //nolint:wrapcheck
	}

	return floatValue, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// FormatID renders an entity id as a decimal string. Ids are 64-bit and can
// exceed 2^53, so they must never travel as JSON numbers.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID parses a decimal string into an entity id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid id") //nolint:wrapcheck
	}

	return id, nil
}

// TransformFields converts the non-zero fields of a struct into a map of
// updated columns, stamping updated_at.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := 0; index < val.NumField(); index++ {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	paramsJSON, _ := json.Marshal(params)

	where, args := filter.GetWhereClause()
	argsJSON, _ := json.Marshal(args)

	return BuildCacheKey(prefix, string(paramsJSON), where, string(argsJSON))
}

// InvalidateCaches clears every cache entry under the given prefix, logging
// instead of failing: a stale cache entry is tolerable, a failed write is not.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
