package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"atithi/internal/domains/booking/model/dto"
	"atithi/shared/failure"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
		wantCode int
	}{
		{
			name:     "valid range",
			checkIn:  "2025-01-01",
			checkOut: "2025-01-05",
		},
		{
			name:     "single night",
			checkIn:  "2025-01-01",
			checkOut: "2025-01-02",
		},
		{
			name:     "malformed check-in",
			checkIn:  "01-01-2025",
			checkOut: "2025-01-05",
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed check-out",
			checkIn:  "2025-01-01",
			checkOut: "not-a-date",
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "check-out equals check-in",
			checkIn:  "2025-01-01",
			checkOut: "2025-01-01",
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "check-out before check-in",
			checkIn:  "2025-01-05",
			checkOut: "2025-01-01",
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := dto.ParseDateRange(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, out.After(in))
		})
	}
}
