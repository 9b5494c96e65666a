// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/valueobject"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// parseUUIDParam parses a UUID path parameter, writing a 400 response and
// returning false when it is malformed.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.UUID{}, false
	}
	return id, true
}

// parseMonthParam parses a "YYYY-MM" path parameter, writing a 400 response
// and returning false when it is malformed.
func parseMonthParam(ctx *gin.Context, name string) (valueobject.YearMonth, bool) {
	month, err := valueobject.ParseYearMonth(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format. Use YYYY-MM",
		})
		return valueobject.YearMonth{}, false
	}
	return month, true
}

// parseAmount parses a decimal request field, writing a 400 response and
// returning false when it is malformed.
func parseAmount(ctx *gin.Context, value string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return decimal.Decimal{}, false
	}
	return amount, true
}

// parseOptionalAmount parses an optional decimal request field.
func parseOptionalAmount(ctx *gin.Context, value *string) (*decimal.Decimal, bool) {
	if value == nil {
		return nil, true
	}
	amount, ok := parseAmount(ctx, *value)
	if !ok {
		return nil, false
	}
	return &amount, true
}

// parseDateField parses a "YYYY-MM-DD" request field, writing a 400 response
// and returning false when it is malformed.
func parseDateField(ctx *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}

// parseUUIDField parses a UUID request field, writing a 400 response and
// returning false when it is malformed.
func parseUUIDField(ctx *gin.Context, value, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.UUID{}, false
	}
	return id, true
}

// parseOptionalUUIDField parses an optional UUID request field.
func parseOptionalUUIDField(ctx *gin.Context, value *string, name string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, ok := parseUUIDField(ctx, *value, name)
	if !ok {
		return nil, false
	}
	return &id, true
}

// parseUUIDList parses a list of UUID strings, writing a 400 response and
// returning false when any entry is malformed.
func parseUUIDList(ctx *gin.Context, values []string, name string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, ok := parseUUIDField(ctx, v, name)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
