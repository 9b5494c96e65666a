package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gkeele21/family-budget/internal/application/usecase/voice"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

// VoiceController handles voice transcript endpoints.
type VoiceController struct {
	previewUseCase *voice.PreviewTranscriptUseCase
	recordUseCase  *voice.RecordTranscriptUseCase
}

// NewVoiceController creates a new voice controller instance.
func NewVoiceController(
	previewUseCase *voice.PreviewTranscriptUseCase,
	recordUseCase *voice.RecordTranscriptUseCase,
) *VoiceController {
	return &VoiceController{
		previewUseCase: previewUseCase,
		recordUseCase:  recordUseCase,
	}
}

// Preview handles POST /budgets/:budgetId/voice/preview requests. It parses
// the transcript and resolves references without recording anything.
func (c *VoiceController) Preview(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.VoiceTranscriptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), voice.PreviewTranscriptInput{
		BudgetID:   budgetID,
		Transcript: req.Transcript,
		Today:      time.Now().UTC(),
	})
	if err != nil {
		c.handleVoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVoicePreviewResponse(output))
}

// Record handles POST /budgets/:budgetId/voice/record requests. It parses
// the transcript and records every transaction that resolved cleanly.
func (c *VoiceController) Record(ctx *gin.Context) {
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.VoiceTranscriptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), voice.RecordTranscriptInput{
		BudgetID:   budgetID,
		Transcript: req.Transcript,
		Today:      time.Now().UTC(),
	})
	if err != nil {
		c.handleVoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVoiceRecordResponse(output))
}

// handleVoiceError handles voice errors and returns appropriate HTTP
// responses.
func (c *VoiceController) handleVoiceError(ctx *gin.Context, err error) {
	var voiceErr *domainerror.VoiceError
	if errors.As(err, &voiceErr) {
		ctx.JSON(c.getStatusCodeForVoiceError(voiceErr.Code), dto.ErrorResponse{
			Error: voiceErr.Message,
			Code:  string(voiceErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// getStatusCodeForVoiceError maps voice error codes to HTTP status codes.
func (c *VoiceController) getStatusCodeForVoiceError(code domainerror.VoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeVoiceParserUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeTranscriptNotUnderstood:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeUnresolvedReference:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
