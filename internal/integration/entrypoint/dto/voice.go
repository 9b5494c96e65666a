package dto

import (
	"github.com/gkeele21/family-budget/internal/application/usecase/voice"
)

// VoiceTranscriptRequest represents the request body for voice transcript
// parsing and recording.
type VoiceTranscriptRequest struct {
	Transcript string `json:"transcript" binding:"required,min=1,max=2000"`
}

// VoicePreviewItemResponse represents one parsed transaction in a voice
// preview.
type VoicePreviewItemResponse struct {
	Amount       string   `json:"amount"`
	Type         string   `json:"type"`
	AccountID    *string  `json:"account_id,omitempty"`
	AccountName  string   `json:"account_name"`
	CategoryID   *string  `json:"category_id,omitempty"`
	CategoryName string   `json:"category_name"`
	PayeeName    string   `json:"payee_name"`
	Date         string   `json:"date"`
	Memo         string   `json:"memo"`
	Resolved     bool     `json:"resolved"`
	Issues       []string `json:"issues,omitempty"`
}

// VoicePreviewResponse represents the response for previewing a transcript.
type VoicePreviewResponse struct {
	Items      []VoicePreviewItemResponse `json:"items"`
	Confidence float64                    `json:"confidence"`
}

// VoiceRecordResponse represents the response for recording a transcript.
type VoiceRecordResponse struct {
	Recorded []TransactionResponse      `json:"recorded"`
	Skipped  []VoicePreviewItemResponse `json:"skipped,omitempty"`
}

// ToVoicePreviewItemResponse converts a PreviewItem to a
// VoicePreviewItemResponse DTO.
func ToVoicePreviewItemResponse(item voice.PreviewItem) VoicePreviewItemResponse {
	return VoicePreviewItemResponse{
		Amount:       item.Parsed.Amount.String(),
		Type:         item.Parsed.Type,
		AccountID:    uuidString(item.AccountID),
		AccountName:  item.Parsed.AccountName,
		CategoryID:   uuidString(item.CategoryID),
		CategoryName: item.Parsed.CategoryName,
		PayeeName:    item.Parsed.PayeeName,
		Date:         item.Date.Format("2006-01-02"),
		Memo:         item.Parsed.Memo,
		Resolved:     item.Resolved,
		Issues:       item.Issues,
	}
}

// ToVoicePreviewResponse converts a PreviewTranscriptOutput to a
// VoicePreviewResponse.
func ToVoicePreviewResponse(output *voice.PreviewTranscriptOutput) VoicePreviewResponse {
	items := make([]VoicePreviewItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = ToVoicePreviewItemResponse(item)
	}
	return VoicePreviewResponse{
		Items:      items,
		Confidence: output.Confidence,
	}
}

// ToVoiceRecordResponse converts a RecordTranscriptOutput to a
// VoiceRecordResponse.
func ToVoiceRecordResponse(output *voice.RecordTranscriptOutput) VoiceRecordResponse {
	response := VoiceRecordResponse{
		Recorded: make([]TransactionResponse, len(output.Recorded)),
	}
	for i, t := range output.Recorded {
		response.Recorded[i] = ToTransactionResponse(t)
	}
	for _, item := range output.Skipped {
		response.Skipped = append(response.Skipped, ToVoicePreviewItemResponse(item))
	}
	return response
}
