package chat

import (
	"context"
	"strconv"
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// Answer is the retrieval collaborator's reply to a query.
type Answer struct {
	Text               string
	Status             domain.AnswerStatus
	Citations          []domain.Citation
	TraceID            string
	DocumentsRetrieved int
}

// Responder is the boundary to the retrieval/generation collaborator. A
// production implementation would call the RAG backend; the canned responder
// below stands in for it.
type Responder interface {
	Respond(ctx context.Context, query string) (Answer, error)
}

const cannedAnswerPrefix = "Dựa trên tài liệu trong cơ sở tri thức, đây là câu trả lời cho câu hỏi của bạn:\n\n"

const (
	cannedAnswerLong  = "Tôi đã tìm thấy một số thông tin liên quan đến yêu cầu của bạn. Vui lòng xem các trích dẫn bên dưới để biết thêm chi tiết."
	cannedAnswerShort = "Vui lòng cung cấp thêm thông tin để tôi có thể hỗ trợ bạn tốt hơn."
)

// CannedResponder produces the fixed answer text with a canned citation
// list. Queries longer than twenty characters get the fuller variant.
type CannedResponder struct {
	citations []domain.Citation
}

// NewCannedResponder builds the responder with the citations it should
// attach to every successful answer.
func NewCannedResponder(citations []domain.Citation) *CannedResponder {
	return &CannedResponder{citations: citations}
}

// Respond returns the canned answer for the query.
func (r *CannedResponder) Respond(_ context.Context, query string) (Answer, error) {
	body := cannedAnswerShort
	if len([]rune(query)) > 20 {
		body = cannedAnswerLong
	}

	citations := make([]domain.Citation, len(r.citations))
	copy(citations, r.citations)

	return Answer{
		Text:               cannedAnswerPrefix + body,
		Status:             domain.AnswerStatusSuccess,
		Citations:          citations,
		TraceID:            "trace-" + strconv.FormatInt(time.Now().UnixMilli(), 36),
		DocumentsRetrieved: len(citations),
	}, nil
}
