package dto

import (
	"strings"
	"time"

	AnswerDTO "askonline_backend/internals/features/qna/answers/dto"
	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	TagDTO "askonline_backend/internals/features/qna/tags/dto"
	UserDTO "askonline_backend/internals/features/users/user/dto"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateQuestionRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=255"`
	Body     string   `json:"body" validate:"required,min=1"`
	TagNames []string `json:"tag_names" validate:"omitempty,dive,max=100"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
}

// Only title/body are mutable; tags go through the tag endpoints.
type UpdateQuestionRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	Body  string `json:"body" validate:"required,min=1"`
}

func (r *UpdateQuestionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type QuestionDTO struct {
	QuestionID string                `json:"question_id"`
	Title      string                `json:"title"`
	Body       string                `json:"body"`
	CreatedAt  time.Time             `json:"created_at"`
	User       UserDTO.UserDTO       `json:"user"`
	Answers    []AnswerDTO.AnswerDTO `json:"answers"`
	Tags       []TagDTO.TagDTO       `json:"tags"`
}

// ToQuestionDTO assembles the full question graph for one viewer. Nested nil
// rows (dangling links, half-loaded relations) are skipped.
func ToQuestionDTO(q *QuestionModel.QuestionModel, viewer helpersAuth.UserContext) QuestionDTO {
	if q == nil {
		return QuestionDTO{}
	}

	tags := make([]TagDTO.TagDTO, 0, len(q.QuestionTags))
	for i := range q.QuestionTags {
		if q.QuestionTags[i].Tag == nil {
			continue
		}
		tags = append(tags, TagDTO.ToTagDTO(*q.QuestionTags[i].Tag))
	}

	return QuestionDTO{
		QuestionID: q.QuestionID,
		Title:      q.QuestionTitle,
		Body:       q.QuestionBody,
		CreatedAt:  q.QuestionCreatedAt,
		User:       UserDTO.ToUserDTO(q.User, viewer),
		Answers:    AnswerDTO.ToAnswerDTOs(q.Answers, viewer),
		Tags:       tags,
	}
}

func ToQuestionDTOs(questions []QuestionModel.QuestionModel, viewer helpersAuth.UserContext) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(questions))
	for i := range questions {
		out = append(out, ToQuestionDTO(&questions[i], viewer))
	}
	return out
}
