package dto

import (
	"strings"
	"time"

	TagModel "askonline_backend/internals/features/qna/tags/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CreateTagRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type AddTagToQuestionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *AddTagToQuestionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type TagDTO struct {
	TagID     string    `json:"tag_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTagDTO(m TagModel.TagModel) TagDTO {
	return TagDTO{
		TagID:     m.TagID,
		Name:      m.TagName,
		CreatedAt: m.TagCreatedAt,
	}
}

func ToTagDTOs(ms []TagModel.TagModel) []TagDTO {
	out := make([]TagDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTagDTO(m))
	}
	return out
}
