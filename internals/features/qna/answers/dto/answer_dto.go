package dto

import (
	"strings"
	"time"

	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	UserDTO "askonline_backend/internals/features/users/user/dto"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	Body       string `json:"body" validate:"required,min=1"`
}

func (r *CreateAnswerRequest) Normalize() {
	r.Body = strings.TrimSpace(r.Body)
}

type UpdateAnswerRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}

func (r *UpdateAnswerRequest) Normalize() {
	r.Body = strings.TrimSpace(r.Body)
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

// AnswerDTO carries the derived vote aggregates; the score is never stored,
// it is recomputed from the ratings rows on every read.
type AnswerDTO struct {
	AnswerID        string          `json:"answer_id"`
	Body            string          `json:"body"`
	QuestionID      string          `json:"question_id"`
	CreatedAt       time.Time       `json:"created_at"`
	User            UserDTO.UserDTO `json:"user"`
	UpvoteCount     int             `json:"upvote_count"`
	DownvoteCount   int             `json:"downvote_count"`
	TotalScore      int             `json:"total_score"`
	CurrentUserVote *bool           `json:"current_user_vote"`
}

// ToAnswerDTO assembles an answer with owner (privacy-shaped for the viewer),
// vote counts derived from the preloaded ratings, and the viewer's own vote
// state (nil when anonymous or never voted).
func ToAnswerDTO(a *AnswerModel.AnswerModel, viewer helpersAuth.UserContext) AnswerDTO {
	if a == nil {
		return AnswerDTO{}
	}

	upvotes, downvotes := 0, 0
	var currentVote *bool
	for i := range a.Ratings {
		r := &a.Ratings[i]
		if r.AnswerRatingIsUpvote {
			upvotes++
		} else {
			downvotes++
		}
		if viewer.IsAuthenticated() && r.AnswerRatingUserID == viewer.UserID.String() {
			v := r.AnswerRatingIsUpvote
			currentVote = &v
		}
	}

	return AnswerDTO{
		AnswerID:        a.AnswerID,
		Body:            a.AnswerBody,
		QuestionID:      a.AnswerQuestionID,
		CreatedAt:       a.AnswerCreatedAt,
		User:            UserDTO.ToUserDTO(a.User, viewer),
		UpvoteCount:     upvotes,
		DownvoteCount:   downvotes,
		TotalScore:      upvotes - downvotes,
		CurrentUserVote: currentVote,
	}
}

func ToAnswerDTOs(answers []AnswerModel.AnswerModel, viewer helpersAuth.UserContext) []AnswerDTO {
	out := make([]AnswerDTO, 0, len(answers))
	for i := range answers {
		out = append(out, ToAnswerDTO(&answers[i], viewer))
	}
	return out
}
