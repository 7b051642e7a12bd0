package dto

import (
	"time"

	RatingModel "askonline_backend/internals/features/qna/ratings/model"
)

/* =======================================================
   REQUEST DTO
   ======================================================= */

// IsUpvote is a pointer so "false" and "missing" are distinguishable.
type SubmitVoteRequest struct {
	AnswerID string `json:"answer_id" validate:"required,uuid4"`
	IsUpvote *bool  `json:"is_upvote" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type RatingDTO struct {
	RatingID  string    `json:"rating_id"`
	AnswerID  string    `json:"answer_id"`
	IsUpvote  bool      `json:"is_upvote"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToRatingDTO(m RatingModel.AnswerRatingModel) RatingDTO {
	return RatingDTO{
		RatingID:  m.AnswerRatingID,
		AnswerID:  m.AnswerRatingAnswerID,
		IsUpvote:  m.AnswerRatingIsUpvote,
		CreatedAt: m.AnswerRatingCreatedAt,
		UpdatedAt: m.AnswerRatingUpdatedAt,
	}
}

// AnswerScoreDTO is the derived aggregate for one answer. CurrentUserVote is
// nil for anonymous callers and for callers who never voted.
type AnswerScoreDTO struct {
	AnswerID        string `json:"answer_id"`
	UpvoteCount     int    `json:"upvote_count"`
	DownvoteCount   int    `json:"downvote_count"`
	TotalScore      int    `json:"total_score"`
	CurrentUserVote *bool  `json:"current_user_vote"`
}
