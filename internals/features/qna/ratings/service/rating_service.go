package service

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	"askonline_backend/internals/features/qna/ratings/dto"
	RatingModel "askonline_backend/internals/features/qna/ratings/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

func answerExists(db *gorm.DB, answerID string) (bool, error) {
	var exists bool
	err := db.Model(&AnswerModel.AnswerModel{}).
		Select("COUNT(*) > 0").
		Where("answer_id = ?", answerID).
		Find(&exists).Error
	return exists, err
}

// SubmitVote moves the (caller, answer) pair to upvoted/downvoted. It is a
// true upsert keyed on the (answer_id, user_id) unique index, so two live
// rows for the same pair can never exist; resubmitting the same value only
// refreshes the timestamp.
func SubmitVote(db *gorm.DB, answerID string, isUpvote bool, caller helpersAuth.UserContext) (*RatingModel.AnswerRatingModel, error) {
	if !caller.IsAuthenticated() {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	exists, err := answerExists(db, answerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "Answer not found")
	}

	var row RatingModel.AnswerRatingModel
	raw := `
		INSERT INTO answer_ratings (
			answer_rating_id,
			answer_rating_answer_id,
			answer_rating_user_id,
			answer_rating_is_upvote,
			answer_rating_created_at,
			answer_rating_updated_at
		)
		VALUES (gen_random_uuid(), @answer_id, @user_id, @is_upvote, NOW(), NOW())
		ON CONFLICT (answer_rating_answer_id, answer_rating_user_id)
		DO UPDATE SET
			answer_rating_is_upvote  = @is_upvote,
			answer_rating_updated_at = NOW()
		RETURNING
			answer_rating_id,
			answer_rating_answer_id,
			answer_rating_user_id,
			answer_rating_is_upvote,
			answer_rating_created_at,
			answer_rating_updated_at
	`
	if err := db.Raw(raw,
		sql.Named("answer_id", answerID),
		sql.Named("user_id", caller.UserID.String()),
		sql.Named("is_upvote", isUpvote),
	).Scan(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveVote deletes the caller's vote on an answer; no live vote is a 404.
func RemoveVote(db *gorm.DB, answerID string, caller helpersAuth.UserContext) error {
	if !caller.IsAuthenticated() {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	res := db.Where("answer_rating_answer_id = ? AND answer_rating_user_id = ?",
		answerID, caller.UserID.String()).
		Delete(&RatingModel.AnswerRatingModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Rating not found")
	}
	return nil
}

// GetAnswerScore derives the aggregate from the rating rows. An unknown
// answer is a 404, never fabricated zero counts.
func GetAnswerScore(db *gorm.DB, answerID string, caller helpersAuth.UserContext) (*dto.AnswerScoreDTO, error) {
	exists, err := answerExists(db, answerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "Answer not found")
	}

	var ratings []RatingModel.AnswerRatingModel
	if err := db.Where("answer_rating_answer_id = ?", answerID).Find(&ratings).Error; err != nil {
		return nil, err
	}

	upvotes, downvotes := 0, 0
	var currentVote *bool
	for i := range ratings {
		if ratings[i].AnswerRatingIsUpvote {
			upvotes++
		} else {
			downvotes++
		}
		if caller.IsAuthenticated() && ratings[i].AnswerRatingUserID == caller.UserID.String() {
			v := ratings[i].AnswerRatingIsUpvote
			currentVote = &v
		}
	}

	return &dto.AnswerScoreDTO{
		AnswerID:        answerID,
		UpvoteCount:     upvotes,
		DownvoteCount:   downvotes,
		TotalScore:      upvotes - downvotes,
		CurrentUserVote: currentVote,
	}, nil
}
