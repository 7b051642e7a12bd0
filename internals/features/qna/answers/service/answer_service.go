package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	RatingModel "askonline_backend/internals/features/qna/ratings/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

// CreateAnswer stores a new answer on an existing question. The caller must
// be authenticated; a missing question is a 404.
func CreateAnswer(db *gorm.DB, questionID, body string, caller helpersAuth.UserContext) (*AnswerModel.AnswerModel, error) {
	if !caller.IsAuthenticated() {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var exists bool
	if err := db.Model(&QuestionModel.QuestionModel{}).
		Select("COUNT(*) > 0").
		Where("question_id = ?", questionID).
		Find(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	answer := AnswerModel.AnswerModel{
		AnswerBody:       body,
		AnswerQuestionID: questionID,
		AnswerUserID:     caller.UserID.String(),
	}
	if err := db.Create(&answer).Error; err != nil {
		return nil, err
	}

	// reload with owner so the response can be assembled with zero-valued
	// vote aggregates
	if err := db.Preload("User").First(&answer, "answer_id = ?", answer.AnswerID).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetAnswersForQuestion returns a question's answers in insertion order with
// owner and ratings preloaded.
func GetAnswersForQuestion(db *gorm.DB, questionID string) ([]AnswerModel.AnswerModel, error) {
	var answers []AnswerModel.AnswerModel
	if err := db.
		Preload("User").
		Preload("Ratings").
		Where("answer_question_id = ?", questionID).
		Order("answer_created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// GetAnswersByUser returns all answers authored by one user.
func GetAnswersByUser(db *gorm.DB, userID string) ([]AnswerModel.AnswerModel, error) {
	var answers []AnswerModel.AnswerModel
	if err := db.
		Preload("User").
		Preload("Ratings").
		Where("answer_user_id = ?", userID).
		Order("answer_created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// UpdateAnswer mutates the body; only the owner or an admin may do so.
func UpdateAnswer(db *gorm.DB, answerID, body string, caller helpersAuth.UserContext) (*AnswerModel.AnswerModel, error) {
	var answer AnswerModel.AnswerModel
	if err := db.First(&answer, "answer_id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Answer not found")
		}
		return nil, err
	}
	if !caller.CanModify(answer.AnswerUserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only the answer owner or an admin can update it")
	}

	if err := db.Model(&answer).Update("answer_body", body).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("User").Preload("Ratings").First(&answer, "answer_id = ?", answerID).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// DeleteAnswer removes an answer and, transactionally, its ratings.
func DeleteAnswer(db *gorm.DB, answerID string, caller helpersAuth.UserContext) error {
	var answer AnswerModel.AnswerModel
	if err := db.First(&answer, "answer_id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Answer not found")
		}
		return err
	}
	if !caller.CanModify(answer.AnswerUserID) {
		return fiber.NewError(fiber.StatusForbidden, "Only the answer owner or an admin can delete it")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_rating_answer_id = ?", answerID).
			Delete(&RatingModel.AnswerRatingModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&answer).Error
	})
}
