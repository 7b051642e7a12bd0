package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	TagModel "askonline_backend/internals/features/qna/tags/model"
	tagService "askonline_backend/internals/features/qna/tags/service"
	UserModel "askonline_backend/internals/features/users/user/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

// preloadGraph loads the full question graph: owner, answers with their
// owners and ratings, and resolved tags.
func preloadGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("answer_created_at ASC")
		}).
		Preload("Answers.User").
		Preload("Answers.Ratings").
		Preload("QuestionTags.Tag")
}

// CreateQuestion stores a question with its resolved tags. Tag names are
// trimmed and de-duplicated case-insensitively; each reuses an existing tag
// or creates one inside the same transaction.
func CreateQuestion(db *gorm.DB, title, body string, tagNames []string, caller helpersAuth.UserContext) (*QuestionModel.QuestionModel, error) {
	if !caller.IsAuthenticated() {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	// the token may outlive the account; verify the row still exists
	var userExists bool
	if err := db.Model(&UserModel.UserModel{}).
		Select("COUNT(*) > 0").
		Where("user_id = ?", caller.UserID.String()).
		Find(&userExists).Error; err != nil {
		return nil, err
	}
	if !userExists {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User no longer exists")
	}

	question := QuestionModel.QuestionModel{
		QuestionTitle:  title,
		QuestionBody:   body,
		QuestionUserID: caller.UserID.String(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		tags, err := tagService.GetOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			link := TagModel.QuestionTagModel{
				QuestionTagQuestionID: question.QuestionID,
				QuestionTagTagID:      tag.TagID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var full QuestionModel.QuestionModel
	if err := preloadGraph(db).First(&full, "question_id = ?", question.QuestionID).Error; err != nil {
		return nil, err
	}
	return &full, nil
}

// GetAllQuestions lists questions newest first, one page at a time.
func GetAllQuestions(db *gorm.DB, offset, limit int) ([]QuestionModel.QuestionModel, int64, error) {
	var total int64
	if err := db.Model(&QuestionModel.QuestionModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []QuestionModel.QuestionModel
	if err := preloadGraph(db).
		Order("question_created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error; err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func GetQuestionByID(db *gorm.DB, questionID string) (*QuestionModel.QuestionModel, error) {
	var question QuestionModel.QuestionModel
	if err := preloadGraph(db).First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}
	return &question, nil
}

func GetQuestionsByUser(db *gorm.DB, userID string) ([]QuestionModel.QuestionModel, error) {
	var questions []QuestionModel.QuestionModel
	if err := preloadGraph(db).
		Where("question_user_id = ?", userID).
		Order("question_created_at DESC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// UpdateQuestion mutates title/body only; tags are managed through the tag
// endpoints.
func UpdateQuestion(db *gorm.DB, questionID, title, body string, caller helpersAuth.UserContext) (*QuestionModel.QuestionModel, error) {
	var question QuestionModel.QuestionModel
	if err := db.First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}
	if !caller.CanModify(question.QuestionUserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only the question owner or an admin can update it")
	}

	if err := db.Model(&question).Updates(map[string]interface{}{
		"question_title": title,
		"question_body":  body,
	}).Error; err != nil {
		return nil, err
	}

	var full QuestionModel.QuestionModel
	if err := preloadGraph(db).First(&full, "question_id = ?", questionID).Error; err != nil {
		return nil, err
	}
	return &full, nil
}

// DeleteQuestion cascades in one transaction: ratings on the question's
// answers, the answers, the tag links, then the question. Tag garbage
// collection runs afterwards as its own explicit step.
func DeleteQuestion(db *gorm.DB, questionID string, caller helpersAuth.UserContext) error {
	var question QuestionModel.QuestionModel
	if err := db.First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return err
	}
	if !caller.CanModify(question.QuestionUserID) {
		return fiber.NewError(fiber.StatusForbidden, "Only the question owner or an admin can delete it")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM answer_ratings
			WHERE answer_rating_answer_id IN (
				SELECT answer_id FROM answers WHERE answer_question_id = ?
			)`, questionID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM answers WHERE answer_question_id = ?`, questionID).Error; err != nil {
			return err
		}
		if err := tx.Where("question_tag_question_id = ?", questionID).
			Delete(&TagModel.QuestionTagModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return err
	}

	return tagService.CleanupUnusedTags(db)
}
