package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	TagModel "askonline_backend/internals/features/qna/tags/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

// ErrTagAlreadyAssociated is the non-fatal "pair already exists" outcome of
// AddTagToQuestion; callers report it, they don't fail on it.
var ErrTagAlreadyAssociated = errors.New("tag already associated with question")

// NormalizeTagName is the single canonical normalization: store the trimmed
// original case, compare lower-cased.
func NormalizeTagName(name string) string {
	return strings.TrimSpace(name)
}

// DedupeTagNames trims and drops case-insensitive duplicates and empties,
// keeping first-seen order.
func DedupeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeTagName(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

// isUniqueViolation detects a Postgres unique violation without importing the
// driver error types (string match, same as elsewhere in the codebase).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

/* =======================================================
   Reads
   ======================================================= */

func GetAllTags(db *gorm.DB) ([]TagModel.TagModel, error) {
	var tags []TagModel.TagModel
	if err := db.Order("tag_name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func GetTagByID(db *gorm.DB, tagID string) (*TagModel.TagModel, error) {
	var tag TagModel.TagModel
	if err := db.First(&tag, "tag_id = ?", tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tag not found")
		}
		return nil, err
	}
	return &tag, nil
}

/* =======================================================
   Create / get-or-create
   ======================================================= */

// CreateTag creates a standalone tag; a case-insensitive duplicate is a 409.
func CreateTag(db *gorm.DB, name string) (*TagModel.TagModel, error) {
	name = NormalizeTagName(name)
	if name == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tag name is required")
	}

	var existing TagModel.TagModel
	err := db.Where("LOWER(tag_name) = LOWER(?)", name).First(&existing).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Tag already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := TagModel.TagModel{TagName: name}
	if err := db.Create(&tag).Error; err != nil {
		// check-then-insert is never atomic; the unique index is the truth
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Tag already exists")
		}
		return nil, err
	}
	return &tag, nil
}

// getOrCreateTag reuses a case-insensitive match or inserts a new tag. On a
// unique-violation race it falls back to re-reading the winner's row.
func getOrCreateTag(tx *gorm.DB, name string) (*TagModel.TagModel, error) {
	var tag TagModel.TagModel
	err := tx.Where("LOWER(tag_name) = LOWER(?)", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = TagModel.TagModel{TagName: name}
	if err := tx.Create(&tag).Error; err != nil {
		if isUniqueViolation(err) {
			var winner TagModel.TagModel
			if err2 := tx.Where("LOWER(tag_name) = LOWER(?)", name).First(&winner).Error; err2 == nil {
				return &winner, nil
			}
		}
		return nil, err
	}
	return &tag, nil
}

// GetOrCreateTags resolves a list of raw tag names (trimmed, de-duplicated
// case-insensitively) into tag rows, creating the missing ones.
func GetOrCreateTags(tx *gorm.DB, names []string) ([]TagModel.TagModel, error) {
	out := make([]TagModel.TagModel, 0, len(names))
	for _, name := range DedupeTagNames(names) {
		tag, err := getOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, *tag)
	}
	return out, nil
}

/* =======================================================
   Question association
   ======================================================= */

// AddTagToQuestion associates a (reused or new) tag with a question.
// Returns ErrTagAlreadyAssociated when the pair already exists.
func AddTagToQuestion(db *gorm.DB, questionID, name string, caller helpersAuth.UserContext) (*TagModel.TagModel, error) {
	var question QuestionModel.QuestionModel
	if err := db.First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}
	if !caller.CanModify(question.QuestionUserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only the question owner or an admin can manage its tags")
	}

	var tag *TagModel.TagModel
	err := db.Transaction(func(tx *gorm.DB) error {
		t, err := getOrCreateTag(tx, NormalizeTagName(name))
		if err != nil {
			return err
		}
		tag = t

		link := TagModel.QuestionTagModel{
			QuestionTagQuestionID: question.QuestionID,
			QuestionTagTagID:      t.TagID,
		}
		if err := tx.Create(&link).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrTagAlreadyAssociated
			}
			return err
		}
		return nil
	})
	if err != nil {
		return tag, err
	}
	return tag, nil
}

// RemoveTagFromQuestion unlinks a tag from a question, then garbage-collects
// tags that lost their last reference. A missing link is reported as 404.
func RemoveTagFromQuestion(db *gorm.DB, questionID, tagID string, caller helpersAuth.UserContext) error {
	var question QuestionModel.QuestionModel
	if err := db.First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return err
	}
	if !caller.CanModify(question.QuestionUserID) {
		return fiber.NewError(fiber.StatusForbidden, "Only the question owner or an admin can manage its tags")
	}

	res := db.Where("question_tag_question_id = ? AND question_tag_tag_id = ?", questionID, tagID).
		Delete(&TagModel.QuestionTagModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tag is not associated with this question")
	}

	return CleanupUnusedTags(db)
}

/* =======================================================
   Admin delete & garbage collection
   ======================================================= */

// DeleteTag removes a tag and its question links. Admin only.
func DeleteTag(db *gorm.DB, tagID string, caller helpersAuth.UserContext) error {
	if !caller.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Only admins can delete tags")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var tag TagModel.TagModel
		if err := tx.First(&tag, "tag_id = ?", tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Tag not found")
			}
			return err
		}
		if err := tx.Where("question_tag_tag_id = ?", tagID).Delete(&TagModel.QuestionTagModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// CleanupUnusedTags deletes every tag with zero question links. It is the
// explicit post-step after any mutation that can drop a tag's last link
// (question delete, tag removal, user delete cascade).
func CleanupUnusedTags(db *gorm.DB) error {
	return db.Exec(`
		DELETE FROM tags
		WHERE NOT EXISTS (
			SELECT 1 FROM question_tags
			WHERE question_tags.question_tag_tag_id = tags.tag_id
		)`).Error
}
