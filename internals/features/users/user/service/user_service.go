package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagService "askonline_backend/internals/features/qna/tags/service"
	UserModel "askonline_backend/internals/features/users/user/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

func GetAllUsers(db *gorm.DB) ([]UserModel.UserModel, error) {
	var users []UserModel.UserModel
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func GetUserByID(db *gorm.DB, userID string) (*UserModel.UserModel, error) {
	var user UserModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account and everything hanging off it, in one
// transaction, in dependency order:
//  1. the user's own ratings (votes they cast anywhere)
//  2. ratings on answers under the user's questions, then those answers
//  3. ratings on the user's own answers, then those answers
//  4. tag links on the user's questions, then the questions
//  5. the user row
//
// A non-admin may delete only themselves and never an admin account.
// Tag garbage collection runs after the transaction commits.
func DeleteUser(db *gorm.DB, targetID string, caller helpersAuth.UserContext) error {
	if !caller.IsAuthenticated() {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	var target UserModel.UserModel
	if err := db.First(&target, "user_id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	if !caller.IsAdmin() {
		if !caller.IsOwner(target.UserID) {
			return fiber.NewError(fiber.StatusForbidden, "You may only delete your own account")
		}
		if target.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "Admin accounts cannot be deleted this way")
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		stmts := []string{
			`DELETE FROM answer_ratings WHERE answer_rating_user_id = ?`,
			`DELETE FROM answer_ratings
			 WHERE answer_rating_answer_id IN (
				SELECT answer_id FROM answers
				WHERE answer_question_id IN (SELECT question_id FROM questions WHERE question_user_id = ?)
			 )`,
			`DELETE FROM answers
			 WHERE answer_question_id IN (SELECT question_id FROM questions WHERE question_user_id = ?)`,
			`DELETE FROM answer_ratings
			 WHERE answer_rating_answer_id IN (SELECT answer_id FROM answers WHERE answer_user_id = ?)`,
			`DELETE FROM answers WHERE answer_user_id = ?`,
			`DELETE FROM question_tags
			 WHERE question_tag_question_id IN (SELECT question_id FROM questions WHERE question_user_id = ?)`,
			`DELETE FROM questions WHERE question_user_id = ?`,
		}
		for _, s := range stmts {
			if err := tx.Exec(s, target.UserID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		return err
	}

	return tagService.CleanupUnusedTags(db)
}
