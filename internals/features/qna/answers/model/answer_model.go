package model

import (
	"time"

	RatingModel "askonline_backend/internals/features/qna/ratings/model"
	UserModel "askonline_backend/internals/features/users/user/model"
)

type AnswerModel struct {
	AnswerID         string    `gorm:"column:answer_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"answer_id"`
	AnswerBody       string    `gorm:"column:answer_body;type:text;not null" json:"answer_body"`
	AnswerQuestionID string    `gorm:"column:answer_question_id;type:uuid;not null;index" json:"answer_question_id"`
	AnswerUserID     string    `gorm:"column:answer_user_id;type:uuid;not null" json:"answer_user_id"`
	AnswerCreatedAt  time.Time `gorm:"column:answer_created_at;autoCreateTime" json:"answer_created_at"`

	User    *UserModel.UserModel            `gorm:"foreignKey:AnswerUserID;references:UserID" json:"user,omitempty"`
	Ratings []RatingModel.AnswerRatingModel `gorm:"foreignKey:AnswerRatingAnswerID;references:AnswerID" json:"ratings,omitempty"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
