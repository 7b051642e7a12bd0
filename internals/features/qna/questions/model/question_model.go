package model

import (
	"time"

	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	TagModel "askonline_backend/internals/features/qna/tags/model"
	UserModel "askonline_backend/internals/features/users/user/model"
)

type QuestionModel struct {
	QuestionID        string    `gorm:"column:question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"question_id"`
	QuestionTitle     string    `gorm:"column:question_title;size:255;not null" json:"question_title"`
	QuestionBody      string    `gorm:"column:question_body;type:text;not null" json:"question_body"`
	QuestionUserID    string    `gorm:"column:question_user_id;type:uuid;not null;index" json:"question_user_id"`
	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`

	User         *UserModel.UserModel        `gorm:"foreignKey:QuestionUserID;references:UserID" json:"user,omitempty"`
	Answers      []AnswerModel.AnswerModel   `gorm:"foreignKey:AnswerQuestionID;references:QuestionID" json:"answers,omitempty"`
	QuestionTags []TagModel.QuestionTagModel `gorm:"foreignKey:QuestionTagQuestionID;references:QuestionID" json:"question_tags,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
