package model

import (
	"time"

	UserModel "askonline_backend/internals/features/users/user/model"
)

// AnswerRatingModel holds one live vote per (answer, user); the unique index on
// that pair is the upsert target (see databases.Migrate).
type AnswerRatingModel struct {
	AnswerRatingID        string    `gorm:"column:answer_rating_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"answer_rating_id"`
	AnswerRatingAnswerID  string    `gorm:"column:answer_rating_answer_id;type:uuid;not null;index" json:"answer_rating_answer_id"`
	AnswerRatingUserID    string    `gorm:"column:answer_rating_user_id;type:uuid;not null" json:"answer_rating_user_id"`
	AnswerRatingIsUpvote  bool      `gorm:"column:answer_rating_is_upvote;not null" json:"answer_rating_is_upvote"`
	AnswerRatingCreatedAt time.Time `gorm:"column:answer_rating_created_at;autoCreateTime" json:"answer_rating_created_at"`
	AnswerRatingUpdatedAt time.Time `gorm:"column:answer_rating_updated_at;autoUpdateTime" json:"answer_rating_updated_at"`

	User *UserModel.UserModel `gorm:"foreignKey:AnswerRatingUserID;references:UserID" json:"user,omitempty"`
}

func (AnswerRatingModel) TableName() string {
	return "answer_ratings"
}
