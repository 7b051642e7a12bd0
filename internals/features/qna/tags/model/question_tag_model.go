package model

// QuestionTagModel is the questions<->tags join row; the composite primary key
// makes the (question, tag) pair unique.
type QuestionTagModel struct {
	QuestionTagQuestionID string `gorm:"column:question_tag_question_id;primaryKey;type:uuid" json:"question_tag_question_id"`
	QuestionTagTagID      string `gorm:"column:question_tag_tag_id;primaryKey;type:uuid" json:"question_tag_tag_id"`

	Tag *TagModel `gorm:"foreignKey:QuestionTagTagID;references:TagID" json:"tag,omitempty"`
}

func (QuestionTagModel) TableName() string {
	return "question_tags"
}
