package model

import "time"

// TagModel stores the trimmed original-case name; uniqueness is enforced
// case-insensitively by the LOWER(tag_name) unique index (see databases.Migrate).
type TagModel struct {
	TagID        string    `gorm:"column:tag_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"tag_id"`
	TagName      string    `gorm:"column:tag_name;size:100;not null" json:"tag_name"`
	TagCreatedAt time.Time `gorm:"column:tag_created_at;autoCreateTime" json:"tag_created_at"`
}

func (TagModel) TableName() string {
	return "tags"
}
