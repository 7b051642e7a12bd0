package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"askonline_backend/internals/configs"
	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	RatingModel "askonline_backend/internals/features/qna/ratings/model"
	TagModel "askonline_backend/internals/features/qna/tags/model"
	UserModel "askonline_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=askonline&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the six tables plus the uniqueness constraints the domain
// relies on as its source of truth: case-insensitive email, case-insensitive
// tag name, and one live rating per (answer, user).
func Migrate() {
	if err := DB.AutoMigrate(
		&UserModel.UserModel{},
		&QuestionModel.QuestionModel{},
		&AnswerModel.AnswerModel{},
		&TagModel.TagModel{},
		&TagModel.QuestionTagModel{},
		&RatingModel.AnswerRatingModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email_lower ON users (LOWER(email))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tags_name_lower ON tags (LOWER(tag_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_answer_ratings_answer_user
		   ON answer_ratings (answer_rating_answer_id, answer_rating_user_id)`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Fatalf("[ERROR] index migration failed: %v", err)
		}
	}
	log.Println("[INFO] migration OK.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
