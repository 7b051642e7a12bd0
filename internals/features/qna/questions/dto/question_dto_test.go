package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askonline_backend/internals/constants"
	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	QuestionModel "askonline_backend/internals/features/qna/questions/model"
	TagModel "askonline_backend/internals/features/qna/tags/model"
	UserModel "askonline_backend/internals/features/users/user/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

func sampleQuestion() *QuestionModel.QuestionModel {
	owner := &UserModel.UserModel{
		UserID:   uuid.NewString(),
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     constants.RoleAdmin,
	}
	goTag := &TagModel.TagModel{TagID: uuid.NewString(), TagName: "go"}

	q := &QuestionModel.QuestionModel{
		QuestionID:     uuid.NewString(),
		QuestionTitle:  "How do I read a file?",
		QuestionBody:   "os.ReadFile keeps returning an error.",
		QuestionUserID: owner.UserID,
		User:           owner,
		Answers: []AnswerModel.AnswerModel{
			{
				AnswerID:     uuid.NewString(),
				AnswerBody:   "check the path",
				AnswerUserID: uuid.NewString(),
			},
		},
		QuestionTags: []TagModel.QuestionTagModel{
			{QuestionTagTagID: goTag.TagID, Tag: goTag},
			{QuestionTagTagID: uuid.NewString(), Tag: nil}, // dangling link
		},
	}
	q.Answers[0].AnswerQuestionID = q.QuestionID
	return q
}

func TestDanglingTagLinksAreSkipped(t *testing.T) {
	dto := ToQuestionDTO(sampleQuestion(), helpersAuth.Anonymous())
	require.Len(t, dto.Tags, 1)
	assert.Equal(t, "go", dto.Tags[0].Name)
}

func TestFullGraphIsMapped(t *testing.T) {
	q := sampleQuestion()
	dto := ToQuestionDTO(q, helpersAuth.Anonymous())

	assert.Equal(t, q.QuestionID, dto.QuestionID)
	assert.Equal(t, q.QuestionTitle, dto.Title)
	assert.Equal(t, q.QuestionBody, dto.Body)
	require.Len(t, dto.Answers, 1)
	assert.Equal(t, q.QuestionID, dto.Answers[0].QuestionID)
}

func TestAuthorShapingFollowsViewer(t *testing.T) {
	q := sampleQuestion()

	public := ToQuestionDTO(q, helpersAuth.Anonymous())
	assert.Nil(t, public.User.Email)
	assert.Equal(t, constants.RoleUser, public.User.Role, "true role is hidden from strangers")

	ownerID := uuid.MustParse(q.QuestionUserID)
	self := ToQuestionDTO(q, helpersAuth.UserContext{UserID: &ownerID, Role: constants.RoleAdmin})
	require.NotNil(t, self.User.Email)
	assert.Equal(t, "alice@example.com", *self.User.Email)
	assert.Equal(t, constants.RoleAdmin, self.User.Role)
}

func TestNilQuestionMapsToZeroValue(t *testing.T) {
	assert.Empty(t, ToQuestionDTO(nil, helpersAuth.Anonymous()).QuestionID)
}

func TestMissingUserRowIsRedacted(t *testing.T) {
	q := sampleQuestion()
	q.User = nil
	dto := ToQuestionDTO(q, helpersAuth.Anonymous())
	assert.Empty(t, dto.User.UserID)
	assert.Nil(t, dto.User.Email)
}
