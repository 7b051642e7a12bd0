package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askonline_backend/internals/constants"
	AnswerModel "askonline_backend/internals/features/qna/answers/model"
	RatingModel "askonline_backend/internals/features/qna/ratings/model"
	UserModel "askonline_backend/internals/features/users/user/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

func rating(userID string, up bool) RatingModel.AnswerRatingModel {
	return RatingModel.AnswerRatingModel{
		AnswerRatingID:       uuid.NewString(),
		AnswerRatingUserID:   userID,
		AnswerRatingIsUpvote: up,
	}
}

func answerWith(ratings ...RatingModel.AnswerRatingModel) *AnswerModel.AnswerModel {
	return &AnswerModel.AnswerModel{
		AnswerID:         uuid.NewString(),
		AnswerBody:       "try turning it off and on again",
		AnswerQuestionID: uuid.NewString(),
		AnswerUserID:     uuid.NewString(),
		User:             &UserModel.UserModel{UserID: uuid.NewString(), UserName: "carol"},
		Ratings:          ratings,
	}
}

func TestScoreIsDerivedFromRatings(t *testing.T) {
	a := answerWith(
		rating(uuid.NewString(), true),
		rating(uuid.NewString(), true),
		rating(uuid.NewString(), false),
	)

	dto := ToAnswerDTO(a, helpersAuth.Anonymous())
	assert.Equal(t, 2, dto.UpvoteCount)
	assert.Equal(t, 1, dto.DownvoteCount)
	assert.Equal(t, 1, dto.TotalScore)
	assert.Nil(t, dto.CurrentUserVote, "anonymous viewer has no vote state")
}

func TestZeroRatingsZeroScore(t *testing.T) {
	dto := ToAnswerDTO(answerWith(), helpersAuth.Anonymous())
	assert.Equal(t, 0, dto.UpvoteCount)
	assert.Equal(t, 0, dto.DownvoteCount)
	assert.Equal(t, 0, dto.TotalScore)
}

func TestCurrentUserVoteResolved(t *testing.T) {
	viewerID := uuid.New()
	viewer := helpersAuth.UserContext{UserID: &viewerID, Role: constants.RoleUser}

	a := answerWith(
		rating(uuid.NewString(), true),
		rating(viewerID.String(), false),
	)

	dto := ToAnswerDTO(a, viewer)
	require.NotNil(t, dto.CurrentUserVote)
	assert.False(t, *dto.CurrentUserVote)
	assert.Equal(t, 0, dto.TotalScore) // 1 up, 1 down
}

func TestViewerWithoutVoteHasNoVoteState(t *testing.T) {
	viewerID := uuid.New()
	viewer := helpersAuth.UserContext{UserID: &viewerID, Role: constants.RoleUser}

	dto := ToAnswerDTO(answerWith(rating(uuid.NewString(), true)), viewer)
	assert.Nil(t, dto.CurrentUserVote)
}

func TestNilAnswerMapsToZeroValue(t *testing.T) {
	assert.Empty(t, ToAnswerDTO(nil, helpersAuth.Anonymous()).AnswerID)
}
