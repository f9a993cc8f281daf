package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
)

func newChatFixture() (*fakeUserRepo, *fakeMessageRepo, *fakeNotificationRepo, ChatService) {
	userRepo := newFakeUserRepo()
	messageRepo := newFakeMessageRepo()
	notifRepo := newFakeNotificationRepo()
	svc := NewChatService(messageRepo, userRepo, NewNotificationService(notifRepo, userRepo))
	return userRepo, messageRepo, notifRepo, svc
}

func TestChatService_GetView(t *testing.T) {
	ctx := context.Background()
	userRepo, messageRepo, _, svc := newChatFixture()

	student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})
	faculty := userRepo.add(&models.User{Name: "Prof", Email: "prof@campus.edu", Role: models.RoleFaculty})
	messageRepo.senders[student.ID] = student.Name

	_, err := svc.Send(ctx, student.ID, student.Name, &dto.SendMessageRequest{
		RecipientID: faculty.ID,
		Content:     "Question about homework",
	})
	require.NoError(t, err)

	t.Run("student view lists faculty targets only", func(t *testing.T) {
		// A reply sent to the student must not leak into the student view
		messageRepo.senders[faculty.ID] = faculty.Name
		_, err := svc.Send(ctx, faculty.ID, faculty.Name, &dto.SendMessageRequest{
			RecipientID: student.ID,
			Content:     "See office hours",
		})
		require.NoError(t, err)

		view, err := svc.GetView(ctx, student.ID, models.RoleStudent)
		require.NoError(t, err)
		require.Len(t, view.Faculty, 1)
		assert.Equal(t, faculty.ID, view.Faculty[0].ID)
		assert.Empty(t, view.Conversations)
	})

	t.Run("faculty view lists received messages without faculty list", func(t *testing.T) {
		view, err := svc.GetView(ctx, faculty.ID, models.RoleFaculty)
		require.NoError(t, err)
		assert.Empty(t, view.Faculty)
		require.Len(t, view.Conversations, 1)
		assert.Equal(t, "Question about homework", view.Conversations[0].Content)
		assert.Equal(t, "Jane", view.Conversations[0].SenderName)
	})
}

func TestChatService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies recipient with sender name", func(t *testing.T) {
		userRepo, _, notifRepo, svc := newChatFixture()
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})
		faculty := userRepo.add(&models.User{Name: "Prof", Email: "prof@campus.edu", Role: models.RoleFaculty})

		message, err := svc.Send(ctx, student.ID, student.Name, &dto.SendMessageRequest{
			RecipientID: faculty.ID,
			Content:     "Hello",
		})
		require.NoError(t, err)
		assert.NotZero(t, message.ID)

		require.Len(t, notifRepo.notifications, 1)
		assert.Equal(t, faculty.ID, notifRepo.notifications[0].UserID)
		assert.Equal(t, "New message from Jane", notifRepo.notifications[0].Content)
		assert.Equal(t, "/chat", notifRepo.notifications[0].Link)
	})

	t.Run("rejects unknown recipient", func(t *testing.T) {
		userRepo, messageRepo, _, svc := newChatFixture()
		student := userRepo.add(&models.User{Name: "Jane", Email: "jane@campus.edu", Role: models.RoleStudent})

		_, err := svc.Send(ctx, student.ID, student.Name, &dto.SendMessageRequest{
			RecipientID: 404,
			Content:     "Hello?",
		})
		assert.ErrorIs(t, err, apperrors.ErrRecipientNotFound)
		assert.Empty(t, messageRepo.messages, "nothing persisted for a bad recipient")
	})
}
