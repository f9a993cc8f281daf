package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

// IMessageRepository defines the interface for direct message persistence
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) (int64, error)
	GetConversationsForRecipient(ctx context.Context, recipientID int64) ([]dto.ConversationMessage, error)
	CountUnread(ctx context.Context, recipientID int64) (int, error)
}

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new message and returns its id
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	sql, args, err := r.sb.Insert("messages").
		Columns("content", "sender_id", "recipient_id").
		Values(message.Content, message.SenderID, message.RecipientID).
		Suffix("RETURNING id, sent_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create message SQL")
		return 0, fmt.Errorf("failed to build create message query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.SentAt)
	if err != nil {
		logger.Error().Err(err).Int64("recipientID", message.RecipientID).Msg("Error executing create message query")
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return message.ID, nil
}

// GetConversationsForRecipient retrieves a user's received messages joined
// with the sender's name, newest first.
func (r *MessageRepository) GetConversationsForRecipient(ctx context.Context, recipientID int64) ([]dto.ConversationMessage, error) {
	sql, args, err := r.sb.Select("m.id", "m.content", "m.sender_id", "u.name AS sender_name", "m.sent_at", "m.is_read").
		From("messages m").
		Join("users u ON m.sender_id = u.id").
		Where(squirrel.Eq{"m.recipient_id": recipientID}).
		OrderBy("m.sent_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build conversations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("recipientID", recipientID).Msg("Error executing conversations query")
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer rows.Close()

	conversations := make([]dto.ConversationMessage, 0)
	for rows.Next() {
		var c dto.ConversationMessage
		if err := rows.Scan(&c.ID, &c.Content, &c.SenderID, &c.SenderName, &c.SentAt, &c.IsRead); err != nil {
			return nil, fmt.Errorf("error scanning conversation row: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

// CountUnread counts a user's unread received messages
func (r *MessageRepository) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = false`,
		recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return count, nil
}
