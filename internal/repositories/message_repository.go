package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"myHomeBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

// CreateMessage stores a message, finding or creating the chat between the
// two users first.
func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Message{}, err
	}
	defer tx.Rollback()

	var chatID int
	err = tx.QueryRowContext(ctx, `
        SELECT id
        FROM chats
        WHERE (user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)
        LIMIT 1`,
		message.SenderID, message.ReceiverID, message.ReceiverID, message.SenderID,
	).Scan(&chatID)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO chats (user1_id, user2_id, created_at) VALUES (?, ?, ?)`,
			message.SenderID, message.ReceiverID, time.Now(),
		)
		if err != nil {
			if isMySQLError(err, mysqlErrForeignKey) {
				return models.Message{}, models.ErrUnknownReference
			}
			return models.Message{}, err
		}
		newChatID, err := res.LastInsertId()
		if err != nil {
			return models.Message{}, err
		}
		chatID = int(newChatID)
	} else if err != nil {
		return models.Message{}, err
	}

	message.ChatID = chatID
	message.CreatedAt = time.Now()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO messages (chat_id, sender_id, receiver_id, text, is_deleted, created_at)
        VALUES (?, ?, ?, ?, 0, ?)`,
		message.ChatID, message.SenderID, message.ReceiverID, message.Text, message.CreatedAt,
	)
	if err != nil {
		if isMySQLError(err, mysqlErrForeignKey) {
			return models.Message{}, models.ErrUnknownReference
		}
		return models.Message{}, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	message.ID = int(lastID)

	if err := tx.Commit(); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (r *MessageRepository) GetMessagesForChat(ctx context.Context, chatID, page, pageSize int) ([]models.Message, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, chat_id, sender_id, receiver_id, text, created_at
        FROM messages
        WHERE chat_id = ? AND is_deleted = 0
        ORDER BY created_at ASC
        LIMIT ? OFFSET ?`,
		chatID, pageSize, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.ReceiverID, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE messages SET is_deleted = 1 WHERE id = ? AND is_deleted = 0`, id,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrMessageNotFound
	}
	return nil
}
