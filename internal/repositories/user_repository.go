package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"myHomeBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = "user"
	}

	result, err := r.DB.ExecContext(ctx, `
        INSERT INTO users (first_name, last_name, email, phone, password_hash, role, points, is_deleted, created_at)
        VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?)`,
		user.FirstName, user.LastName, user.Email, user.Phone, user.Password, user.Role, user.CreatedAt,
	)
	if err != nil {
		if isMySQLError(err, mysqlErrDuplicateEntry) {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(lastID)
	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, first_name, last_name, email, phone, role, points, created_at, updated_at
        FROM users
        WHERE id = ? AND is_deleted = 0`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Role, &u.Points, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetUserByEmail also returns the stored password hash; used only by sign-in.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, first_name, last_name, email, phone, password_hash, role, points, created_at, updated_at
        FROM users
        WHERE email = ? AND is_deleted = 0`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Password, &u.Role, &u.Points, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updatedAt := time.Now()
	user.UpdatedAt = &updatedAt

	result, err := r.DB.ExecContext(ctx, `
        UPDATE users
        SET first_name = ?, last_name = ?, email = ?, phone = ?, updated_at = ?
        WHERE id = ? AND is_deleted = 0`,
		user.FirstName, user.LastName, user.Email, user.Phone, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rows == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET is_deleted = 1, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		time.Now(), id,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO sessions (user_id, role, refresh_token, expires_at)
        VALUES (?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)`,
		session.UserID, session.Role, session.RefreshToken, session.ExpiresAt,
	)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx, `
        SELECT user_id, role, refresh_token, expires_at
        FROM sessions
        WHERE refresh_token = ?`, refreshToken,
	).Scan(&s.UserID, &s.Role, &s.RefreshToken, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *UserRepository) SaveDeviceToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO device_tokens (user_id, token, created_at)
        VALUES (?, ?, ?)
        ON DUPLICATE KEY UPDATE token = VALUES(token)`,
		userID, token, time.Now(),
	)
	return err
}

func (r *UserRepository) GetDeviceTokens(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT token FROM device_tokens WHERE user_id = ?`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
