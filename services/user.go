package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expenseinsight/expense-api/models"
	"github.com/expenseinsight/expense-api/utils"
)

type UserService struct {
	db *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account. Email uniqueness is exact-match and
// case-sensitive.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validationErr("Email already registered")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, name, totp_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $6)
	`, user.ID, user.Email, passwordHash, user.Name, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail loads a full user record for credential checks.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	var totpSecret sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, totp_secret, totp_enabled, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &totpSecret, &user.TOTPEnabled, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	user.TOTPSecret = totpSecret.String
	return &user, nil
}

// GetProfile returns the caller-visible profile. The password hash never
// leaves this package.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name FROM users WHERE id = $1
	`, userID).Scan(&p.ID, &p.Email, &p.Name)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateProfile applies any of name, email, password. At least one field
// must be present. An email move fails when another account already owns
// the address.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) error {
	if req.Name == "" && req.Email == "" && req.Password == "" {
		return validationErr("No fields to update")
	}

	sets := []string{}
	args := []interface{}{}

	if req.Name != "" {
		args = append(args, req.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}

	if req.Email != "" {
		var taken bool
		err := s.db.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)
		`, req.Email, userID).Scan(&taken)
		if err != nil {
			return err
		}
		if taken {
			return validationErr("Email already in use")
		}
		args = append(args, req.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}

	if req.Password != "" {
		if len(req.Password) < 6 {
			return validationErr("Password must be at least 6 characters")
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}
		args = append(args, hash)
		sets = append(sets, fmt.Sprintf("password_hash = $%d", len(args)))
	}

	args = append(args, time.Now())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetPasswordHash loads the stored hash for confirmation flows.
func (s *UserService) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT password_hash FROM users WHERE id = $1
	`, userID).Scan(&hash)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return hash, err
}

// ============================================================================
// TWO-FACTOR STATE
// ============================================================================

func (s *UserService) SetTOTPSecret(ctx context.Context, userID, secret string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users SET totp_secret = $1, updated_at = $2 WHERE id = $3
	`, secret, time.Now(), userID)
	return err
}

func (s *UserService) GetTOTPSecret(ctx context.Context, userID string) (string, error) {
	var secret sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT totp_secret FROM users WHERE id = $1
	`, userID).Scan(&secret)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return secret.String, nil
}

func (s *UserService) SetTOTPEnabled(ctx context.Context, userID string, enabled bool) error {
	if enabled {
		_, err := s.db.ExecContext(ctx, `
			UPDATE users SET totp_enabled = TRUE, updated_at = $1 WHERE id = $2
		`, time.Now(), userID)
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE users SET totp_enabled = FALSE, totp_secret = NULL, updated_at = $1 WHERE id = $2
	`, time.Now(), userID)
	return err
}

// ============================================================================
// ACCOUNT DELETION
// ============================================================================

// Delete removes the account and everything it owns in one transaction.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = $1`, userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM budgets WHERE user_id = $1`, userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
			return err
		}
		return nil
	})
}
