package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahiti3636/finwise-ai/models"
)

// CreateUser inserts a new account and returns it with the generated id.
func CreateUser(username, email, firstName, lastName, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
	}
	query := `
		INSERT INTO users (id, username, email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := DB.QueryRow(query, user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating user %s: %v", username, err)
	}
	return user, nil
}

func GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, email, first_name, last_name, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	user := &models.User{}
	err := DB.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching user %s: %v", username, err)
	}
	return user, nil
}

func GetUserByID(userID string) (*models.User, error) {
	query := `
		SELECT id, username, email, first_name, last_name, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	user := &models.User{}
	err := DB.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching user %s: %v", userID, err)
	}
	return user, nil
}

func UpdatePassword(userID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1
		WHERE id = $2
	`
	_, err := DB.Exec(query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("error updating password for user %s: %v", userID, err)
	}
	return nil
}
