package models

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// SessionToken represents the owner's session. There is exactly one principal,
// so a token carries no user identity beyond its own validity.
type SessionToken struct {
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

const SessionTokenDuration = 30 * 24 * time.Hour // 1 month

// CreateSessionToken generates and stores a new session token for the owner
func CreateSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	now := time.Now()
	expiresAt := now.Add(SessionTokenDuration)

	query := `
	INSERT INTO sessions (token, created_at, expires_at, last_used_at)
	VALUES (?, ?, ?, ?)
	`
	_, err := db.Exec(query, token, now.Unix(), expiresAt.Unix(), now.Unix())
	if err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	return token, nil
}

// ValidateSessionToken validates a session token and updates last_used_at
func ValidateSessionToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}

	var expiresAt int64
	err := db.QueryRow(`SELECT expires_at FROM sessions WHERE token = ?`, token).Scan(&expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("invalid session token")
		}
		return fmt.Errorf("failed to validate token: %w", err)
	}

	if time.Now().After(time.Unix(expiresAt, 0)) {
		// Clean up expired token
		DeleteSessionToken(token)
		return errors.New("session token expired")
	}

	if _, err := db.Exec(`UPDATE sessions SET last_used_at = ? WHERE token = ?`, time.Now().Unix(), token); err != nil {
		// Don't fail validation over a bookkeeping update
		log.Errorf("Failed to update last_used_at: %v", err)
	}

	return nil
}

// DeleteSessionToken removes a session token from the database
func DeleteSessionToken(token string) error {
	if err := DeleteRecord(`DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("failed to delete session token: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes every session past its expiry
func DeleteExpiredSessions() error {
	return DeleteRecord(`DELETE FROM sessions WHERE expires_at < ?`, time.Now().Unix())
}
