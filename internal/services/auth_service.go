package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/models"
	"github.com/lighty7/Finances-backend/internal/utils"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so callers cannot probe which addresses have accounts.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailNotVerified   = errors.New("email address has not been verified")
	ErrInvalidSession     = errors.New("session not found or has been logged out")
	ErrNoToken            = errors.New("token is required")
	ErrSessionNotFound    = errors.New("session already logged out or invalid")
)

// LoginResult carries everything the login handler exposes to the client.
type LoginResult struct {
	Token    string
	User     models.User
	DeviceID string
	Session  models.Session
}

// LoginUser authenticates an email/password pair and establishes (or
// refreshes) the single active session for the resolved device. A client
// that supplies no deviceId gets a generated one back and is expected to
// persist it; re-login with the same deviceId reuses the session row
// instead of duplicating it.
func LoginUser(cfg *config.Config, mailer *mail.Mailer, emailID, password, deviceID, ipAddress string, device models.DeviceInfo) (*LoginResult, error) {
	var user models.User
	if err := database.DB.Where("email_id = ?", emailID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	if deviceID == "" {
		deviceID = uuid.New().String()
	}

	token, err := utils.GenerateToken(cfg, user.ID, user.EmailID, deviceID)
	if err != nil {
		return nil, err
	}

	session, err := upsertSession(user.ID, deviceID, token, ipAddress, device)
	if err != nil {
		return nil, err
	}

	// Best-effort notification; never blocks or fails the login.
	mailer.SendAsync(mail.LoginNotification(user.UserName, ipAddress, device,
		time.Now().UTC().Format(time.RFC1123)).WithRecipient(user.EmailID))

	user.Password = ""
	return &LoginResult{
		Token:    token,
		User:     user,
		DeviceID: deviceID,
		Session:  *session,
	}, nil
}

// upsertSession refreshes the active session for (userID, deviceID) or
// inserts a fresh one. The partial unique index on active (user_id,
// device_id) pairs makes the insert race safe: the loser of two concurrent
// logins gets a duplicate-key error and retries as an update, so exactly
// one active row survives with the most recent token.
func upsertSession(userID uint, deviceID, token, ipAddress string, device models.DeviceInfo) (*models.Session, error) {
	var session models.Session

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		refresh := map[string]interface{}{
			"token":         token,
			"ip_address":    ipAddress,
			"user_agent":    device.UserAgent,
			"device_info":   device,
			"is_active":     true,
			"last_activity": time.Now(),
			"logged_out_at": nil,
		}

		res := tx.Model(&models.Session{}).
			Where("user_id = ? AND device_id = ? AND is_active = ?", userID, deviceID, true).
			Updates(refresh)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND device_id = ? AND is_active = ?", userID, deviceID, true).
				First(&session).Error
		}

		session = models.Session{
			UserID:       userID,
			DeviceID:     deviceID,
			IPAddress:    ipAddress,
			UserAgent:    device.UserAgent,
			DeviceInfo:   device,
			Token:        token,
			IsActive:     true,
			LastActivity: time.Now(),
		}
		if err := tx.Create(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the insert race to a concurrent login; refresh the
				// surviving row instead.
				if err := tx.Model(&models.Session{}).
					Where("user_id = ? AND device_id = ? AND is_active = ?", userID, deviceID, true).
					Updates(refresh).Error; err != nil {
					return err
				}
				return tx.Where("user_id = ? AND device_id = ? AND is_active = ?", userID, deviceID, true).
					First(&session).Error
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AuthenticateToken resolves a bearer token to its user and session. A
// cryptographically valid token is still rejected when its session row has
// been deactivated: the store, not the token, is the source of truth.
// On success the session's last-activity timestamp is touched and the
// returned user carries no password hash.
func AuthenticateToken(cfg *config.Config, tokenString string) (*models.User, *models.Session, error) {
	claims, err := utils.ValidateToken(cfg, tokenString)
	if err != nil {
		return nil, nil, err
	}

	var session models.Session
	err = database.DB.
		Where("token = ? AND user_id = ? AND is_active = ?", tokenString, claims.UserID, true).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidSession
		}
		return nil, nil, err
	}

	user, err := FindUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	now := time.Now()
	if err := database.DB.Model(&session).Update("last_activity", now).Error; err != nil {
		return nil, nil, err
	}
	session.LastActivity = now

	user.Password = ""
	return &user, &session, nil
}

// LogoutSession deactivates the session carrying exactly this token. It is
// deliberately reachable without prior authentication so clients can
// retire stale tokens after expiry; a token that matches no active session
// reports ErrSessionNotFound whether it was logged out earlier or never
// existed.
func LogoutSession(tokenString string) (*models.Session, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	var session models.Session
	err := database.DB.Where("token = ? AND is_active = ?", tokenString, true).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_active":     false,
		"logged_out_at": now,
	}
	if err := database.DB.Model(&session).Updates(updates).Error; err != nil {
		return nil, err
	}
	session.IsActive = false
	session.LoggedOutAt = &now
	return &session, nil
}

// LogoutAllSessions deactivates every active session of the user and
// returns how many were affected. Zero affected rows is not an error.
func LogoutAllSessions(userID uint) (int64, error) {
	res := database.DB.Model(&models.Session{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"is_active":     false,
			"logged_out_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// ActiveSessions lists the user's live sessions, most recently used first.
func ActiveSessions(userID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := database.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("last_activity desc").
		Find(&sessions).Error
	return sessions, err
}

// FindSessionByID loads one session row.
func FindSessionByID(id uint) (*models.Session, error) {
	var session models.Session
	if err := database.DB.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
