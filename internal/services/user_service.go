package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/models"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrVerificationInvalid = errors.New("verification token is invalid")
	ErrVerificationExpired = errors.New("verification token has expired")
	ErrAlreadyVerified     = errors.New("email is already verified")
)

const verificationTokenTTL = 24 * time.Hour

// RegisterUser creates an unverified account and dispatches the welcome
// email carrying the verification link. The caller's password is hashed
// here; it never reaches the store in the clear.
func RegisterUser(cfg *config.Config, mailer *mail.Mailer, userName, emailID, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := uuid.New().String()
	expiry := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		UserName:                userName,
		EmailID:                 emailID,
		Password:                string(hashed),
		IsVerified:              false,
		VerificationToken:       &token,
		VerificationTokenExpiry: &expiry,
	}

	if err := database.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	mailer.SendAsync(mail.Welcome(user.UserName, verificationURL(cfg, token)).
		WithRecipient(user.EmailID))

	return user, nil
}

// VerifyEmail consumes a verification token. The transition happens at
// most once: a matching, non-expired token marks the account verified and
// both token fields are cleared so the token cannot be replayed.
func VerifyEmail(token string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("verification_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationInvalid
		}
		return nil, err
	}

	if user.VerificationTokenExpiry == nil || time.Now().After(*user.VerificationTokenExpiry) {
		return nil, ErrVerificationExpired
	}

	updates := map[string]interface{}{
		"is_verified":               true,
		"verification_token":        nil,
		"verification_token_expiry": nil,
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpiry = nil
	invalidateUserCache(user.ID)
	return &user, nil
}

// ResendVerification regenerates the verification token for an unverified
// account and re-sends the email. Returns ErrAlreadyVerified for verified
// accounts and ErrUserNotFound for unknown emails; the handler collapses
// both into a neutral response to avoid account enumeration.
func ResendVerification(cfg *config.Config, mailer *mail.Mailer, emailID string) error {
	var user models.User
	err := database.DB.Where("email_id = ?", emailID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	token := uuid.New().String()
	expiry := time.Now().Add(verificationTokenTTL)
	updates := map[string]interface{}{
		"verification_token":        token,
		"verification_token_expiry": expiry,
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	mailer.SendAsync(mail.VerificationReminder(user.UserName, verificationURL(cfg, token)).
		WithRecipient(user.EmailID))
	return nil
}

// FindUserByID loads a user, trying the redis cache first when a client is
// configured. Cache misses and marshalling problems fall through to the
// database.
func FindUserByID(userID uint) (models.User, error) {
	cacheKey := userCacheKey(userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return user, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// UpdateUser applies a partial update. A non-empty password is rehashed;
// an email change resets nothing else (verification state is a separate
// concern handled by the registration flow).
func UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	invalidateUserCache(id)

	if err := database.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the account and everything hanging off it: sessions,
// configuration and transactions go in the same transaction, so a failed
// cascade leaves no orphans.
func DeleteUser(id uint) error {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Configuration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	invalidateUserCache(id)
	return nil
}

func verificationURL(cfg *config.Config, token string) string {
	return fmt.Sprintf("%s/verify-email?token=%s", cfg.FrontendURL, token)
}

func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func invalidateUserCache(userID uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, userCacheKey(userID))
	}
}
