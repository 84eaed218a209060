package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/models"
)

func TestRegisterUserHashesPasswordAndIssuesToken(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)

	user, err := RegisterUser(cfg, mailer, "alice", "alice@example.com", "secret123")
	assert.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.NotNil(t, user.VerificationToken)
	assert.NotNil(t, user.VerificationTokenExpiry)
	assert.True(t, user.VerificationTokenExpiry.After(time.Now()))

	// stored hash verifies against the original password
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)

	_, err := RegisterUser(cfg, mailer, "bob", "bob@example.com", "secret123")
	assert.NoError(t, err)

	_, err = RegisterUser(cfg, mailer, "bobby", "bob@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyEmailConsumesToken(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)

	user, err := RegisterUser(cfg, mailer, "carol", "carol@example.com", "secret123")
	assert.NoError(t, err)
	token := *user.VerificationToken

	verified, err := VerifyEmail(token)
	assert.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationToken)
	assert.Nil(t, verified.VerificationTokenExpiry)

	// the token is single-use
	_, err = VerifyEmail(token)
	assert.ErrorIs(t, err, ErrVerificationInvalid)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	setupTestDB()

	_, err := VerifyEmail("no-such-token")
	assert.ErrorIs(t, err, ErrVerificationInvalid)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)

	user, err := RegisterUser(cfg, mailer, "dave", "dave@example.com", "secret123")
	assert.NoError(t, err)
	token := *user.VerificationToken

	// backdate the expiry past the TTL
	stale := time.Now().Add(-time.Minute)
	err = database.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("verification_token_expiry", stale).Error
	assert.NoError(t, err)

	_, err = VerifyEmail(token)
	assert.ErrorIs(t, err, ErrVerificationExpired)

	var reloaded models.User
	assert.NoError(t, database.DB.First(&reloaded, user.ID).Error)
	assert.False(t, reloaded.IsVerified)
}

func TestResendVerificationRotatesToken(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)

	user, err := RegisterUser(cfg, mailer, "erin", "erin@example.com", "secret123")
	assert.NoError(t, err)
	original := *user.VerificationToken

	assert.NoError(t, ResendVerification(cfg, mailer, "erin@example.com"))

	var reloaded models.User
	assert.NoError(t, database.DB.First(&reloaded, user.ID).Error)
	if assert.NotNil(t, reloaded.VerificationToken) {
		assert.NotEqual(t, original, *reloaded.VerificationToken)
	}

	// the rotated token verifies, the original does not
	_, err = VerifyEmail(original)
	assert.ErrorIs(t, err, ErrVerificationInvalid)
	verified, err := VerifyEmail(*reloaded.VerificationToken)
	assert.NoError(t, err)
	assert.True(t, verified.IsVerified)
}

func TestResendVerificationEdgeCases(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)
	createVerifiedUser("settled@example.com", "secret123")

	assert.ErrorIs(t, ResendVerification(cfg, mailer, "settled@example.com"), ErrAlreadyVerified)
	assert.ErrorIs(t, ResendVerification(cfg, mailer, "ghost@example.com"), ErrUserNotFound)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	setupTestDB()
	user := createVerifiedUser("update@example.com", "secret123")

	updated, err := UpdateUser(user.ID, map[string]interface{}{
		"user_name": "renamed",
		"password":  "new-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, "renamed", updated.UserName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-password")))
}

func TestUpdateUserEmailConflict(t *testing.T) {
	setupTestDB()
	createVerifiedUser("first@example.com", "secret123")
	second := createVerifiedUser("second@example.com", "secret123")

	_, err := UpdateUser(second.ID, map[string]interface{}{"email_id": "first@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateUserNotFound(t *testing.T) {
	setupTestDB()

	_, err := UpdateUser(4242, map[string]interface{}{"user_name": "nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	mailer := mail.NewMailer(cfg)
	user := createVerifiedUser("cascade@example.com", "secret123")

	_, err := LoginUser(cfg, mailer, "cascade@example.com", "secret123", "dev-1", "10.0.0.1", testDevice())
	assert.NoError(t, err)
	_, _, err = CreateOrUpdateConfiguration(user.ID, ConfigurationInput{Income: floatPtr(50000)})
	assert.NoError(t, err)
	_, err = CreateTransaction(user.ID, TransactionInput{
		Type:            models.TransactionTypeExpense,
		Amount:          100,
		TransactionDate: time.Now().UTC(),
	})
	assert.NoError(t, err)

	assert.NoError(t, DeleteUser(user.ID))
	assert.ErrorIs(t, DeleteUser(user.ID), ErrUserNotFound)

	for _, model := range []interface{}{
		&models.Session{}, &models.Configuration{}, &models.Transaction{},
	} {
		var count int64
		database.DB.Model(model).Where("user_id = ?", user.ID).Count(&count)
		assert.Zero(t, count)
	}
}
