package services

import (
	"errors"
	"time"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/models"
	"github.com/PoojaSancheti/Low-PocEat/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user with this username does not exist")
)

// SignupUser creates the user and logs them in immediately: the caller
// gets back a token bound to a fresh session. Field validation
// (uniqueness included) happens in the validation package before this
// is called.
func SignupUser(username, email, password string) (*models.User, string, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := createSession(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// AuthenticateUser verifies credentials and opens a session. The error
// never says whether the username or the password was wrong.
func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return createSession(&user)
}

func createSession(user *models.User) (string, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(utils.SessionTTL),
	}
	if err := config.DB.Create(&session).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.Username, session.Token)
}

// DeleteSession invalidates the server-side session row; the JWT that
// references it stops working immediately.
func DeleteSession(token string) error {
	return config.DB.Unscoped().
		Where("token = ?", token).
		Delete(&models.Session{}).Error
}

// ResetPassword is the simplified non-token flow: anyone who knows a
// username can set a new password. Confirmation matching is the
// caller's job.
func ResetPassword(username, newPassword string) error {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return config.DB.Save(&user).Error
}
