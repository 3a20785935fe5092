package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

func RegisterUser(email, password string) error {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func ChangePassword(userID uint, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

// ForgotPassword stores a short-lived reset code and mails it. Unknown
// emails return nil so the endpoint never reveals which accounts exist.
func ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

var ErrResetTokenInvalid = errors.New("invalid or expired token")

func ResetPassword(token, newPassword string) error {
	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return ErrResetTokenInvalid
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrResetTokenInvalid
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
