package inviteController

import (
	"fmt"
	"log"
	"time"

	"ccrm/config"
	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	"ccrm/utils"
	instituteValidator "ccrm/validators/institute"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func generateInviteToken(email string, instituteID uint) (string, error) {
	claims := jwt.MapClaims{
		"email":       email,
		"instituteId": instituteID,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

func parseInviteToken(tokenString string) (string, uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return "", 0, fmt.Errorf("invalid or expired invite token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, fmt.Errorf("invalid invite token payload")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", 0, fmt.Errorf("invalid invite token payload")
	}
	instituteID, ok := claims["instituteId"].(float64)
	if !ok || instituteID == 0 {
		return "", 0, fmt.Errorf("invalid invite token payload")
	}

	return email, uint(instituteID), nil
}

// SendStudentInvites issues a tokenized registration link, valid for 24
// hours, to each requested email on behalf of an institute.
func SendStudentInvites(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInvites").(*instituteValidator.SendInvitesRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	instituteID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid institute id!")
	}

	db := database.Database.Db

	var institute models.Institute
	if err := db.Where("id = ? AND is_deleted = ?", instituteID, false).First(&institute).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Institute not found")
	}

	sent := make([]string, 0, len(reqData.Emails))
	failed := make([]string, 0)

	for _, email := range reqData.Emails {
		token, err := generateInviteToken(email, uint(instituteID))
		if err != nil {
			log.Printf("[INVITE] Error generating token for %s: %v", email, err)
			failed = append(failed, email)
			continue
		}

		invite := models.StudentInvite{
			Email:       email,
			Token:       token,
			InstituteID: uint(instituteID),
		}
		if err := db.Create(&invite).Error; err != nil {
			log.Printf("[INVITE] Error saving invite for %s: %v", email, err)
			failed = append(failed, email)
			continue
		}

		inviteLink := fmt.Sprintf("%s/student/register?token=%s", config.AppConfig.FrontendURL, token)
		if err := utils.SendStudentInviteEmail(email, inviteLink); err != nil {
			log.Printf("[INVITE] Error sending invite email to %s: %v", email, err)
			failed = append(failed, email)
			continue
		}

		sent = append(sent, email)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Invites processed", fiber.Map{
		"sent":   sent,
		"failed": failed,
	})
}

// RegisterViaInvite registers a student from an invite token, links them to
// the inviting institute and burns the invite.
func RegisterViaInvite(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*instituteValidator.RegisterViaInviteRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	tokenString := c.Query("token")
	if tokenString == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invite token is required")
	}

	email, instituteID, err := parseInviteToken(tokenString)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired invite token")
	}

	db := database.Database.Db

	var invite models.StudentInvite
	if err := db.Where("token = ?", tokenString).First(&invite).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Invite not found")
	}
	if invite.IsUsed {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Invite has already been used")
	}

	var existing models.User
	if err := db.Where("email = ? OR phone = ?", email, reqData.Phone).First(&existing).Error; err == nil {
		msg := "Phone already exists"
		if existing.Email == email {
			msg = "Email already exists"
		}
		return middleware.ErrorResponse(c, fiber.StatusConflict, msg)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := models.User{
		UserName: reqData.UserName,
		Email:    email,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
		Role:     models.RoleInstituteStudent,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		if err := middleware.SeedPermissions(tx, newUser.Role, newUser.ID); err != nil {
			return err
		}
		if err := tx.Create(&models.InstituteStudentMapping{
			StudentID:   newUser.ID,
			InstituteID: instituteID,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&invite).Update("is_used", true).Error
	})
	if err != nil {
		log.Printf("[INVITE] Error registering student via invite: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register student!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Student registered successfully", newUser)
}
