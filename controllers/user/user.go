package userController

import (
	"log"

	"ccrm/config"
	"ccrm/database"
	"ccrm/middleware"
	"ccrm/models"
	"ccrm/utils"
	userValidator "ccrm/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup registers a new user. The very first registered user is promoted
// to admin; everyone else gets the role they asked for (default student).
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.SignupRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ? OR phone = ?", reqData.Email, reqData.Phone).First(&existing).Error; err == nil {
		msg := "Phone already exists"
		if existing.Email == reqData.Email {
			msg = "Email already exists"
		}
		return middleware.ErrorResponse(c, fiber.StatusConflict, msg)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	role := reqData.UserType
	if role == "" {
		role = models.RoleStudent
	}
	if userCount == 0 {
		role = models.RoleAdmin
	}

	newUser := models.User{
		UserName: reqData.UserName,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
		Role:     role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return middleware.SeedPermissions(tx, newUser.Role, newUser.ID)
	})
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Register successfully complete", newUser)
}

// Login verifies credentials (email or phone) and returns a bearer token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*userValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var user models.User
	err := database.Database.Db.
		Where("(email = ? OR phone = ?) AND is_deleted = ?", reqData.Contact, reqData.Contact, false).
		First(&user).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Password is invalid")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.UserName)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// CreateChildAdmin lets an admin provision a child-admin account and mails
// the credentials to the new user.
func CreateChildAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChildAdmin").(*userValidator.ChildAdminRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ? OR phone = ?", reqData.Email, reqData.Phone).First(&existing).Error; err == nil {
		msg := "Phone already exists."
		if existing.Email == reqData.Email {
			msg = "Email already exists."
		}
		return middleware.ErrorResponse(c, fiber.StatusConflict, msg)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := models.User{
		UserName: reqData.UserName,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
		Role:     models.RoleChildAdmin,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return middleware.SeedPermissions(tx, newUser.Role, newUser.ID)
	})
	if err != nil {
		log.Printf("Error creating child admin: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create child admin!")
	}

	if err := utils.SendChildAdminWelcomeEmail(newUser.Email, newUser.UserName, reqData.Password); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Child admin created but email delivery failed!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Child Admin created successfully", newUser)
}

// GetAllInstitutes lists all non-deleted institute users.
func GetAllInstitutes(c *fiber.Ctx) error {
	var institutes []models.User
	err := database.Database.Db.
		Where("role = ? AND is_deleted = ?", models.RoleInstitute, false).
		Find(&institutes).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch institutes!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "All institutes fetched successfully", institutes)
}

// GetAllStudents lists all non-deleted student users.
func GetAllStudents(c *fiber.Ctx) error {
	var students []models.User
	err := database.Database.Db.
		Where("role = ? AND is_deleted = ?", models.RoleStudent, false).
		Find(&students).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch students!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "All students fetched successfully", students)
}

// GetSingleUserById fetches one non-deleted user.
func GetSingleUserById(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "User fetched successfully", user)
}

// UpdateUser updates profile fields; password is re-hashed when provided.
func UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found or already deleted")
	}

	updates := map[string]interface{}{}
	if reqData.UserName != "" {
		updates["user_name"] = reqData.UserName
	}
	if reqData.Email != "" {
		updates["email"] = reqData.Email
	}
	if reqData.Phone != "" {
		updates["phone"] = reqData.Phone
	}
	if reqData.UserProfilePic != "" {
		updates["user_profile_pic"] = reqData.UserProfilePic
	}
	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
		}
		updates["password"] = string(hashedPassword)
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update user!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "User updated successfully", user)
}

// DeleteUser soft-deletes a user.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found or already deleted")
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"is_deleted": true,
		"is_active":  false,
	}).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete user!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "User deleted successfully", user)
}
