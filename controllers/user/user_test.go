package userController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ccrm/config"
	"ccrm/database"
	"ccrm/models"
	userValidator "ccrm/validators/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/v1/user/signup", userValidator.Signup(), Signup)
	app.Post("/api/v1/user/login", userValidator.Login(), Login)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func TestSignupFirstUserBecomesAdmin(t *testing.T) {
	app, db := setupUserTest(t)

	resp, _ := postJSON(t, app, "/api/v1/user/signup", fiber.Map{
		"userName": "Root",
		"email":    "root@example.com",
		"phone":    "9876543210",
		"password": "secret123",
		"userType": models.RoleStudent,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var first models.User
	require.NoError(t, db.Where("email = ?", "root@example.com").First(&first).Error)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.NotEqual(t, "secret123", first.Password)

	var permCount int64
	db.Model(&models.Permission{}).Where("user_id = ?", first.ID).Count(&permCount)
	assert.Equal(t, int64(len(models.DefaultPermissions(models.RoleAdmin))), permCount)

	// Second signup keeps the requested role.
	resp, _ = postJSON(t, app, "/api/v1/user/signup", fiber.Map{
		"userName": "Asha",
		"email":    "asha@example.com",
		"phone":    "9812345678",
		"password": "secret123",
		"userType": models.RoleStudent,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var second models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&second).Error)
	assert.Equal(t, models.RoleStudent, second.Role)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, _ := postJSON(t, app, "/api/v1/user/signup", fiber.Map{
		"userName": "Root",
		"email":    "root@example.com",
		"phone":    "9876543210",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/v1/user/signup", fiber.Map{
		"userName": "Clone",
		"email":    "root@example.com",
		"phone":    "9812345678",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already exists", body["message"])
}

func TestLogin(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, _ := postJSON(t, app, "/api/v1/user/signup", fiber.Map{
		"userName": "Root",
		"email":    "root@example.com",
		"phone":    "9876543210",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Login by email.
	resp, body := postJSON(t, app, "/api/v1/user/login", fiber.Map{
		"contact":  "root@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Login by phone.
	resp, _ = postJSON(t, app, "/api/v1/user/login", fiber.Map{
		"contact":  "9876543210",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/v1/user/login", fiber.Map{
		"contact":  "root@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/v1/user/login", fiber.Map{
		"contact":  "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
