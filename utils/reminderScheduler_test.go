package utils

import (
	"fmt"
	"testing"
	"time"

	"ccrm/config"
	"ccrm/database"
	"ccrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMail struct {
	to      string
	subject string
}

func setupReminderTest(t *testing.T) *gorm.DB {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func seedFollowUp(t *testing.T, db *gorm.DB, adminEmail string, dueDate time.Time) (models.User, models.FollowUp) {
	t.Helper()

	admin := models.User{
		UserName: "Child Admin",
		Email:    adminEmail,
		Password: "not-a-real-hash",
		Role:     models.RoleChildAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)

	enquiry := models.CourseEnquiry{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9812345678",
		Message: "Interested in the evening batch",
		Status:  models.EnquiryInProgress,
	}
	require.NoError(t, db.Create(&enquiry).Error)

	followUp := models.FollowUp{
		Mode:             models.ModeCall,
		Message:          "Call to confirm enrollment",
		NextFollowUpDate: dueDate,
		NextFollowUpTime: "10:00",
	}
	require.NoError(t, db.Create(&followUp).Error)
	require.NoError(t, db.Create(&models.FollowUpMapping{
		FollowUpID:   followUp.ID,
		EnquiryID:    enquiry.ID,
		ChildAdminID: admin.ID,
	}).Error)

	return admin, followUp
}

func TestSweepSendsReminderForFollowUpDueToday(t *testing.T) {
	db := setupReminderTest(t)
	ref := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	seedFollowUp(t, db, "child@example.com", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	var sends []sentMail
	sent := sweepDueFollowUps(db, ref, func(to, subject, textBody, htmlBody string) error {
		sends = append(sends, sentMail{to: to, subject: subject})
		return nil
	})

	assert.Equal(t, 1, sent)
	require.Len(t, sends, 1)
	assert.Equal(t, "child@example.com", sends[0].to)
	assert.Contains(t, sends[0].subject, "Asha")
	assert.Contains(t, sends[0].subject, "9812345678")

	var reminded models.FollowUp
	require.NoError(t, db.First(&reminded).Error)
	assert.True(t, reminded.ReminderSent)
}

func TestSweepIgnoresFollowUpDueTomorrow(t *testing.T) {
	db := setupReminderTest(t)
	ref := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	seedFollowUp(t, db, "child@example.com", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	sent := sweepDueFollowUps(db, ref, func(to, subject, textBody, htmlBody string) error {
		t.Fatalf("unexpected send to %s", to)
		return nil
	})

	assert.Equal(t, 0, sent)
}

func TestSweepRemindsAtMostOnce(t *testing.T) {
	db := setupReminderTest(t)
	ref := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	seedFollowUp(t, db, "child@example.com", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	sent := sweepDueFollowUps(db, ref, func(to, subject, textBody, htmlBody string) error {
		return nil
	})
	require.Equal(t, 1, sent)

	// A rerun on the same day finds nothing left to remind.
	sent = sweepDueFollowUps(db, ref.Add(2*time.Hour), func(to, subject, textBody, htmlBody string) error {
		return nil
	})
	assert.Equal(t, 0, sent)
}

func TestSweepKeepsFlagClearWhenSendFails(t *testing.T) {
	db := setupReminderTest(t)
	ref := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	seedFollowUp(t, db, "child@example.com", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	sent := sweepDueFollowUps(db, ref, func(to, subject, textBody, htmlBody string) error {
		return fmt.Errorf("relay down")
	})
	assert.Equal(t, 0, sent)

	var followUp models.FollowUp
	require.NoError(t, db.First(&followUp).Error)
	assert.False(t, followUp.ReminderSent)

	// The next sweep retries and succeeds.
	sent = sweepDueFollowUps(db, ref.Add(time.Hour), func(to, subject, textBody, htmlBody string) error {
		return nil
	})
	assert.Equal(t, 1, sent)
}

func TestSweepSkipsDeletedMappings(t *testing.T) {
	db := setupReminderTest(t)
	ref := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	seedFollowUp(t, db, "child@example.com", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	require.NoError(t, db.Model(&models.FollowUpMapping{}).
		Where("1 = 1").Update("is_deleted", true).Error)

	sent := sweepDueFollowUps(db, ref, func(to, subject, textBody, htmlBody string) error {
		t.Fatalf("unexpected send to %s", to)
		return nil
	})
	assert.Equal(t, 0, sent)
}
