package utils

import (
	"fmt"
	"log"
	"time"

	"ccrm/config"
	"ccrm/database"
	"ccrm/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// sendFunc abstracts the outgoing mail call so the sweep can be exercised
// without an SMTP relay.
type sendFunc func(to, subject, textBody, htmlBody string) error

// InitializeReminderScheduler starts the daily follow-up reminder sweep.
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing follow-up reminder scheduler...")

	c := cron.New()

	spec := config.AppConfig.ReminderCron
	if _, err := c.AddFunc(spec, func() {
		log.Println("[REMINDER-SCHEDULER] Running daily follow-up reminder sweep...")
		SendFollowUpReminders()
	}); err != nil {
		log.Printf("[REMINDER-SCHEDULER] Invalid cron spec %q: %v", spec, err)
		return
	}

	c.Start()
	log.Printf("[REMINDER-SCHEDULER] Scheduler started with spec %q", spec)
}

// SendFollowUpReminders runs one sweep over follow-ups due today (UTC) and
// emails the responsible child admin per qualifying follow-up. All errors
// are logged and swallowed; the scheduler is never informed of failures.
func SendFollowUpReminders() {
	sent := sweepDueFollowUps(database.Database.Db, time.Now().UTC(), func(to, subject, textBody, htmlBody string) error {
		return SendEmail([]string{to}, subject, textBody, htmlBody)
	})
	log.Printf("[REMINDER-SCHEDULER] Sweep complete, %d reminder(s) sent", sent)
}

// sweepDueFollowUps joins follow-up mappings, follow-ups, enquiries and
// admin users to find follow-ups whose NextFollowUpDate falls within the
// UTC day containing ref, then sends one reminder per match. Follow-ups
// already flagged ReminderSent are skipped, and the flag is persisted
// after a successful send so each follow-up is reminded at most once.
func sweepDueFollowUps(db *gorm.DB, ref time.Time, send sendFunc) int {
	day := now.New(ref.UTC())
	todayStart := day.BeginningOfDay()
	todayEnd := day.EndOfDay()

	var mappings []models.FollowUpMapping
	if err := db.Where("is_deleted = ?", false).Find(&mappings).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching follow-up mappings: %v", err)
		return 0
	}

	sent := 0
	for _, mapping := range mappings {
		var followUp models.FollowUp
		err := db.Where(
			"id = ? AND is_deleted = ? AND reminder_sent = ? AND next_follow_up_date BETWEEN ? AND ?",
			mapping.FollowUpID, false, false, todayStart, todayEnd,
		).First(&followUp).Error
		if err != nil {
			// Not due today, already reminded, or gone. Skip quietly.
			continue
		}

		var admin models.User
		if err := db.Where("id = ? AND is_deleted = ?", mapping.ChildAdminID, false).First(&admin).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching admin %d: %v", mapping.ChildAdminID, err)
			continue
		}
		if admin.Email == "" {
			continue
		}

		// Enquiry resolution is best-effort: a missing enquiry renders as
		// placeholders rather than skipping the reminder.
		enquiryName, enquiryEmail, enquiryPhone := "Unknown", "N/A", ""
		var enquiry models.CourseEnquiry
		if err := db.Where("id = ? AND is_deleted = ?", mapping.EnquiryID, false).First(&enquiry).Error; err == nil {
			enquiryName = enquiry.Name
			enquiryEmail = enquiry.Email
			enquiryPhone = enquiry.Phone
		}

		phoneLabel := enquiryPhone
		if phoneLabel == "" {
			phoneLabel = "No Phone"
		}

		subject := fmt.Sprintf("Follow-up Reminder: %s (%s)", enquiryName, phoneLabel)
		textBody := fmt.Sprintf(
			"Follow-up due today for enquiry %s (%s, %s). Mode: %s at %s. Notes: %s",
			enquiryName, enquiryEmail, phoneLabel, followUp.Mode, followUp.NextFollowUpTime, followUp.Message,
		)
		htmlBody := getEmailTemplate("Follow-up Due Today", fmt.Sprintf(`
			<p>You have a follow-up scheduled for today.</p>
			<table>
				<tr><th>Enquiry</th><td>%s</td></tr>
				<tr><th>Email</th><td>%s</td></tr>
				<tr><th>Phone</th><td>%s</td></tr>
				<tr><th>Mode</th><td>%s</td></tr>
				<tr><th>Time</th><td>%s</td></tr>
				<tr><th>Notes</th><td>%s</td></tr>
			</table>
		`, enquiryName, enquiryEmail, phoneLabel, followUp.Mode, followUp.NextFollowUpTime, followUp.Message))

		if err := send(admin.Email, subject, textBody, htmlBody); err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error sending reminder for follow-up %d to %s: %v",
				followUp.ID, admin.Email, err)
			continue
		}

		if err := db.Model(&followUp).Update("reminder_sent", true).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error marking follow-up %d as reminded: %v", followUp.ID, err)
		}
		sent++
	}

	return sent
}
