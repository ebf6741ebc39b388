package enquiryController

import (
	"time"

	"ccrm/models"
)

// EnquiryListItem is a course enquiry decorated with the name of the course
// it was raised against.
type EnquiryListItem struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	ClosureMessage string    `json:"closureMessage"`
	CourseID       uint      `json:"courseId"`
	CourseName     string    `json:"courseName"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AssignedEnquiryView is the child-admin work-queue row: the enquiry joined
// with its assignment metadata and course name.
type AssignedEnquiryView struct {
	EnquiryID    uint      `json:"enquiryId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CourseName   string    `json:"courseName"`
	ChildAdminID uint      `json:"childAdminId"`
	Priority     string    `json:"priority"`
	AdminNotes   string    `json:"adminNotes"`
	AssignedBy   string    `json:"assignedBy"`
	AssignedAt   time.Time `json:"assignedAt"`
}

// buildEnquiryListItems joins enquiries with their course mappings. Deleted
// enquiries and mappings without a matching enquiry are skipped; a missing
// course degrades to "Unknown" rather than dropping the row.
func buildEnquiryListItems(
	mappings []models.CourseEnquiryMapping,
	enquiries map[uint]models.CourseEnquiry,
	courses map[uint]models.Course,
) []EnquiryListItem {
	items := make([]EnquiryListItem, 0, len(mappings))
	for _, mapping := range mappings {
		if mapping.IsDeleted {
			continue
		}
		enquiry, ok := enquiries[mapping.EnquiryID]
		if !ok || enquiry.IsDeleted {
			continue
		}

		courseName := "Unknown"
		if course, ok := courses[mapping.CourseID]; ok {
			courseName = course.CourseName
		}

		items = append(items, EnquiryListItem{
			ID:             enquiry.ID,
			Name:           enquiry.Name,
			Email:          enquiry.Email,
			Phone:          enquiry.Phone,
			Message:        enquiry.Message,
			Status:         enquiry.Status,
			ClosureMessage: enquiry.ClosureMessage,
			CourseID:       mapping.CourseID,
			CourseName:     courseName,
			CreatedAt:      enquiry.CreatedAt,
		})
	}
	return items
}

// buildAssignedEnquiryViews joins assignment links with their assignment
// records, enquiries and course names. Links whose enquiry or assignment
// record is missing or deleted are skipped.
func buildAssignedEnquiryViews(
	links []models.EnquiryAssignMapping,
	assigns map[uint]models.EnquiryAssign,
	enquiries map[uint]models.CourseEnquiry,
	courseNames map[uint]string,
) []AssignedEnquiryView {
	views := make([]AssignedEnquiryView, 0, len(links))
	for _, link := range links {
		if link.IsDeleted {
			continue
		}
		assign, ok := assigns[link.AssignID]
		if !ok || assign.IsDeleted {
			continue
		}
		enquiry, ok := enquiries[link.EnquiryID]
		if !ok || enquiry.IsDeleted {
			continue
		}

		courseName := "Unknown"
		if name, ok := courseNames[link.EnquiryID]; ok {
			courseName = name
		}

		views = append(views, AssignedEnquiryView{
			EnquiryID:    link.EnquiryID,
			Name:         enquiry.Name,
			Email:        enquiry.Email,
			Phone:        enquiry.Phone,
			Message:      enquiry.Message,
			Status:       enquiry.Status,
			CourseName:   courseName,
			ChildAdminID: link.ChildAdminID,
			Priority:     assign.Priority,
			AdminNotes:   assign.AdminNotes,
			AssignedBy:   assign.AssignedBy,
			AssignedAt:   link.CreatedAt,
		})
	}
	return views
}
