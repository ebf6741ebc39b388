package enquiryController

import (
	"testing"

	"ccrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildEnquiryListItems(t *testing.T) {
	mappings := []models.CourseEnquiryMapping{
		{EnquiryID: 1, CourseID: 10},
		{EnquiryID: 2, CourseID: 10, IsDeleted: true},
		{EnquiryID: 3, CourseID: 99}, // course missing
		{EnquiryID: 4, CourseID: 10}, // enquiry missing
	}
	enquiries := map[uint]models.CourseEnquiry{
		1: {Model: gorm.Model{ID: 1}, Name: "Asha", Email: "asha@example.com", Status: models.EnquiryPending},
		2: {Model: gorm.Model{ID: 2}, Name: "Deleted mapping"},
		3: {Model: gorm.Model{ID: 3}, Name: "Ravi", Status: models.EnquiryInProgress},
	}
	courses := map[uint]models.Course{
		10: {Model: gorm.Model{ID: 10}, CourseName: "Go Fundamentals"},
	}

	items := buildEnquiryListItems(mappings, enquiries, courses)

	require.Len(t, items, 2)
	assert.Equal(t, "Asha", items[0].Name)
	assert.Equal(t, "Go Fundamentals", items[0].CourseName)
	assert.Equal(t, "Ravi", items[1].Name)
	assert.Equal(t, "Unknown", items[1].CourseName)
}

func TestBuildEnquiryListItemsSkipsDeletedEnquiry(t *testing.T) {
	mappings := []models.CourseEnquiryMapping{{EnquiryID: 1, CourseID: 10}}
	enquiries := map[uint]models.CourseEnquiry{
		1: {Model: gorm.Model{ID: 1}, Name: "Gone", IsDeleted: true},
	}

	items := buildEnquiryListItems(mappings, enquiries, nil)
	assert.Empty(t, items)
}

func TestBuildAssignedEnquiryViews(t *testing.T) {
	links := []models.EnquiryAssignMapping{
		{EnquiryID: 1, ChildAdminID: 5, AssignID: 100},
		{EnquiryID: 2, ChildAdminID: 5, AssignID: 101, IsDeleted: true},
		{EnquiryID: 3, ChildAdminID: 5, AssignID: 102}, // assignment record deleted
	}
	assigns := map[uint]models.EnquiryAssign{
		100: {Model: gorm.Model{ID: 100}, Priority: models.PriorityHigh, AdminNotes: "Hot lead", AssignedBy: "root"},
		101: {Model: gorm.Model{ID: 101}, Priority: models.PriorityLow},
		102: {Model: gorm.Model{ID: 102}, IsDeleted: true},
	}
	enquiries := map[uint]models.CourseEnquiry{
		1: {Model: gorm.Model{ID: 1}, Name: "Asha", Email: "asha@example.com", Status: models.EnquiryInProgress},
		2: {Model: gorm.Model{ID: 2}, Name: "B"},
		3: {Model: gorm.Model{ID: 3}, Name: "C"},
	}
	courseNames := map[uint]string{1: "Go Fundamentals"}

	views := buildAssignedEnquiryViews(links, assigns, enquiries, courseNames)

	require.Len(t, views, 1)
	view := views[0]
	assert.Equal(t, uint(1), view.EnquiryID)
	assert.Equal(t, "Asha", view.Name)
	assert.Equal(t, "Go Fundamentals", view.CourseName)
	assert.Equal(t, uint(5), view.ChildAdminID)
	assert.Equal(t, models.PriorityHigh, view.Priority)
	assert.Equal(t, "Hot lead", view.AdminNotes)
	assert.Equal(t, "root", view.AssignedBy)
}

func TestBuildAssignedEnquiryViewsMissingCourse(t *testing.T) {
	links := []models.EnquiryAssignMapping{{EnquiryID: 1, ChildAdminID: 5, AssignID: 100}}
	assigns := map[uint]models.EnquiryAssign{
		100: {Model: gorm.Model{ID: 100}, Priority: models.PriorityMedium},
	}
	enquiries := map[uint]models.CourseEnquiry{
		1: {Model: gorm.Model{ID: 1}, Name: "Asha"},
	}

	views := buildAssignedEnquiryViews(links, assigns, enquiries, map[uint]string{})

	require.Len(t, views, 1)
	assert.Equal(t, "Unknown", views[0].CourseName)
}
