package database

import (
	"fmt"
	"log"

	"ccrm/config"
	"ccrm/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Course{},
		&models.CourseModule{},
		&models.CourseModuleMapping{},
		&models.Price{},
		&models.CoursePriceMapping{},
		&models.SpecialPrice{},
		&models.SpecialPriceMapping{},
		&models.Batch{},
		&models.BatchCourseMapping{},
		&models.Rating{},
		&models.RatingMapping{},
		&models.Institute{},
		&models.InstituteUserMapping{},
		&models.InstituteStudentMapping{},
		&models.StudentInvite{},
		&models.Mentor{},
		&models.MentorUserMapping{},
		&models.RaisedDeal{},
		&models.RaisedDealMapping{},
		&models.CourseEnquiry{},
		&models.CourseEnquiryMapping{},
		&models.GeneralEnquiry{},
		&models.EnquiryAssign{},
		&models.EnquiryAssignMapping{},
		&models.FollowUp{},
		&models.FollowUpMapping{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
