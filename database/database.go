package database

import (
	"fmt"
	"log"

	"github.com/heyyguru/enrollment_backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Course{},
		&models.Student{},
		&models.Enrollment{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

// SeedCourses inserts the fixed catalog if no course exists yet. The
// check-then-insert is not race-safe across concurrent first starts; the
// unique index on course type makes a second insert fail instead of
// duplicating rows.
func SeedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing courses: %w", err)
	}
	if count > 0 {
		log.Println("Courses already seeded.")
		return nil
	}

	for _, course := range defaultCourses() {
		course := course
		if err := db.Create(&course).Error; err != nil {
			return fmt.Errorf("failed to seed course %q: %w", course.Type, err)
		}
	}

	log.Println("✅ Default courses seeded successfully")
	return nil
}

func defaultCourses() []models.Course {
	return []models.Course{
		{
			Name:     "Aarambh Course",
			Tagline:  "Start your learning journey with us!",
			Duration: "1 Week",
			Mode:     "Live Online Classes",
			Price:    9,
			Subjects: []string{"Math", "Science", "English", "Vedic Math", "Public Speaking"},
			Features: []string{
				"6 Days Live Classes",
				"Interactive & Engaging Lessons",
				"Small Batch Sizes for Personalized Attention",
				"Doubt Clearing Sessions During or After Class",
				"Fun Animated Videos & Learning Materials",
			},
			Benefits: []string{
				"Low-cost trial to experience HeyyGuru's teaching",
				"Interactive learning experience",
				"Build confidence in core subjects",
				"Personalized attention in small batches",
			},
			Type: models.CourseTypeAarambh,
		},
		{
			Name:     "Atal Course",
			Tagline:  "Padhai ka Agla Kadam, Success ki Guarantee",
			Duration: "1 Year (Academic Session)",
			Mode:     "Live Online Classes",
			Price:    4250,
			Subjects: []string{"Mathematics", "Science", "English", "Social Studies"},
			Features: []string{
				"1–2 Weekly Mentor Doubt Sessions",
				"Monthly Tests",
				"High-Quality Content",
				"Flexible Learning",
			},
			Benefits: []string{
				"Strengthen core subjects",
				"Improve grades with regular assessments",
				"Interactive & engaging content",
				"Affordable yearly plan",
			},
			Type: models.CourseTypeAtal,
		},
		{
			Name:     "Atal Course (Premium Plus)",
			Tagline:  "Complete academic + skill development with personal guidance",
			Duration: "1 Year",
			Mode:     "Live Online Classes",
			Price:    9999,
			Subjects: []string{"Mathematics", "Science", "English", "Social Studies", "Vedic Mathematics", "Public Speaking"},
			Features: []string{
				"Daily 1-on-1 Mentor Sessions",
				"Bi-Weekly Minor Tests",
				"Monthly Major Tests",
				"Monthly PTMs",
				"Skill Development Sessions",
				"Counseling Sessions",
				"Competitive Exam Preparation",
				"Extra Learning Resources",
			},
			Benefits: []string{
				"Strong academics + life skills",
				"Daily mentor support for faster learning",
				"Preparedness for competitive exams",
				"Active parent involvement",
			},
			Type: models.CourseTypeAtalPremium,
		},
	}
}
