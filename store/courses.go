package store

import "github.com/heyyguru/enrollment_backend/models"

func (s *Store) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Store) GetAllCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCoursesByClass returns the full catalog regardless of classLevel; every
// course currently suits every class.
func (s *Store) GetCoursesByClass(classLevel string) ([]models.Course, error) {
	return s.GetAllCourses()
}

func (s *Store) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}
