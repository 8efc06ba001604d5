package store

import "github.com/heyyguru/enrollment_backend/models"

func (s *Store) CreateEnrollment(enrollment *models.Enrollment) error {
	return s.db.Create(enrollment).Error
}

func (s *Store) GetEnrollment(id string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("id = ?", id).First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *Store) UpdateEnrollmentStatus(id, status string) error {
	return s.db.Model(&models.Enrollment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
