package store

import "github.com/heyyguru/enrollment_backend/models"

func (s *Store) CreateStudent(student *models.Student) error {
	return s.db.Create(student).Error
}

func (s *Store) GetStudent(id string) (*models.Student, error) {
	var student models.Student
	if err := s.db.Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}
