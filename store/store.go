// Package store is the persistence layer for courses, students, enrollments
// and payments. It wraps an injected *gorm.DB; lookups that find nothing
// return gorm.ErrRecordNotFound for callers to translate.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
