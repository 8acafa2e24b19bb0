package repository

import (
	"errors"

	"gorm.io/gorm"
)

// findOne runs the query and reports absence explicitly instead of
// leaking gorm.ErrRecordNotFound to callers.
func findOne[T any](query *gorm.DB, dest *T) (bool, error) {
	if err := query.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
