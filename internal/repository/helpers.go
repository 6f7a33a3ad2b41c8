package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateAll writes every column of value except the primary key and the
// creation timestamp, including zero values.
func updateAll(db *gorm.DB, value interface{}, id uuid.UUID, omit ...string) error {
	omit = append(omit, "id", "created_at")
	result := db.Model(value).Where("id = ?", id).Select("*").Omit(omit...).Updates(value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteReturning loads the row into dest and deletes it. It must run
// inside a transaction.
func deleteReturning(tx *gorm.DB, dest interface{}, id uuid.UUID) error {
	if err := tx.Where("id = ?", id).First(dest).Error; err != nil {
		return err
	}
	result := tx.Where("id = ?", id).Delete(dest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
