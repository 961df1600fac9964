package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStaleStatus is returned when a row no longer holds the status it was read with
var ErrStaleStatus = errors.New("status changed since it was read")

// setStatusFrom updates the row only while it still holds status from.
func setStatusFrom(db *gorm.DB, model interface{}, id uint, from string, values map[string]interface{}) error {
	res := db.Model(model).Where("id = ? AND status = ?", id, from).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrStaleStatus
	}
	return nil
}
