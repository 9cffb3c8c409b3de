package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "booking/errors"
	"booking/models"
)

// BookingRepository truy vấn bảng bookings
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// FindByUserID lấy booking hiện tại của user kèm thông tin phòng
func (r *BookingRepository) FindByUserID(userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Room").Where("user_id = ?", userID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CountByRoomID đếm số booking đang giữ chỗ trong phòng
func (r *BookingRepository) CountByRoomID(roomID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

// CreateInRoom tạo booking cho user trong phòng roomID.
// Khóa dòng phòng và kiểm tra lại sức chứa trong cùng một transaction
// để hai request tranh chỗ cuối cùng không cùng được chấp nhận.
func (r *BookingRepository) CreateInRoom(userID, roomID uint) (*models.Booking, error) {
	booking := &models.Booking{
		UserID: userID,
		RoomID: roomID,
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}

	var count int64
	if err := tx.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count >= int64(room.Capacity) {
		tx.Rollback()
		return nil, apperrors.ErrRoomNotAvailable
	}

	if err := tx.Create(booking).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateRoom chuyển booking sang phòng khác
func (r *BookingRepository) UpdateRoom(bookingID, roomID uint) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error
}
