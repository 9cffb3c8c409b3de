package repository

import (
	"errors"

	"gorm.io/gorm"

	"booking/models"
)

// HotelsRepository truy vấn bảng hotels và rooms
type HotelsRepository struct {
	db *gorm.DB
}

func NewHotelsRepository(db *gorm.DB) *HotelsRepository {
	return &HotelsRepository{db: db}
}

func (r *HotelsRepository) FindHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelsRepository) FindHotelByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.First(&hotel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// FindRoomsByHotelID lấy danh sách phòng của hotel kèm thông tin hotel
func (r *HotelsRepository) FindRoomsByHotelID(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Preload("Hotel").Where("hotel_id = ?", hotelID).Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *HotelsRepository) FindRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}
