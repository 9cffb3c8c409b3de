package repository

import (
	"errors"

	"gorm.io/gorm"

	"booking/models"
)

// TicketRepository truy vấn bảng tickets (chỉ đọc)
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindByEnrollmentID lấy vé của enrollment kèm loại vé
func (r *TicketRepository) FindByEnrollmentID(enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("TicketType").Where("enrollment_id = ?", enrollmentID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
