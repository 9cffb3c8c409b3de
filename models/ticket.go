package models

import "time"

type Ticket struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	TicketTypeID uint        `json:"ticketTypeId"`
	EnrollmentID uint        `json:"enrollmentId" gorm:"index"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	TicketType   *TicketType `json:"TicketType,omitempty" gorm:"foreignKey:TicketTypeID"`
}

type TicketType struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
