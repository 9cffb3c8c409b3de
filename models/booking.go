package models

import "time"

type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	RoomID    uint      `json:"roomId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Room      *Room     `json:"Room,omitempty" gorm:"foreignKey:RoomID"`
}
