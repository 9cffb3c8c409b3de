package models

import "time"

type Room struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   uint      `json:"hotelId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel     *Hotel    `json:"Hotel,omitempty" gorm:"foreignKey:HotelID"`
	Bookings  []Booking `json:"-" gorm:"foreignKey:RoomID"`
}
