package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"booking/errors"
	"booking/response"
	"booking/services"
	"booking/validator"
)

type BookingController struct {
	service *services.BookingService
	melody  *melody.Melody
}

func NewBookingController(service *services.BookingService, m *melody.Melody) BookingController {
	return BookingController{
		service: service,
		melody:  m,
	}
}

// currentUserID lấy userID do AuthMiddleware gán vào context
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

func (b BookingController) GetBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	booking, err := b.service.GetBookingByUserID(userID)
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.ErrCodeNotFound:
			response.NotFound(c)
		default:
			response.ServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (b BookingController) PostBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req struct {
		RoomID uint `json:"roomId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}
	if err := validator.ValidateRoomID(req.RoomID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookingID, err := b.service.PostBooking(userID, req.RoomID)
	if err != nil {
		b.handleBookingError(c, err)
		return
	}

	if b.melody != nil {
		b.melody.Broadcast([]byte(fmt.Sprintf("Booking mới #%d cho phòng %d", bookingID, req.RoomID)))
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID})
}

func (b BookingController) UpdateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingIDParam, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil || bookingIDParam < 0 {
		response.BadRequest(c, "bookingId không hợp lệ")
		return
	}
	if err := validator.ValidateBookingID(uint(bookingIDParam)); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req struct {
		RoomID uint `json:"roomId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}
	if err := validator.ValidateRoomID(req.RoomID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookingID, err := b.service.UpdateBooking(userID, req.RoomID, uint(bookingIDParam))
	if err != nil {
		b.handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID})
}

func (b BookingController) handleBookingError(c *gin.Context, err error) {
	switch errors.CodeOf(err) {
	case errors.ErrCodeNotFound:
		response.NotFound(c)
	case errors.ErrCodeBadRequest:
		response.BadRequest(c, err.Error())
	case errors.ErrCodeForbidden:
		response.Forbidden(c)
	default:
		// Lỗi nghiệp vụ không phân loại được trả về 403
		response.Forbidden(c)
	}
}
