package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"booking/errors"
	"booking/models"
	"booking/response"
	"booking/services"
	"booking/validator"
)

type HotelsController struct {
	service *services.HotelsService
}

func NewHotelsController(service *services.HotelsService) HotelsController {
	return HotelsController{service: service}
}

func (h HotelsController) GetHotels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	hotels, err := h.service.GetHotels(userID)
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.ErrCodeNotFound:
			response.NotFound(c)
		case errors.ErrCodeBadRequest:
			response.BadRequest(c, err.Error())
		case errors.ErrCodePaymentRequired:
			response.PaymentRequired(c)
		default:
			response.NoContent(c)
		}
		return
	}

	if name := c.Query("name"); name != "" {
		hotels = searchHotelsByName(hotels, name)
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}

	c.JSON(http.StatusOK, hotels)
}

func (h HotelsController) GetRooms(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	hotelID, err := strconv.Atoi(c.Param("hotelId"))
	if err != nil || hotelID < 0 {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}
	if err := validator.ValidateHotelID(uint(hotelID)); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rooms, err := h.service.GetRoomsByHotelID(uint(hotelID), userID)
	if err != nil {
		// Mọi lỗi từ service đều trả về 404 trên route này
		response.NotFound(c)
		return
	}

	if rooms == nil {
		rooms = []models.Room{}
	}

	c.JSON(http.StatusOK, rooms)
}

// normalizeName bỏ dấu và chuyển chữ thường để so khớp tên
func normalizeName(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

// searchHotelsByName lọc danh sách khách sạn theo tên gần đúng
func searchHotelsByName(hotels []models.Hotel, query string) []models.Hotel {
	q := normalizeName(query)

	names := make([]string, len(hotels))
	for i, hotel := range hotels {
		names[i] = normalizeName(hotel.Name)
	}
	cm := closestmatch.New(names, []int{2, 3})
	best := cm.Closest(q)

	var results []models.Hotel
	for i, hotel := range hotels {
		name := names[i]
		if strings.Contains(name, q) || name == best || nameDistance(name, q) <= 2 {
			results = append(results, hotel)
		}
	}
	return results
}

func nameDistance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}
