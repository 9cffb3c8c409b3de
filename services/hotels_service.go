package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"booking/constants"
	"booking/errors"
	"booking/models"
	"booking/services/logger"
)

var hotelsCacheKey = "hotels:all"

// HotelsRepo định nghĩa các truy vấn hotel/room mà service cần
type HotelsRepo interface {
	FindHotels() ([]models.Hotel, error)
	FindHotelByID(id uint) (*models.Hotel, error)
	FindRoomsByHotelID(hotelID uint) ([]models.Room, error)
}

// HotelsService xử lý nghiệp vụ tra cứu khách sạn
type HotelsService struct {
	hotels      HotelsRepo
	enrollments EnrollmentRepo
	tickets     TicketRepo
	redis       *redis.Client
	logger      logger.Logger
}

type HotelsServiceOptions struct {
	Hotels      HotelsRepo
	Enrollments EnrollmentRepo
	Tickets     TicketRepo
	Redis       *redis.Client
	Logger      logger.Logger
}

func NewHotelsService(opts HotelsServiceOptions) *HotelsService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HotelsService{
		hotels:      opts.Hotels,
		enrollments: opts.Enrollments,
		tickets:     opts.Tickets,
		redis:       opts.Redis,
		logger:      l,
	}
}

// checkTicket kiểm tra điều kiện xem khách sạn của user:
// có enrollment, có vé, loại vé bao gồm khách sạn, vé đã thanh toán
func (s *HotelsService) checkTicket(userID uint) error {
	enrollment, err := s.enrollments.FindByUserID(userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return errors.NotFoundError("User chưa có enrollment")
	}

	ticket, err := s.tickets.FindByEnrollmentID(enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return errors.NotFoundError("User chưa có vé")
	}
	if ticket.TicketType == nil || !ticket.TicketType.IncludesHotel {
		return errors.BadRequestError("Loại vé không bao gồm khách sạn")
	}
	if ticket.Status != constants.TicketStatusPaid {
		return errors.PaymentRequiredError("Vé chưa được thanh toán")
	}
	return nil
}

// GetHotels trả về tất cả khách sạn cho user đủ điều kiện
func (s *HotelsService) GetHotels(userID uint) ([]models.Hotel, error) {
	if err := s.checkTicket(userID); err != nil {
		return nil, err
	}

	var hotels []models.Hotel

	// Danh sách khách sạn ít thay đổi nên được cache trong Redis
	if s.redis != nil {
		if err := GetFromRedis(context.Background(), s.redis, hotelsCacheKey, &hotels); err == nil && len(hotels) > 0 {
			return hotels, nil
		}
	}

	hotels, err := s.hotels.FindHotels()
	if err != nil {
		return nil, err
	}

	if s.redis != nil && len(hotels) > 0 {
		if err := SetToRedis(context.Background(), s.redis, hotelsCacheKey, hotels, 10*time.Minute); err != nil {
			s.logger.Error("Lỗi khi lưu danh sách khách sạn vào Redis: %v", err)
		}
	}
	return hotels, nil
}

// GetRoomsByHotelID trả về danh sách phòng của một khách sạn kèm thông tin khách sạn
func (s *HotelsService) GetRoomsByHotelID(hotelID, userID uint) ([]models.Room, error) {
	if err := s.checkTicket(userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.FindHotelByID(hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, errors.NotFoundError("Không tìm thấy khách sạn")
	}

	rooms, err := s.hotels.FindRoomsByHotelID(hotelID)
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
