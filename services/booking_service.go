package services

import (
	stderrors "errors"

	"booking/constants"
	"booking/errors"
	"booking/models"
	"booking/services/logger"
)

// BookingRepo định nghĩa các truy vấn booking mà service cần
type BookingRepo interface {
	FindByUserID(userID uint) (*models.Booking, error)
	FindByID(id uint) (*models.Booking, error)
	CountByRoomID(roomID uint) (int64, error)
	CreateInRoom(userID, roomID uint) (*models.Booking, error)
	UpdateRoom(bookingID, roomID uint) error
}

// EnrollmentRepo định nghĩa truy vấn enrollment (chỉ đọc)
type EnrollmentRepo interface {
	FindByUserID(userID uint) (*models.Enrollment, error)
}

// TicketRepo định nghĩa truy vấn vé (chỉ đọc)
type TicketRepo interface {
	FindByEnrollmentID(enrollmentID uint) (*models.Ticket, error)
}

// RoomRepo định nghĩa truy vấn phòng mà booking service cần
type RoomRepo interface {
	FindRoomByID(id uint) (*models.Room, error)
}

// BookingService xử lý nghiệp vụ đặt phòng
type BookingService struct {
	bookings    BookingRepo
	rooms       RoomRepo
	enrollments EnrollmentRepo
	tickets     TicketRepo
	logger      logger.Logger
}

type BookingServiceOptions struct {
	Bookings    BookingRepo
	Rooms       RoomRepo
	Enrollments EnrollmentRepo
	Tickets     TicketRepo
	Logger      logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		bookings:    opts.Bookings,
		rooms:       opts.Rooms,
		enrollments: opts.Enrollments,
		tickets:     opts.Tickets,
		logger:      l,
	}
}

// GetBookingByUserID lấy booking hiện tại của user kèm thông tin phòng
func (s *BookingService) GetBookingByUserID(userID uint) (*models.Booking, error) {
	enrollment, err := s.enrollments.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, errors.NotFoundError("User chưa có enrollment")
	}

	booking, err := s.bookings.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.NotFoundError("User chưa có booking")
	}
	return booking, nil
}

// validateBookingProcess kiểm tra điều kiện đặt phòng, thứ tự các bước cố định:
// enrollment -> vé -> loại vé -> trạng thái vé -> phòng tồn tại -> còn chỗ
func (s *BookingService) validateBookingProcess(userID, roomID uint) error {
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
		return errors.ForbiddenError("User chưa có vé")
	}
	if ticket.TicketType == nil || !ticket.TicketType.IncludesHotel {
		return errors.ForbiddenError("Loại vé không bao gồm khách sạn")
	}
	if ticket.Status != constants.TicketStatusPaid {
		return errors.ForbiddenError("Vé chưa được thanh toán")
	}

	room, err := s.rooms.FindRoomByID(roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return errors.NotFoundError("Không tìm thấy phòng")
	}

	count, err := s.bookings.CountByRoomID(roomID)
	if err != nil {
		return err
	}
	if count >= int64(room.Capacity) {
		return errors.ForbiddenError("Phòng đã hết chỗ")
	}
	return nil
}

// PostBooking đặt phòng cho user, trả về id booking mới
func (s *BookingService) PostBooking(userID, roomID uint) (uint, error) {
	if err := s.validateBookingProcess(userID, roomID); err != nil {
		return 0, err
	}

	booking, err := s.bookings.CreateInRoom(userID, roomID)
	if err != nil {
		// Sức chứa được kiểm tra lại trong transaction, request thua cuộc nhận lỗi hết chỗ
		if stderrors.Is(err, errors.ErrRoomNotAvailable) {
			return 0, errors.ForbiddenError("Phòng đã hết chỗ")
		}
		if stderrors.Is(err, errors.ErrRoomNotFound) {
			return 0, errors.NotFoundError("Không tìm thấy phòng")
		}
		return 0, err
	}

	s.logger.Info("Tạo booking %d cho user %d, phòng %d", booking.ID, userID, roomID)
	return booking.ID, nil
}

// UpdateBooking chuyển booking của user sang phòng roomID.
// Booking được xác định theo bookingId trên path: không tồn tại trả về
// NotFound, thuộc user khác trả về Forbidden.
func (s *BookingService) UpdateBooking(userID, roomID, bookingID uint) (uint, error) {
	if err := s.validateBookingProcess(userID, roomID); err != nil {
		return 0, err
	}

	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		return 0, err
	}
	if booking == nil {
		return 0, errors.NotFoundError("Không tìm thấy booking")
	}
	if booking.UserID != userID {
		return 0, errors.ForbiddenError("Booking thuộc user khác")
	}

	if err := s.bookings.UpdateRoom(booking.ID, roomID); err != nil {
		return 0, err
	}

	s.logger.Info("Chuyển booking %d của user %d sang phòng %d", booking.ID, userID, roomID)
	return booking.ID, nil
}
