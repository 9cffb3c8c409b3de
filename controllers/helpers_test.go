package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"booking/constants"
	"booking/errors"
	"booking/models"
	"booking/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBookingRepo struct {
	bookings []models.Booking
	rooms    map[uint]*models.Room
	nextID   uint
}

func (f *fakeBookingRepo) FindByUserID(userID uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].UserID == userID {
			b := f.bookings[i]
			if room, ok := f.rooms[b.RoomID]; ok {
				b.Room = room
			}
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByID(id uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) CountByRoomID(roomID uint) (int64, error) {
	var count int64
	for i := range f.bookings {
		if f.bookings[i].RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) CreateInRoom(userID, roomID uint) (*models.Booking, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	count, _ := f.CountByRoomID(roomID)
	if count >= int64(room.Capacity) {
		return nil, errors.ErrRoomNotAvailable
	}
	f.nextID++
	booking := models.Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	f.bookings = append(f.bookings, booking)
	return &booking, nil
}

func (f *fakeBookingRepo) UpdateRoom(bookingID, roomID uint) error {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].RoomID = roomID
			return nil
		}
	}
	return errors.ErrBookingNotFound
}

type fakeHotelsRepo struct {
	hotels  []models.Hotel
	rooms   map[uint]*models.Room
	findErr error
}

func (f *fakeHotelsRepo) FindHotels() ([]models.Hotel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.hotels, nil
}

func (f *fakeHotelsRepo) FindHotelByID(id uint) (*models.Hotel, error) {
	for i := range f.hotels {
		if f.hotels[i].ID == id {
			return &f.hotels[i], nil
		}
	}
	return nil, nil
}

func (f *fakeHotelsRepo) FindRoomsByHotelID(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	for _, room := range f.rooms {
		if room.HotelID == hotelID {
			rooms = append(rooms, *room)
		}
	}
	return rooms, nil
}

func (f *fakeHotelsRepo) FindRoomByID(id uint) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	return room, nil
}

type fakeEnrollmentRepo struct {
	enrollment *models.Enrollment
}

func (f *fakeEnrollmentRepo) FindByUserID(userID uint) (*models.Enrollment, error) {
	if f.enrollment != nil && f.enrollment.UserID == userID {
		return f.enrollment, nil
	}
	return nil, nil
}

type fakeTicketRepo struct {
	ticket *models.Ticket
}

func (f *fakeTicketRepo) FindByEnrollmentID(enrollmentID uint) (*models.Ticket, error) {
	if f.ticket != nil && f.ticket.EnrollmentID == enrollmentID {
		return f.ticket, nil
	}
	return nil, nil
}

// testEnv dựng router với user 1 đã "đăng nhập" sẵn
type testEnv struct {
	router      *gin.Engine
	bookings    *fakeBookingRepo
	hotels      *fakeHotelsRepo
	enrollments *fakeEnrollmentRepo
	tickets     *fakeTicketRepo
}

func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	rooms := map[uint]*models.Room{
		10: {ID: 10, Name: "Phòng 101", Capacity: 3, HotelID: 1},
		11: {ID: 11, Name: "Phòng 102", Capacity: 1, HotelID: 1},
	}
	bookings := &fakeBookingRepo{rooms: rooms}
	hotels := &fakeHotelsRepo{
		hotels: []models.Hotel{
			{ID: 1, Name: "Driven Resort", Image: "https://example.com/resort.jpg"},
			{ID: 2, Name: "Palace Hotel", Image: "https://example.com/palace.jpg"},
		},
		rooms: rooms,
	}
	enrollments := &fakeEnrollmentRepo{enrollment: &models.Enrollment{ID: 5, UserID: 1}}
	tickets := &fakeTicketRepo{ticket: &models.Ticket{
		ID:           1,
		EnrollmentID: 5,
		Status:       constants.TicketStatusPaid,
		TicketType:   &models.TicketType{ID: 1, IncludesHotel: true},
	}}

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings:    bookings,
		Rooms:       hotels,
		Enrollments: enrollments,
		Tickets:     tickets,
	})
	hotelsService := services.NewHotelsService(services.HotelsServiceOptions{
		Hotels:      hotels,
		Enrollments: enrollments,
		Tickets:     tickets,
	})

	bookingController := NewBookingController(bookingService, nil)
	hotelsController := NewHotelsController(hotelsService)

	router := gin.New()
	auth := authAs(1)
	router.GET("/booking", auth, bookingController.GetBooking)
	router.POST("/booking", auth, bookingController.PostBooking)
	router.PUT("/booking/:bookingId", auth, bookingController.UpdateBooking)
	router.GET("/hotels", auth, hotelsController.GetHotels)
	router.GET("/hotels/:hotelId", auth, hotelsController.GetRooms)

	return &testEnv{
		router:      router,
		bookings:    bookings,
		hotels:      hotels,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

func (e *testEnv) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
