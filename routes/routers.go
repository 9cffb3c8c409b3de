package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"booking/controllers"
	middlewares "booking/middleware"
	"booking/repository"
	"booking/services"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())

	bookingRepo := repository.NewBookingRepository(db)
	hotelsRepo := repository.NewHotelsRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings:    bookingRepo,
		Rooms:       hotelsRepo,
		Enrollments: enrollmentRepo,
		Tickets:     ticketRepo,
	})
	hotelsService := services.NewHotelsService(services.HotelsServiceOptions{
		Hotels:      hotelsRepo,
		Enrollments: enrollmentRepo,
		Tickets:     ticketRepo,
		Redis:       redisCli,
	})
	authService := services.NewAuthService(services.AuthServiceOptions{
		Users:    userRepo,
		Sessions: sessionRepo,
	})

	bookingController := controllers.NewBookingController(bookingService, m)
	hotelsController := controllers.NewHotelsController(hotelsService)
	authController := controllers.NewAuthController(authService)

	auth := middlewares.AuthMiddleware(sessionRepo)

	router.POST("/auth/register", authController.Register)
	router.POST("/auth/login", authController.Login)
	router.DELETE("/auth/logout", auth, authController.Logout)
	router.POST("/auth/google", authController.AuthGoogle)

	router.GET("/booking", auth, bookingController.GetBooking)
	router.POST("/booking", auth, bookingController.PostBooking)
	router.PUT("/booking/:bookingId", auth, bookingController.UpdateBooking)

	router.GET("/hotels", auth, hotelsController.GetHotels)
	router.GET("/hotels/:hotelId", auth, hotelsController.GetRooms)

	router.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})
}
