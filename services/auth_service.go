package services

import (
	"context"
	"os"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"booking/errors"
	"booking/models"
	"booking/services/logger"
)

const tokenExpiryMinutes = 7 * 24 * 60

// UserRepo định nghĩa truy vấn user mà auth service cần
type UserRepo interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
}

// SessionRepo định nghĩa truy vấn session mà auth service cần
type SessionRepo interface {
	Create(session *models.Session) error
	DeleteByToken(token string) error
}

// AuthService xử lý đăng ký, đăng nhập và phiên làm việc
type AuthService struct {
	users    UserRepo
	sessions SessionRepo
	logger   logger.Logger
}

type AuthServiceOptions struct {
	Users    UserRepo
	Sessions SessionRepo
	Logger   logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{
		users:    opts.Users,
		sessions: opts.Sessions,
		logger:   l,
	}
}

// HashPassword mã hóa mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Register tạo user mới với mật khẩu đã mã hóa
func (s *AuthService) Register(email, password string) (*models.User, error) {
	user := &models.User{
		Email:    email,
		Password: password,
	}
	if err := user.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Email hoặc mật khẩu không hợp lệ", err)
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "Email đã được sử dụng", nil)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.logger.Info("Tạo user mới %d", user.ID)
	return user, nil
}

// Login kiểm tra thông tin đăng nhập, tạo token và lưu session
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.NewAppError(errors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
	}

	token, err := s.createSession(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout xóa session của token
func (s *AuthService) Logout(token string) error {
	return s.sessions.DeleteByToken(token)
}

// GoogleLogin xác minh idToken từ Google, tự tạo tài khoản nếu chưa có
func (s *AuthService) GoogleLogin(tokenID string) (*models.User, string, error) {
	payload, err := verifyGoogleIDToken(tokenID)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không xác minh được token Google", err)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidEmail, "Email chưa được xác thực", nil)
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		// Tài khoản Google không có mật khẩu dùng được, sinh hash từ chuỗi ngẫu nhiên phía Google
		hashed, err := HashPassword(payload.Subject + email)
		if err != nil {
			return nil, "", err
		}
		user = &models.User{Email: email, Password: hashed}
		if err := s.users.Create(user); err != nil {
			return nil, "", err
		}
		s.logger.Info("Tạo user Google mới %d", user.ID)
	}

	token, err := s.createSession(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) createSession(user *models.User) (string, error) {
	token, err := GenerateToken(UserInfo{UserId: user.ID}, tokenExpiryMinutes)
	if err != nil {
		return "", err
	}
	session := &models.Session{
		UserID: user.ID,
		Token:  token,
	}
	if err := s.sessions.Create(session); err != nil {
		return "", err
	}
	return token, nil
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}
