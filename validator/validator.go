package validator

import (
	"regexp"

	"booking/errors"
)

// ValidateRoomID kiểm tra roomId trong body request
func ValidateRoomID(roomID uint) error {
	if roomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomId không được để trống", nil)
	}
	return nil
}

// ValidateBookingID kiểm tra bookingId trên path
func ValidateBookingID(bookingID uint) error {
	if bookingID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "bookingId không hợp lệ", nil)
	}
	return nil
}

// ValidateHotelID kiểm tra hotelId trên path
func ValidateHotelID(hotelID uint) error {
	if hotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotelId không hợp lệ", nil)
	}
	return nil
}

// ValidateCredentials kiểm tra thông tin đăng nhập
func ValidateCredentials(email, password string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
