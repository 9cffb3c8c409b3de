package jobs

import (
	"errors"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"booking/utils"
)

// Session quá 7 ngày bị coi là hết hạn
const sessionMaxAge = 7 * 24 * time.Hour

// SessionPurger định nghĩa interface cho việc dọn session hết hạn
type SessionPurger interface {
	DeleteExpired(maxAge time.Duration) (int64, error)
}

var sessionPurger SessionPurger

// SetSessionPurger thiết lập implementation cho SessionPurger
func SetSessionPurger(purger SessionPurger) {
	sessionPurger = purger
}

// PurgeExpiredSessions xóa các session tạo quá maxAge, trả về số session đã xóa
func PurgeExpiredSessions(purger SessionPurger, maxAge time.Duration) (int64, error) {
	if purger == nil {
		return 0, errors.New("SessionPurger chưa được thiết lập")
	}
	return purger.DeleteExpired(maxAge)
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		deleted, err := PurgeExpiredSessions(sessionPurger, sessionMaxAge)
		if err != nil {
			utils.LogError("Lỗi khi dọn session hết hạn: %v", err)
			return
		}
		utils.LogInfo("Đã dọn %d session hết hạn lúc %v", deleted, time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
