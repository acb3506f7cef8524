// pkg/cron/daily_digest.go

package cron

import (
	"log"
	"sync"
	"time"

	"dazuai_backend/internal/model"
	"dazuai_backend/pkg/database"
	"dazuai_backend/pkg/email"

	"github.com/robfig/cron/v3"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

func InitDailyDigestCron() {
	c := cron.New()

	// Runs every day at 19:00
	_, err := c.AddFunc("0 19 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Daily digest already sent today, skipping...")
			return
		}

		sendDailyDigest()
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize daily digest cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Daily digest cron initialized successfully")
}

func sendDailyDigest() {
	if email.GlobalEmailService == nil {
		log.Printf("Email service is not configured, skipping daily digest")
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var registrationCount int64
	if err := database.GetDB().Model(&model.Registration{}).
		Where("created_at >= ?", startOfDay).
		Count(&registrationCount).Error; err != nil {
		log.Printf("Error counting registrations for digest: %v", err)
		return
	}

	var subscriberCount int64
	if err := database.GetDB().Model(&model.Subscriber{}).
		Where("created_at >= ?", startOfDay).
		Count(&subscriberCount).Error; err != nil {
		log.Printf("Error counting subscribers for digest: %v", err)
		return
	}

	if registrationCount == 0 && subscriberCount == 0 {
		log.Printf("No new activity today, skipping daily digest")
		return
	}

	err := email.GlobalEmailService.SendDailyDigest(now, registrationCount, subscriberCount)
	if err != nil {
		log.Printf("Error sending daily digest: %v", err)
	} else {
		log.Printf("Daily digest sent (%d registrations, %d subscribers)", registrationCount, subscriberCount)
	}
}
