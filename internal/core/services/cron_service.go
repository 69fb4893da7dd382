package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService schedules the daily operations digest. It is read-only: the
// digest is computed and logged for the morning shift, nothing is mutated.
type CronService struct {
	cron  *cron.Cron
	stats *StatisticsService
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:  cron.New(),
		stats: NewStatisticsService(db),
	}
}

// Start registers the schedule and launches the cron runner.
// The digest fires every day at 08:30, before the branches open.
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.runDailyDigest)
	if err != nil {
		log.Printf("❌ Failed to schedule daily digest: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started (daily digest at 08:30)")
}

// Stop halts the cron runner
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) runDailyDigest() {
	digest, err := s.stats.GetOperationsDigest(context.Background())
	if err != nil {
		log.Printf("❌ Daily digest failed: %v", err)
		return
	}

	log.Printf("📋 Operations digest %s: visas pending=%d bags pending=%d balloons=%d transfers=%d guide visits=%d trips starting=%d",
		digest.Date,
		digest.PendingVisas,
		digest.BagsPendingEntry,
		digest.BalloonsToday,
		digest.TransfersToday,
		digest.GuideVisitsToday,
		digest.TripsStartingToday,
	)
}
