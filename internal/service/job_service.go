package service

import (
	"fmt"
	"log"
	"time"

	"hallmate/internal/repository"
)

type JobService struct {
	Repo *repository.TokenRepository
}

func NewJobService(repo *repository.TokenRepository) *JobService {
	return &JobService{Repo: repo}
}

// PurgeExpiredResetTokens removes reset tokens that are past their expiry or
// already consumed. Runs on a cron schedule.
func (s *JobService) PurgeExpiredResetTokens() error {
	deleted, err := s.Repo.DeleteExpired(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to purge reset tokens: %w", err)
	}
	if deleted > 0 {
		log.Printf("Cron Job: Purged %d expired or used reset tokens", deleted)
	}
	return nil
}
