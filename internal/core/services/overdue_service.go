package services

import (
	"context"
	"log"

	"libraryhub/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// OverdueService periodically marks expired ACTIVE loans as OVERDUE
type OverdueService struct {
	loans LoanStore
	cron  *cron.Cron
	clock domain.Clock
}

// NewOverdueService creates a new overdue sweep service
func NewOverdueService(loans LoanStore) *OverdueService {
	return &OverdueService{
		loans: loans,
		cron:  cron.New(),
	}
}

// Start schedules the sweep with the given cron expression
func (s *OverdueService) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			log.Printf("❌ Overdue sweep error: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🚀 Overdue sweep scheduled [%s]", schedule)
	return nil
}

// Stop stops the scheduler
func (s *OverdueService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Overdue sweep stopped")
}

// RunOnce marks every ACTIVE loan past its return date as OVERDUE and
// returns how many loans were updated.
func (s *OverdueService) RunOnce(ctx context.Context) (int, error) {
	now := s.clock.Now()

	due, err := s.loans.ListActiveDueBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, loan := range due {
		if err := loan.MarkOverdue(now); err != nil {
			continue // raced with a return, skip
		}
		if err := s.loans.Update(ctx, loan); err != nil {
			log.Printf("❌ Failed to mark loan %s overdue: %v", loan.ID, err)
			continue
		}
		marked++
	}

	if marked > 0 {
		log.Printf("📅 Marked %d loans overdue", marked)
	}

	return marked, nil
}
