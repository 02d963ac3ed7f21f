package services

import (
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/gorm"
)

// ReportService produces the branch dashboard counters.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// BranchSummary is the dashboard payload for one branch.
type BranchSummary struct {
	ActiveLoans       int64 `json:"active_loans"`
	PeopleAtRisk      int64 `json:"people_at_risk"`
	OpenTasks         int64 `json:"open_tasks"`
	InteractionsSince int64 `json:"interactions_since"`
}

// Summary counts active loan products, at-risk people, open tasks and
// interactions on or after the given date (inclusive string compare on the
// calendar date; pass "" to skip that counter).
func (s *ReportService) Summary(branch, since string) (*BranchSummary, error) {
	var summary BranchSummary

	if err := s.db.Model(&model.Product{}).
		Where("branch = ? AND product_type = ? AND status = ?", branch, model.ProductLoan, model.ProductActive).
		Count(&summary.ActiveLoans).Error; err != nil {
		log.Printf("[Summary] Error counting active loans for branch %s: %v", branch, err)
		return nil, err
	}

	if err := s.db.Model(&model.Person{}).
		Where("branch = ? AND risk_status = ?", branch, model.RiskAtRisk).
		Count(&summary.PeopleAtRisk).Error; err != nil {
		log.Printf("[Summary] Error counting at-risk people for branch %s: %v", branch, err)
		return nil, err
	}

	if err := s.db.Model(&model.Task{}).
		Where("branch = ? AND status = ?", branch, model.TaskOpen).
		Count(&summary.OpenTasks).Error; err != nil {
		log.Printf("[Summary] Error counting open tasks for branch %s: %v", branch, err)
		return nil, err
	}

	if since != "" {
		if err := s.db.Model(&model.Interaction{}).
			Where("branch = ? AND interaction_date >= ?", branch, since).
			Count(&summary.InteractionsSince).Error; err != nil {
			log.Printf("[Summary] Error counting interactions for branch %s: %v", branch, err)
			return nil, err
		}
	}

	return &summary, nil
}
