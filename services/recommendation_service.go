package services

import (
	"context"
	"errors"
	"fmt"

	"legal_archive_go/models"

	"gorm.io/gorm"
)

// ErrClientNotFound is returned when a client overview is requested for an
// unknown client ID
var ErrClientNotFound = errors.New("client not found")

// PaymentSummary aggregates a client's payments by status
type PaymentSummary struct {
	TotalPaid      float64          `json:"total_paid"`
	TotalPending   float64          `json:"total_pending"`
	TotalOverdue   float64          `json:"total_overdue"`
	RecentPayments []models.Payment `json:"recent_payments"`
}

// ClientOverview bundles everything the client detail view renders
type ClientOverview struct {
	Client         models.Client         `json:"client"`
	ActiveCases    []models.Case         `json:"active_cases"`
	AllCases       []models.Case         `json:"all_cases"`
	PaymentSummary PaymentSummary        `json:"payment_summary"`
	FileCount      int                   `json:"file_count"`
	RecentFiles    []models.PhysicalFile `json:"recent_files"`
}

// RecommendationService aggregates related records for detail views
type RecommendationService struct {
	db *gorm.DB
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// ClientOverview loads a client together with their cases, payment totals
// and recently accessed files
func (s *RecommendationService) ClientOverview(ctx context.Context, clientID string) (*ClientOverview, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("loading client: %w", err)
	}

	overview := &ClientOverview{Client: client}

	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&overview.AllCases).Error; err != nil {
		return nil, fmt.Errorf("loading client cases: %w", err)
	}
	for _, cs := range overview.AllCases {
		if cs.Status == models.CaseStatusOpen {
			overview.ActiveCases = append(overview.ActiveCases, cs)
		}
	}

	var payments []models.Payment
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("loading client payments: %w", err)
	}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusPaid:
			overview.PaymentSummary.TotalPaid += p.Amount
		case models.PaymentStatusPending:
			overview.PaymentSummary.TotalPending += p.Amount
		case models.PaymentStatusOverdue:
			overview.PaymentSummary.TotalOverdue += p.Amount
		}
	}
	if len(payments) > 5 {
		payments = payments[:5]
	}
	overview.PaymentSummary.RecentPayments = payments

	var files []models.PhysicalFile
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("last_accessed DESC").
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("loading client files: %w", err)
	}
	overview.FileCount = len(files)
	if len(files) > 5 {
		files = files[:5]
	}
	overview.RecentFiles = files

	return overview, nil
}
