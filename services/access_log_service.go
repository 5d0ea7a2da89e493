package services

import (
	"context"
	"fmt"
	"time"

	"legal_archive_go/models"

	"gorm.io/gorm"
)

// AccessContext carries the request metadata recorded with each access event
type AccessContext struct {
	UserName  string
	UserRole  string
	IPAddress string
	UserAgent string
}

// AccessStats summarizes the access history of one file
type AccessStats struct {
	TotalAccesses    int            `json:"total_accesses"`
	UniqueUsers      int            `json:"unique_users"`
	LastAccessed     *time.Time     `json:"last_accessed,omitempty"`
	MostFrequentUser string         `json:"most_frequent_user,omitempty"`
	AccessTypes      map[string]int `json:"access_types"`
	UserAccessCounts map[string]int `json:"user_access_counts"`
}

// AccessLogService maintains the append-only file access log
type AccessLogService struct {
	db *gorm.DB
}

// NewAccessLogService creates a new access log service instance
func NewAccessLogService(db *gorm.DB) *AccessLogService {
	return &AccessLogService{db: db}
}

// RecordAccess appends an access event for the file and bumps its
// last-accessed timestamp. The event row is never updated afterwards.
func (s *AccessLogService) RecordAccess(ctx context.Context, fileID, accessType string, actor AccessContext) (*models.AccessEvent, error) {
	if actor.UserName == "" {
		actor.UserName = "Anonymous User"
	}
	if actor.UserRole == "" {
		actor.UserRole = "Visitor"
	}

	now := time.Now()
	event := &models.AccessEvent{
		FileID:          fileID,
		UserName:        actor.UserName,
		UserRole:        actor.UserRole,
		AccessType:      accessType,
		AccessTimestamp: now,
		IPAddress:       actor.IPAddress,
		UserAgent:       actor.UserAgent,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Model(&models.PhysicalFile{}).
			Where("id = ?", fileID).
			Update("last_accessed", now).Error
	})
	if err != nil {
		return nil, fmt.Errorf("recording file access: %w", err)
	}
	return event, nil
}

// FileAccessHistory returns all access events for a file, newest first
func (s *AccessLogService) FileAccessHistory(ctx context.Context, fileID string) ([]models.AccessEvent, error) {
	var events []models.AccessEvent
	err := s.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("access_timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("loading access history: %w", err)
	}
	return events, nil
}

// RecentAccesses returns the latest access events across all files
func (s *AccessLogService) RecentAccesses(ctx context.Context, limit int) ([]models.AccessEvent, error) {
	if limit <= 0 {
		limit = 10
	}
	var events []models.AccessEvent
	err := s.db.WithContext(ctx).
		Order("access_timestamp DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("loading recent accesses: %w", err)
	}
	return events, nil
}

// FileAccessStats aggregates access statistics for one file
func (s *AccessLogService) FileAccessStats(ctx context.Context, fileID string) (*AccessStats, error) {
	events, err := s.FileAccessHistory(ctx, fileID)
	if err != nil {
		return nil, err
	}

	stats := &AccessStats{
		AccessTypes:      map[string]int{},
		UserAccessCounts: map[string]int{},
	}
	if len(events) == 0 {
		return stats, nil
	}

	stats.TotalAccesses = len(events)
	var last time.Time
	for _, e := range events {
		stats.AccessTypes[e.AccessType]++
		stats.UserAccessCounts[e.UserName]++
		if e.AccessTimestamp.After(last) {
			last = e.AccessTimestamp
		}
	}
	stats.LastAccessed = &last
	stats.UniqueUsers = len(stats.UserAccessCounts)

	best := 0
	for user, count := range stats.UserAccessCounts {
		// Alphabetical tie-break keeps the stat deterministic
		if count > best || (count == best && user < stats.MostFrequentUser) {
			best = count
			stats.MostFrequentUser = user
		}
	}

	return stats, nil
}
