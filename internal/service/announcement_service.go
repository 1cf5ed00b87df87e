package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
)

// ErrAnnouncementNotFound is returned when the referenced announcement does
// not exist.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementService handles announcements. Reads are open to both roles;
// writes are admin only (enforced at the router).
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	logger        *zap.Logger
}

// NewAnnouncementService creates the announcement service.
func NewAnnouncementService(announcements repository.AnnouncementRepository, logger *zap.Logger) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, logger: logger}
}

// Create publishes an announcement.
func (s *AnnouncementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	a := &model.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		IsImportant: req.IsImportant,
		Category:    req.Category,
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("announcement published",
		zap.String("id", a.AnnouncementID),
		zap.String("title", a.Title))
	return a, nil
}

// Get returns one announcement.
func (s *AnnouncementService) Get(ctx context.Context, id string) (*model.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns announcements, newest date first.
func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.List(ctx)
}

// Update applies a partial update.
func (s *AnnouncementService) Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*model.Announcement, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.IsImportant != nil {
		a.IsImportant = *req.IsImportant
	}
	if req.Category != nil {
		a.Category = *req.Category
	}

	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.announcements.Delete(ctx, id)
}
