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

// ErrScheduleItemNotFound is returned when the referenced schedule item
// does not exist.
var ErrScheduleItemNotFound = errors.New("schedule item not found")

// ScheduleService handles the master schedule. Items are global; students
// see the subset matching their enrolled subject codes (see StatsService).
type ScheduleService struct {
	items  repository.ScheduleItemRepository
	logger *zap.Logger
}

// NewScheduleService creates the schedule service.
func NewScheduleService(items repository.ScheduleItemRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{items: items, logger: logger}
}

// Create adds a schedule item.
func (s *ScheduleService) Create(ctx context.Context, req *dto.CreateScheduleItemRequest) (*model.ScheduleItem, error) {
	item := &model.ScheduleItem{
		SubjectCode: req.SubjectCode,
		SubjectName: req.SubjectName,
		Day:         req.Day,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		Room:        req.Room,
		Instructor:  req.Instructor,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("schedule item created",
		zap.String("id", item.ScheduleItemID),
		zap.String("subject", item.SubjectCode))
	return item, nil
}

// Get returns one schedule item.
func (s *ScheduleService) Get(ctx context.Context, id string) (*model.ScheduleItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// List returns the full master schedule.
func (s *ScheduleService) List(ctx context.Context) ([]model.ScheduleItem, error) {
	return s.items.List(ctx)
}

// Update applies a partial update.
func (s *ScheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleItemRequest) (*model.ScheduleItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SubjectCode != nil {
		item.SubjectCode = *req.SubjectCode
	}
	if req.SubjectName != nil {
		item.SubjectName = *req.SubjectName
	}
	if req.Day != nil {
		item.Day = *req.Day
	}
	if req.TimeStart != nil {
		item.TimeStart = *req.TimeStart
	}
	if req.TimeEnd != nil {
		item.TimeEnd = *req.TimeEnd
	}
	if req.Room != nil {
		item.Room = *req.Room
	}
	if req.Instructor != nil {
		item.Instructor = *req.Instructor
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a schedule item.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}
