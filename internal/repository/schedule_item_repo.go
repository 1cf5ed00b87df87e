package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-portal/backend/internal/model"
)

// ScheduleItemRepository is the schedule item data access interface.
type ScheduleItemRepository interface {
	Create(ctx context.Context, item *model.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*model.ScheduleItem, error)
	List(ctx context.Context) ([]model.ScheduleItem, error)
	Update(ctx context.Context, item *model.ScheduleItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type scheduleItemRepo struct {
	db *gorm.DB
}

// NewScheduleItemRepo creates the GORM-backed ScheduleItemRepository.
func NewScheduleItemRepo(db *gorm.DB) ScheduleItemRepository {
	return &scheduleItemRepo{db: db}
}

func (r *scheduleItemRepo) Create(ctx context.Context, item *model.ScheduleItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *scheduleItemRepo) GetByID(ctx context.Context, id string) (*model.ScheduleItem, error) {
	var item model.ScheduleItem
	err := r.db.WithContext(ctx).
		Where("schedule_item_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *scheduleItemRepo) List(ctx context.Context) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	err := r.db.WithContext(ctx).
		Order("subject_code, time_start").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *scheduleItemRepo) Update(ctx context.Context, item *model.ScheduleItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *scheduleItemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_item_id = ?", id).
		Delete(&model.ScheduleItem{}).Error
}

func (r *scheduleItemRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ScheduleItem{}).Count(&count).Error
	return count, err
}
