package alerts

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("alert not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Alert{})
}

func (r *Repository) Create(ctx context.Context, alert *Alert) error {
	alert.CreatedAt = time.Now().UTC()
	alert.UpdatedAt = alert.CreatedAt
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *Repository) Get(ctx context.Context, id string) (*Alert, error) {
	var alert Alert
	result := r.db.WithContext(ctx).First(&alert, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &alert, result.Error
}

func (r *Repository) ListUnacknowledged(ctx context.Context, limit int) ([]Alert, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var alerts []Alert
	err := r.db.WithContext(ctx).
		Where("acknowledged = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

func (r *Repository) Acknowledge(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&Alert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"acknowledged": true,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
