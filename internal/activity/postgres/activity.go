package postgres

import (
	"time"

	"github.com/tvintergoller/keep-informed/internal/activity"
	activityDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/activity"
	"gorm.io/gorm"
)

// ActivityRepository implements the activity.Repository interface using GORM
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(entry *activityDatamodel.ActivityLog) error {
	return r.db.Create(entry).Error
}

// GetInRange returns log rows with timestamp in [start, end], both inclusive,
// in insertion order.
func (r *ActivityRepository) GetInRange(start, end time.Time) ([]*activityDatamodel.ActivityLog, error) {
	var entries []*activityDatamodel.ActivityLog
	err := r.db.Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
