package postgres

import (
	taskDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/task"
	"github.com/tvintergoller/keep-informed/internal/task"
	"gorm.io/gorm"
)

// TaskRepository implements the task.Repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *taskDatamodel.Task) error {
	return r.db.Create(t).Error
}

func (r *TaskRepository) GetByAssignee(userID int64) ([]*taskDatamodel.Task, error) {
	var tasks []*taskDatamodel.Task
	err := r.db.Where("assigned_to = ?", userID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByIDAndAssignee(id, userID int64) (*taskDatamodel.Task, error) {
	var t taskDatamodel.Task
	err := r.db.Where("id = ? AND assigned_to = ?", id, userID).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(id int64) error {
	return r.db.Delete(&taskDatamodel.Task{}, id).Error
}
