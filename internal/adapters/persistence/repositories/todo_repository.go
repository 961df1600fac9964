package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// todoRepository implements TodoRepository interface
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *models.TodoTask) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) GetByID(ctx context.Context, id uint) (*models.TodoTask, error) {
	var todo models.TodoTask
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *models.TodoTask) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// List lists todos soonest due first
func (r *todoRepository) List(ctx context.Context) ([]*models.TodoTask, error) {
	var todos []*models.TodoTask
	err := r.db.WithContext(ctx).Order("due_date ASC, id ASC").Find(&todos).Error
	return todos, err
}
