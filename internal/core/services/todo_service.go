package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
)

// TodoService handles operator tasks
type TodoService struct {
	repo   repositories.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(repo repositories.TodoRepository, logger *slog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: orDefault(logger)}
}

// CreateTodoInput represents create todo input
type CreateTodoInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority"`
	DueDate     time.Time       `json:"due_date"`
	AssignedTo  string          `json:"assigned_to"`
}

func (s *TodoService) all(ctx context.Context) ([]domain.TodoTask, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TodoTask, len(rows))
	for i, r := range rows {
		out[i] = r.ToDomain()
	}
	return out, nil
}

// List returns one page of todos matching q
func (s *TodoService) List(ctx context.Context, q ListQuery) (*ListResult[domain.TodoTask], error) {
	todos, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	var warnings []error
	for _, t := range todos {
		if !t.Status.IsValid() {
			warnings = append(warnings, &domain.UnknownStatusError{Entity: "todo", RecordID: t.ID, Value: string(t.Status)})
		}
	}
	reportWarnings(s.logger, warnings)
	return page(q, todos, lifecycle.TodoRecord, len(warnings)), nil
}

// Create adds an open todo
func (s *TodoService) Create(ctx context.Context, input *CreateTodoInput) (*domain.TodoTask, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("todo", 0, "title", "is required")
	}
	if input.DueDate.IsZero() {
		return nil, domain.NewValidationError("todo", 0, "due_date", "is required")
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.NewValidationError("todo", 0, "priority", "must be one of low, medium, high, urgent")
	}

	t := domain.TodoTask{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
		Status:      domain.TodoOpen,
	}
	row := models.TodoTaskFromDomain(t)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	t.ID = row.ID
	return &t, nil
}

// UpdateStatus sets the todo status
func (s *TodoService) UpdateStatus(ctx context.Context, id uint, status domain.TodoStatus) (*domain.TodoTask, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTodoNotFound)
	}
	next, err := lifecycle.SetTodoStatus(row.ToDomain(), status)
	if err != nil {
		return nil, err
	}
	row.Status = string(next.Status)
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, err
	}
	return &next, nil
}
