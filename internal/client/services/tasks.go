package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dbelyaev/taskvault/internal/client/models"
	"github.com/dbelyaev/taskvault/internal/client/storage"
	"github.com/dbelyaev/taskvault/internal/common"
)

// TaskService is the task store. The persisted `todos` value is the whole
// cross-user collection; every mutation is a read-modify-write of that
// collection, serialized through mu so two rapid mutations cannot clobber
// each other.
type TaskService struct {
	kv       storage.KVStore
	sessions *SessionService

	mu     sync.Mutex
	lastID int64
}

// NewTaskService constructs a TaskService over the given store. Operations
// resolve the acting user through sessions.
func NewTaskService(kv storage.KVStore, sessions *SessionService) *TaskService {
	return &TaskService{kv: kv, sessions: sessions}
}

// loadTasks reads the full global collection. A missing key and an
// unreadable value both yield an empty collection. Legacy records are
// normalized on the way in.
func (t *TaskService) loadTasks(ctx context.Context) ([]models.Task, error) {
	raw, err := t.kv.Get(ctx, storage.KeyTodos)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, nil
	}
	for i := range tasks {
		tasks[i].Normalize()
	}
	return tasks, nil
}

func (t *TaskService) saveTasks(ctx context.Context, tasks []models.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := t.kv.Set(ctx, storage.KeyTodos, string(raw)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// requireSession returns the active session or common.ErrNoSession.
func (t *TaskService) requireSession(ctx context.Context) (models.Session, error) {
	session, err := t.sessions.Current(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if !session.Active() {
		return models.Session{}, common.ErrNoSession
	}
	return session, nil
}

// List returns the logged-in user's tasks in insertion order.
func (t *TaskService) List(ctx context.Context) ([]models.Task, error) {
	session, err := t.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := t.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	var mine []models.Task
	for _, task := range tasks {
		if task.Email == session.Email {
			mine = append(mine, task)
		}
	}
	return mine, nil
}

// Grouped returns the logged-in user's tasks partitioned by category and
// ordered by status priority within each partition.
func (t *TaskService) Grouped(ctx context.Context) (map[models.TaskCategory][]models.Task, error) {
	tasks, err := t.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.GroupByCategory(tasks), nil
}

// nextID returns an identifier seeded from the current wall clock in
// milliseconds, bumped past any identifier already handed out or stored,
// so uniqueness holds even for additions within the same millisecond.
func (t *TaskService) nextID(tasks []models.Task) int64 {
	id := time.Now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	for _, task := range tasks {
		if task.ID >= id {
			id = task.ID + 1
		}
	}
	t.lastID = id
	return id
}

// Add appends a new incomplete task owned by the logged-in user and
// returns it.
func (t *TaskService) Add(ctx context.Context, text string, category models.TaskCategory) (models.Task, error) {
	session, err := t.requireSession(ctx)
	if err != nil {
		return models.Task{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, common.ErrEmptyText
	}
	if !category.IsValid() {
		return models.Task{}, common.ErrValidation
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tasks, err := t.loadTasks(ctx)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:       t.nextID(tasks),
		Text:     text,
		Status:   models.StatusIncomplete,
		Category: category,
		Email:    session.Email,
	}
	tasks = append(tasks, task)

	if err := t.saveTasks(ctx, tasks); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateStatus sets the status of every task with the given id. An id with
// no match is a silent no-op, not an error.
func (t *TaskService) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	if !status.IsValid() {
		return common.ErrValidation
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tasks, err := t.loadTasks(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = status
			tasks[i].Normalize()
		}
	}
	return t.saveTasks(ctx, tasks)
}

// Toggle advances the task with the given id to the next status in the
// incomplete → in-progress → complete cycle. A missing id is a no-op.
func (t *TaskService) Toggle(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tasks, err := t.loadTasks(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = tasks[i].Status.Next()
			tasks[i].Normalize()
		}
	}
	return t.saveTasks(ctx, tasks)
}

// Remove deletes every task with the given id. Removing an absent id is a
// no-op.
func (t *TaskService) Remove(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tasks, err := t.loadTasks(ctx)
	if err != nil {
		return err
	}

	kept := tasks[:0]
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	return t.saveTasks(ctx, kept)
}
