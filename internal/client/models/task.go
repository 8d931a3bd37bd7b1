package models

import "sort"

// TaskStatus is the tri-state progress of a task.
type TaskStatus string

const (
	StatusIncomplete TaskStatus = "incomplete"
	StatusInProgress TaskStatus = "in-progress"
	StatusComplete   TaskStatus = "complete"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusInProgress, StatusComplete:
		return true
	default:
		return false
	}
}

// Priority is the fixed display ranking: incomplete(0) < in-progress(1)
// < complete(2). Unknown statuses sort last.
func (s TaskStatus) Priority() int {
	switch s {
	case StatusIncomplete:
		return 0
	case StatusInProgress:
		return 1
	case StatusComplete:
		return 2
	default:
		return 3
	}
}

// Next returns the status the toggle command cycles to.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusIncomplete:
		return StatusInProgress
	case StatusInProgress:
		return StatusComplete
	default:
		return StatusIncomplete
	}
}

// TaskCategory groups tasks for display.
type TaskCategory string

const (
	CategorySchool   TaskCategory = "school"
	CategoryWork     TaskCategory = "work"
	CategoryPersonal TaskCategory = "personal"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategorySchool, CategoryWork, CategoryPersonal:
		return true
	default:
		return false
	}
}

// Categories lists all categories in display order.
func Categories() []TaskCategory {
	return []TaskCategory{CategorySchool, CategoryWork, CategoryPersonal}
}

// Task is one to-do item in the global `todos` collection. Email is a weak
// reference to the owning user; orphan tasks are retained, never
// cascade-deleted, since no account-deletion path exists.
//
// Completed is the legacy flag kept in the serialized form so records
// written before statuses existed stay readable.
type Task struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Status    TaskStatus   `json:"status"`
	Category  TaskCategory `json:"category"`
	Email     string       `json:"email"`
}

// Normalize reconciles the legacy completed flag with the status field.
// Records missing a status derive one from the flag; otherwise the flag is
// re-derived from the status.
func (t *Task) Normalize() {
	if t.Status == "" {
		if t.Completed {
			t.Status = StatusComplete
		} else {
			t.Status = StatusIncomplete
		}
		return
	}
	t.Completed = t.Status == StatusComplete
}

// GroupByCategory partitions tasks by category, preserving insertion order,
// then orders each partition by status priority. The sort is stable: tasks
// of equal status keep their relative order.
func GroupByCategory(tasks []Task) map[TaskCategory][]Task {
	groups := make(map[TaskCategory][]Task)
	for _, t := range tasks {
		groups[t.Category] = append(groups[t.Category], t)
	}
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Status.Priority() < group[j].Status.Priority()
		})
	}
	return groups
}
