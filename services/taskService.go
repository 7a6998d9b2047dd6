package services

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrTaskNotFound = errors.New("task not found")

var builtinTasks = []models.Task{
	{
		ID:      "sum-to-n",
		Name:    "Task 1: Sum numbers from 1 to n",
		Context: "You are helping students design and debug a Python function sum_to_n(n) that returns the sum of all integers from 1 up to and including n. Focus on reasoning, not just giving them code.",
		Description: `You are working on this Python problem:

Write a function sum_to_n(n) that returns the sum of all integers from 1 to n inclusive.

Example:
- sum_to_n(3) -> 6
- sum_to_n(10) -> 55
`,
	},
	{
		ID:      "factorial-debug",
		Name:    "Task 2: Debug a factorial function",
		Context: "You are helping students debug a Python function intended to compute factorial(n). Focus on helping them reason about loops and base cases.",
		Description: `You are working on this debugging problem:

def factorial(n):
    result = 0
    for i in range(1, n):
        result = result * i
    return result

Explain what this code currently does, why it is wrong, and how to fix it.`,
	},
}

type TaskService struct {
	tasks []models.Task
}

// NewTaskService returns a service over the built-in task catalog.
func NewTaskService() *TaskService {
	return &TaskService{tasks: builtinTasks}
}

// NewTaskServiceFromFile loads the catalog from a YAML file, replacing
// the built-in tasks.
func NewTaskServiceFromFile(path string) (*TaskService, error) {
	logging.Infof("Loading task catalog from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	var tasks []models.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks file: %w", err)
	}

	if len(tasks) == 0 {
		return nil, fmt.Errorf("tasks file %s contains no tasks", path)
	}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("task %q has no id", t.Name)
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("task %q has no name", t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
	}

	logging.Infof("Loaded %d tasks from %s", len(tasks), path)
	return &TaskService{tasks: tasks}, nil
}

func (s *TaskService) ListTasks() []models.Task {
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *TaskService) GetTaskByID(id string) (*models.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task with id %q: %w", id, ErrTaskNotFound)
}

// FindTask resolves a query to a task: exact id first, then exact name,
// then the closest fuzzy match over ids and names.
func (s *TaskService) FindTask(query string) (*models.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty task query: %w", ErrTaskNotFound)
	}

	for _, t := range s.tasks {
		if strings.EqualFold(t.ID, query) {
			task := t
			return &task, nil
		}
	}
	for _, t := range s.tasks {
		if strings.EqualFold(t.Name, query) {
			task := t
			return &task, nil
		}
	}

	ids := lo.Map(s.tasks, func(t models.Task, _ int) string {
		return t.ID
	})
	names := lo.Map(s.tasks, func(t models.Task, _ int) string {
		return t.Name
	})

	// Targets are ids then names, each len(s.tasks) long, so any match
	// index maps back to a task modulo the catalog size.
	ranks := fuzzy.RankFindFold(query, append(ids, names...))
	if len(ranks) == 0 {
		return nil, fmt.Errorf("no task matches %q: %w", query, ErrTaskNotFound)
	}

	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	task := s.tasks[ranks[0].OriginalIndex%len(s.tasks)]
	return &task, nil
}
