package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/jrazmi/taskapi/sdk/validation"
)

type demoTask struct {
	title       string
	description string
	dueIn       time.Duration
	priority    tasksrepo.Priority
	category    string
}

var demoTasks = []demoTask{
	{"Buy milk", "2 litres, semi skimmed", 24 * time.Hour, tasksrepo.PriorityHigh, "Home"},
	{"Pay electricity bill", "", 3 * 24 * time.Hour, tasksrepo.PriorityHigh, "Finance"},
	{"Book dentist appointment", "Ask for an early slot", 7 * 24 * time.Hour, tasksrepo.PriorityMedium, "Health"},
	{"Renew passport", "", 30 * 24 * time.Hour, tasksrepo.PriorityMedium, "Admin"},
	{"Clean the garage", "", 14 * 24 * time.Hour, tasksrepo.PriorityLow, "Home"},
	{"Write quarterly report", "Include the churn numbers", 5 * 24 * time.Hour, tasksrepo.PriorityHigh, "Work"},
	{"Review pull requests", "", 2 * 24 * time.Hour, tasksrepo.PriorityMedium, "Work"},
	{"Plan team offsite", "", 21 * 24 * time.Hour, tasksrepo.PriorityLow, "Work"},
	{"Call grandma", "", 4 * 24 * time.Hour, tasksrepo.PriorityMedium, "Family"},
	{"Water the plants", "", 12 * time.Hour, tasksrepo.PriorityLow, "Home"},
	{"Update CV", "", 45 * 24 * time.Hour, tasksrepo.PriorityLow, "Career"},
	{"Buy birthday present", "Something for the garden", 10 * 24 * time.Hour, tasksrepo.PriorityMedium, "Family"},
}

// Seed creates count demo tasks through the repository, cycling through the
// demo set. Due dates are relative to now.
func Seed(ctx context.Context, log *logger.Logger, repo *tasksrepo.Repository, count int, now time.Time) ([]int, error) {
	log.InfoContext(ctx, "seeding started", "count", count)

	ids := make([]int, 0, count)
	for i := range count {
		demo := demoTasks[i%len(demoTasks)]

		title := demo.title
		if round := i / len(demoTasks); round > 0 {
			title = fmt.Sprintf("%s (%d)", title, round+1)
		}

		task, err := repo.Create(ctx, tasksrepo.CreateTask{
			Title:       title,
			Description: validation.StringPtrIfNotEmpty(demo.description),
			DueDate:     now.Add(demo.dueIn),
			Priority:    demo.priority,
			Category:    demo.category,
		})
		if err != nil {
			return ids, fmt.Errorf("seed task %q: %w", title, err)
		}
		ids = append(ids, task.ID)
	}

	log.InfoContext(ctx, "seeding completed successfully", "created", len(ids))
	return ids, nil
}
