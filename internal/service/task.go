package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/metrics"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
)

type TaskService struct {
	store Store
	log   *logrus.Entry
}

func NewTaskService(store Store, logger logrus.FieldLogger) *TaskService {
	return &TaskService{store: store, log: logger.WithField("service", "task")}
}

// GetUserTasks returns the global catalog with the user's completion flags.
func (s *TaskService) GetUserTasks(ctx context.Context, userID string) ([]model.UserTask, error) {
	if _, err := loadUser(ctx, s.store, userID); err != nil {
		return nil, err
	}
	tasks, err := catalog(ctx, s.store)
	if err != nil {
		return nil, err
	}
	completions, err := s.store.GetUserTaskCompletions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.MergeUserTasks(tasks, completions), nil
}

// CompleteTask marks a task done for the user and credits its reward.
// The completion map is written before the wallet.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID string) (*model.User, error) {
	var (
		user *model.User
		task model.Task
	)
	err := s.store.Exclusive(func() error {
		var err error
		user, err = loadUser(ctx, s.store, userID)
		if err != nil {
			return err
		}
		if !user.HasVIP() {
			return ErrNoActiveVIP
		}

		task, err = s.findTask(ctx, taskID)
		if err != nil {
			return err
		}

		completions, err := s.store.GetUserTaskCompletions(ctx, userID)
		if err != nil {
			return err
		}
		if completions[taskID] {
			return ErrTaskAlreadyCompleted
		}
		completions[taskID] = true
		if err := s.store.SetUserTaskCompletions(ctx, userID, completions); err != nil {
			return err
		}

		user.CreditTaskReward(task.Reward)
		return s.store.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskCompleted(string(task.Type), task.Reward.InexactFloat64())
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"task_id": taskID,
		"reward":  task.Reward.String(),
	}).Info("task completed")
	return user, nil
}

func (s *TaskService) findTask(ctx context.Context, taskID string) (model.Task, error) {
	tasks, err := s.store.ListGlobalTasks(ctx)
	if err != nil {
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return model.Task{}, ErrTaskNotFound
}
