package queue

import (
	"context"
)

type Task interface {
	Execute(ctx context.Context) error
}

type TaskQueue chan Task

func NewTaskQueue(size int) TaskQueue {
	return make(TaskQueue, size)
}
