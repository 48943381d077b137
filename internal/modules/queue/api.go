package queue

import (
	"context"
	"sync"

	"github.com/nanodraw/nanodraw/internal/modules/logs"
)

var GenerationQueue = NewTaskQueue(100)
var closeOnce sync.Once

func exeGenerationTask(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case task, ok := <-GenerationQueue:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := task.Execute(ctx); err != nil {
					logs.Logger.Error().Err(err).Msg("generation task failed")
				}
			}()
		case <-ctx.Done():
			closeOnce.Do(func() {
				close(GenerationQueue)
				logs.Logger.Info().Msg("generation task queue closed")
			})
		}
	}
}

func InitGenerationQueue(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go exeGenerationTask(ctx, wg)
}
