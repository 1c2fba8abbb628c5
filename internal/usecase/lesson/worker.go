package lesson

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/pkg/jobcontext"
)

// StartWorkerPool starts background workers that process lesson jobs
func (s *lessonService) StartWorkerPool(ctx context.Context, workerCount int) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool already running")
	}

	s.isWorkerPoolRunning = true
	s.workerStopChan = make(chan struct{})

	if s.logger != nil {
		s.logger.Info("🚀 Starting lesson worker pool",
			zap.Int("worker_count", workerCount),
			zap.String("mode", s.cfg.Lesson.Mode),
		)
	}

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.lessonWorker(ctx, i)
	}

	// Cleanup routine for jobs stuck in generating status
	s.workerWg.Add(1)
	go s.stuckJobWorker(ctx)

	return nil
}

// StopWorkerPool gracefully stops all worker goroutines
func (s *lessonService) StopWorkerPool() error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool not running")
	}

	if s.logger != nil {
		s.logger.Info("🛑 Stopping lesson worker pool...")
	}

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	if s.logger != nil {
		s.logger.Info("✅ Lesson worker pool stopped")
	}

	return nil
}

// lessonWorker polls for pending/retrying jobs and runs the generation
// pipeline for each one it claims
func (s *lessonService) lessonWorker(parentCtx context.Context, workerID int) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.cfg.Lesson.PollInterval)
	defer ticker.Stop()

	if s.logger != nil {
		s.logger.Info("👷 Lesson worker started",
			zap.Int("worker_id", workerID),
		)
	}

	for {
		select {
		case <-s.workerStopChan:
			if s.logger != nil {
				s.logger.Info("👷 Lesson worker stopping",
					zap.Int("worker_id", workerID),
				)
			}
			return

		case <-ticker.C:
			jobs, err := s.jobRepo.GetJobsForProcessing(parentCtx, 5)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to poll lesson jobs",
						zap.Int("worker_id", workerID),
						zap.Error(err),
					)
				}
				continue
			}

			if len(jobs) == 0 {
				continue
			}

			job := jobs[0]

			// Only one worker will succeed if several see the same job
			claimed, err := s.jobRepo.ClaimJob(parentCtx, job.ID, job.Status)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to claim job",
						zap.String("job_id", job.ID.String()),
						zap.Error(err),
					)
				}
				continue
			}
			if !claimed {
				if s.logger != nil {
					s.logger.Info("⏭️ Job already claimed by another worker",
						zap.String("job_id", job.ID.String()),
					)
				}
				continue
			}

			if s.logger != nil {
				s.logger.Info("👷 Worker claimed job",
					zap.Int("worker_id", workerID),
					zap.String("job_id", job.ID.String()),
					zap.String("device_id", job.DeviceID),
				)
			}

			jobCtx, cancel := jobcontext.JobBegin(parentCtx, job.ID, "lesson_generation", workerID)

			err = jobcontext.JobEnd(jobCtx, func(ctx context.Context) error {
				return s.generateLesson(ctx, &job)
			})

			cancel()

			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Lesson job failed after retries",
						zap.String("job_id", job.ID.String()),
						zap.Error(err),
					)
				}
				if job.RetryCount < job.MaxRetries {
					s.jobRepo.IncrementRetryCount(parentCtx, job.ID, err.Error())
				} else {
					s.jobRepo.MarkJobAsFailed(parentCtx, job.ID, err.Error())
				}
			}
		}
	}
}

// stuckJobWorker requeues jobs that have been generating for too long,
// usually because a worker died mid-run
func (s *lessonService) stuckJobWorker(parentCtx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return

		case <-ticker.C:
			cutoff := time.Now().Add(-15 * time.Minute)
			jobs, err := s.jobRepo.GetStuckJobs(parentCtx, cutoff, 20)
			if err != nil {
				continue
			}

			for _, job := range jobs {
				if s.logger != nil {
					s.logger.Warn("🧹 Requeueing stuck lesson job",
						zap.String("job_id", job.ID.String()),
						zap.Time("updated_at", job.UpdatedAt),
					)
				}
				if err := s.jobRepo.ResetStuckJob(parentCtx, job.ID); err != nil {
					if s.logger != nil {
						s.logger.Error("❌ Failed to requeue stuck job",
							zap.String("job_id", job.ID.String()),
							zap.Error(err),
						)
					}
				}
			}
		}
	}
}
