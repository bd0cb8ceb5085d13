package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/entity"
	"ai-chartgen-be/internal/pkg/logger"
	"ai-chartgen-be/internal/repository/memory"
)

type IGenerationService interface {
	// Admit creates the job and dispatches the background run without
	// waiting for it.
	Admit(ctx context.Context, prompt, groundingText string, fileNames []string) (*dto.GenerateResponse, error)
	GetJob(jobID string) (*dto.JobStatusResponse, bool)
}

type generationService struct {
	jobs      *memory.JobRepository
	publisher IPublisherService
	logger    logger.ILogger
}

func NewGenerationService(
	jobs *memory.JobRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IGenerationService {
	return &generationService{
		jobs:      jobs,
		publisher: publisher,
		logger:    log,
	}
}

func (s *generationService) Admit(ctx context.Context, prompt, groundingText string, fileNames []string) (*dto.GenerateResponse, error) {
	jobID := s.jobs.Create()

	msgPayload := dto.GenerationRequestedMessage{
		JobId:         jobID,
		Prompt:        prompt,
		GroundingText: groundingText,
		FileNames:     fileNames,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		s.jobs.Fail(jobID, "failed to dispatch generation request")
		return nil, err
	}

	if err := s.publisher.Publish(ctx, msgJson); err != nil {
		s.jobs.Fail(jobID, "failed to dispatch generation request")
		return nil, fmt.Errorf("publish generation request: %w", err)
	}

	s.logger.Info("generation", "Job admitted", map[string]interface{}{
		"job_id": jobID,
		"files":  len(fileNames),
	})

	return &dto.GenerateResponse{JobId: jobID}, nil
}

func (s *generationService) GetJob(jobID string) (*dto.JobStatusResponse, bool) {
	job, found := s.jobs.Get(jobID)
	if !found {
		return nil, false
	}

	res := &dto.JobStatusResponse{
		JobId:     job.Id,
		Status:    string(job.Status),
		CreatedAt: job.CreatedAt,
	}

	// Pollers see exactly one of: progress text, result data, error message.
	switch job.Status {
	case entity.JobStatusComplete:
		res.Data = job.Result
	case entity.JobStatusError:
		res.Error = job.Error
	default:
		res.Progress = job.Progress
	}

	return res, true
}
