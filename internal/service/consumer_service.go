package service

import (
	"context"
	"encoding/json"

	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/pkg/logger"
	"ai-chartgen-be/pkg/generation"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	pipeline  *generation.Pipeline
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pipeline *generation.Pipeline,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		pipeline:  pipeline,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.GenerationRequestedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal generation message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("consumer", "Starting generation pipeline", map[string]interface{}{
		"job_id": payload.JobId,
	})

	// Ack before the run: the job record carries the outcome, re-delivery
	// would only double the work.
	msg.Ack()

	// One goroutine per admitted request; runs share no state except the
	// ephemeral store.
	go cs.pipeline.Run(ctx, payload.JobId, generation.Input{
		Prompt:        payload.Prompt,
		GroundingText: payload.GroundingText,
		FileNames:     payload.FileNames,
	})
}
