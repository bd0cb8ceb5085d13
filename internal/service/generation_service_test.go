package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, []byte) error {
	return errors.New("broker unavailable")
}

func TestAdmitPublishesAndReturnsQueuedJob(t *testing.T) {
	jobs := memory.NewJobRepository(time.Hour)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	const topic = "GENERATE_CHART"
	ctx := context.Background()

	messages, err := pubSub.Subscribe(ctx, topic)
	require.NoError(t, err)

	svc := NewGenerationService(jobs, NewPublisherService(topic, pubSub), noopLogger{})

	res, err := svc.Admit(ctx, "chart my plan", "grounding", []string{"plan.md"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, memory.IsValidID(res.JobId))

	// The job is pollable as queued before any pipeline work happens
	status, found := svc.GetJob(res.JobId)
	require.True(t, found)
	assert.Equal(t, "queued", status.Status)
	assert.NotEmpty(t, status.Progress)
	assert.Nil(t, status.Data)
	assert.Empty(t, status.Error)

	select {
	case msg := <-messages:
		var payload dto.GenerationRequestedMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, res.JobId, payload.JobId)
		assert.Equal(t, "chart my plan", payload.Prompt)
		assert.Equal(t, "grounding", payload.GroundingText)
		assert.Equal(t, []string{"plan.md"}, payload.FileNames)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("no message published to the generation topic")
	}
}

func TestAdmitFailsJobWhenDispatchFails(t *testing.T) {
	jobs := memory.NewJobRepository(time.Hour)
	svc := NewGenerationService(jobs, failingPublisher{}, noopLogger{})

	res, err := svc.Admit(context.Background(), "p", "g", nil)
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestGetJobShapesByStatus(t *testing.T) {
	jobs := memory.NewJobRepository(time.Hour)
	svc := NewGenerationService(jobs, failingPublisher{}, noopLogger{})

	completeID := jobs.Create()
	jobs.Complete(completeID, map[string]interface{}{"chart_id": "x"})

	errorID := jobs.Create()
	jobs.Fail(errorID, "model unavailable")

	processingID := jobs.Create()
	jobs.MarkProcessing(processingID, "Generating chart structure...")

	status, found := svc.GetJob(completeID)
	require.True(t, found)
	assert.Equal(t, "complete", status.Status)
	assert.Equal(t, "x", status.Data["chart_id"])
	assert.Empty(t, status.Progress)
	assert.Empty(t, status.Error)

	status, found = svc.GetJob(errorID)
	require.True(t, found)
	assert.Equal(t, "error", status.Status)
	assert.Equal(t, "model unavailable", status.Error)
	assert.Nil(t, status.Data)

	status, found = svc.GetJob(processingID)
	require.True(t, found)
	assert.Equal(t, "processing", status.Status)
	assert.Equal(t, "Generating chart structure...", status.Progress)

	_, found = svc.GetJob("not-a-real-id")
	assert.False(t, found)
}
