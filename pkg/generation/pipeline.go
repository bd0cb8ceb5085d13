package generation

import (
	"context"
	"fmt"
	"log"
	"sync"

	"ai-chartgen-be/internal/repository/memory"
	"ai-chartgen-be/pkg/invoker"
	"ai-chartgen-be/pkg/sanitize"
)

// Input is everything one admitted generation request carries into the
// pipeline. The grounding text is immutable for the whole run.
type Input struct {
	Prompt        string
	GroundingText string
	FileNames     []string
}

// Pipeline runs the end-to-end generation sequence for one admitted request
// and drives the associated job to a terminal state. It holds repositories
// and identifiers only, never live record references, so store eviction can
// never leave it with dangling mutable state.
type Pipeline struct {
	inv      *invoker.Invoker
	jobs     *memory.JobRepository
	sessions *memory.SessionRepository
	charts   *memory.ChartRepository

	primaryAttempts int
	auxAttempts     int
	logger          *log.Logger
}

func NewPipeline(
	inv *invoker.Invoker,
	jobs *memory.JobRepository,
	sessions *memory.SessionRepository,
	charts *memory.ChartRepository,
	primaryAttempts, auxAttempts int,
	logger *log.Logger,
) *Pipeline {
	if primaryAttempts < 1 {
		primaryAttempts = 1
	}
	if auxAttempts < 1 {
		auxAttempts = 1
	}
	return &Pipeline{
		inv:             inv,
		jobs:            jobs,
		sessions:        sessions,
		charts:          charts,
		primaryAttempts: primaryAttempts,
		auxAttempts:     auxAttempts,
		logger:          logger,
	}
}

// Run drives one job from processing to complete/error. It is the outer
// boundary of the background task: nothing may panic past it.
func (p *Pipeline) Run(ctx context.Context, jobID string, in Input) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("[PIPELINE] Job %s panicked: %v", jobID, r)
			p.jobs.Fail(jobID, fmt.Sprintf("unexpected pipeline failure: %v", r))
		}
	}()

	// ── Stage 1: primary chart generation (required) ──
	p.jobs.MarkProcessing(jobID, "Generating chart structure...")

	chartPrompt := BuildChartPrompt(sanitize.Wrap(in.Prompt), in.GroundingText)
	chart, err := invoker.Invoke[map[string]interface{}](ctx, p.inv, chartPrompt, p.primaryAttempts, p.onRetry(jobID, "chart"))
	if err != nil {
		p.logger.Printf("[PIPELINE] Job %s chart generation failed: %v", jobID, err)
		p.jobs.Fail(jobID, err.Error())
		return
	}
	if err := ValidateChartShape(chart); err != nil {
		p.logger.Printf("[PIPELINE] Job %s chart shape invalid: %v", jobID, err)
		p.jobs.Fail(jobID, err.Error())
		return
	}

	// ── Stages 2 and 3: independent best-effort enrichment, run concurrently
	// over the same immutable grounding text ──
	p.jobs.MarkProcessing(jobID, "Enriching chart with analysis and report...")

	var analysis Optional[map[string]interface{}]
	var report Optional[[]Section]

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		analysis = p.runAnalysis(ctx, jobID, in)
	}()
	go func() {
		defer wg.Done()
		report = p.runReport(ctx, jobID, in)
	}()
	wg.Wait()

	// ── Finalization ──
	p.jobs.MarkProcessing(jobID, "Finalizing chart...")

	merged := make(map[string]interface{}, len(chart)+2)
	for k, v := range chart {
		merged[k] = v
	}
	merged["analysis"] = analysis.OrNil()
	merged["report"] = report.OrNil()

	// Defensive re-check: merge logic must not have corrupted the payload
	if err := ValidateChartShape(merged); err != nil {
		p.logger.Printf("[PIPELINE] Job %s merged payload invalid: %v", jobID, err)
		p.jobs.Fail(jobID, fmt.Sprintf("merged chart payload corrupted: %v", err))
		return
	}

	sessionID := p.sessions.Create(in.GroundingText, in.FileNames)
	chartID := p.charts.Create(merged, sessionID)

	p.jobs.Complete(jobID, map[string]interface{}{
		"session_id": sessionID,
		"chart_id":   chartID,
		"chart":      merged,
	})
	p.logger.Printf("[PIPELINE] Job %s complete (chart %s, session %s)", jobID, chartID, sessionID)
}

// runAnalysis is Stage 2. Failure never fails the job; it produces an
// explicit absent marker instead.
func (p *Pipeline) runAnalysis(ctx context.Context, jobID string, in Input) (result Optional[map[string]interface{}]) {
	result = None[map[string]interface{}]()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("[PIPELINE] Job %s analysis stage panicked: %v", jobID, r)
			result = None[map[string]interface{}]()
		}
	}()

	analysis, err := invoker.Invoke[map[string]interface{}](ctx, p.inv, BuildAnalysisPrompt(in.GroundingText), p.auxAttempts, p.onRetry(jobID, "analysis"))
	if err != nil {
		p.logger.Printf("[PIPELINE] Job %s analysis stage skipped: %v", jobID, err)
		return None[map[string]interface{}]()
	}
	return Some(analysis)
}

// runReport is Stage 3: outline first, then one expansion call per entry.
// Entries whose expansion fails are skipped individually; an empty subset
// leaves the stage absent.
func (p *Pipeline) runReport(ctx context.Context, jobID string, in Input) (result Optional[[]Section]) {
	result = None[[]Section]()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("[PIPELINE] Job %s report stage panicked: %v", jobID, r)
			result = None[[]Section]()
		}
	}()

	outline, err := invoker.Invoke[[]OutlineEntry](ctx, p.inv, BuildOutlinePrompt(in.GroundingText), p.auxAttempts, p.onRetry(jobID, "outline"))
	if err != nil {
		p.logger.Printf("[PIPELINE] Job %s report outline skipped: %v", jobID, err)
		return None[[]Section]()
	}
	if len(outline) == 0 {
		p.logger.Printf("[PIPELINE] Job %s report outline empty, skipping stage", jobID)
		return None[[]Section]()
	}

	sections := make([]Section, 0, len(outline))
	for i, entry := range outline {
		section, err := invoker.Invoke[Section](ctx, p.inv, BuildSectionPrompt(entry, in.GroundingText), p.auxAttempts, p.onRetry(jobID, fmt.Sprintf("section %d", i)))
		if err != nil {
			p.logger.Printf("[PIPELINE] Job %s section %d (%s) skipped: %v", jobID, i, entry.Type, err)
			continue
		}
		if section.Type == "" {
			section.Type = entry.Type
		}
		if section.Heading == "" {
			section.Heading = entry.Heading
		}
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		return None[[]Section]()
	}
	return Some(sections)
}

func (p *Pipeline) onRetry(jobID, stage string) invoker.RetryFunc {
	return func(attempt int, err error) {
		p.logger.Printf("[PIPELINE] Job %s %s call retry %d: %v", jobID, stage, attempt, err)
	}
}
