package memory

import (
	"testing"
	"time"

	"ai-chartgen-be/internal/entity"
)

func newTestJobRepo() *JobRepository {
	return NewJobRepository(time.Hour)
}

func TestJobCreateDefaults(t *testing.T) {
	repo := newTestJobRepo()

	id := repo.Create()
	if !IsValidID(id) {
		t.Fatalf("Create returned malformed id %q", id)
	}

	job, found := repo.Get(id)
	if !found {
		t.Fatal("job not found immediately after Create")
	}
	if job.Status != entity.JobStatusQueued {
		t.Errorf("Status = %s, want %s", job.Status, entity.JobStatusQueued)
	}
	if job.Progress == "" {
		t.Error("new job has empty progress message")
	}
	if job.CreatedAt.IsZero() {
		t.Error("new job has zero CreatedAt")
	}
}

func TestJobGetJunkIDs(t *testing.T) {
	repo := newTestJobRepo()

	for _, id := range []string{"", "nope", "0123456789ABCDEF0123456789ABCDEF", "zz23456789abcdef0123456789abcdef"} {
		if _, found := repo.Get(id); found {
			t.Errorf("Get(%q) reported found", id)
		}
		if repo.MarkProcessing(id, "x") {
			t.Errorf("MarkProcessing(%q) reported success", id)
		}
		if repo.Fail(id, "x") {
			t.Errorf("Fail(%q) reported success", id)
		}
	}

	// Well-formed but unknown
	if _, found := repo.Get(NewID()); found {
		t.Error("Get of unknown id reported found")
	}
}

func TestJobLifecycleComplete(t *testing.T) {
	repo := newTestJobRepo()
	id := repo.Create()

	if !repo.MarkProcessing(id, "Generating chart structure...") {
		t.Fatal("MarkProcessing failed")
	}
	job, _ := repo.Get(id)
	if job.Status != entity.JobStatusProcessing {
		t.Fatalf("Status = %s, want processing", job.Status)
	}
	if job.Progress != "Generating chart structure..." {
		t.Errorf("Progress = %q", job.Progress)
	}

	result := map[string]interface{}{"chart_id": "abc"}
	if !repo.Complete(id, result) {
		t.Fatal("Complete failed")
	}
	job, _ = repo.Get(id)
	if job.Status != entity.JobStatusComplete {
		t.Fatalf("Status = %s, want complete", job.Status)
	}
	if job.Result["chart_id"] != "abc" {
		t.Errorf("Result = %v", job.Result)
	}
	if job.Progress == "" {
		t.Error("completed job has empty progress message")
	}
}

func TestJobTerminalNeverReverts(t *testing.T) {
	repo := newTestJobRepo()
	id := repo.Create()
	repo.MarkProcessing(id, "working")
	repo.Complete(id, map[string]interface{}{"ok": true})

	if repo.MarkProcessing(id, "sneaky revert") {
		t.Fatal("terminal job accepted transition back to processing")
	}
	job, _ := repo.Get(id)
	if job.Status != entity.JobStatusComplete {
		t.Fatalf("Status = %s after revert attempt, want complete", job.Status)
	}

	// Overwriting the payload of a completed job is allowed
	if !repo.Complete(id, map[string]interface{}{"ok": false}) {
		t.Fatal("second Complete rejected")
	}
}

func TestJobFailFallbackMessage(t *testing.T) {
	repo := newTestJobRepo()
	id := repo.Create()

	if !repo.Fail(id, "") {
		t.Fatal("Fail failed")
	}
	job, _ := repo.Get(id)
	if job.Status != entity.JobStatusError {
		t.Fatalf("Status = %s, want error", job.Status)
	}
	if job.Error == "" {
		t.Error("failed job has empty error message, want fallback")
	}
}

func TestJobPartialUpdatePreservesFields(t *testing.T) {
	repo := newTestJobRepo()
	id := repo.Create()

	before, _ := repo.Get(id)
	created := before.CreatedAt

	progress := "step one"
	if !repo.Update(id, JobPatch{Progress: &progress}) {
		t.Fatal("progress-only update failed")
	}
	status := entity.JobStatusProcessing
	if !repo.Update(id, JobPatch{Status: &status}) {
		t.Fatal("status-only update failed")
	}

	job, _ := repo.Get(id)
	if job.Progress != "step one" {
		t.Errorf("Progress = %q, want %q (clobbered by later update)", job.Progress, "step one")
	}
	if job.Status != entity.JobStatusProcessing {
		t.Errorf("Status = %s, want processing", job.Status)
	}
	if !job.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed from %v to %v", created, job.CreatedAt)
	}
	if job.UpdatedAt == nil {
		t.Error("UpdatedAt not stamped")
	}
}
