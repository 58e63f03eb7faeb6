package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/provider"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

type fakeJobs struct {
	job          *ent.Job
	finished     *services.TerminalUpdate
	cancelFlag   bool
	inputTokens  int
	outputTokens int
}

func (f *fakeJobs) Get(_ context.Context, _ string) (*ent.Job, error) { return f.job, nil }
func (f *fakeJobs) Finish(_ context.Context, _ string, upd services.TerminalUpdate) error {
	f.finished = &upd
	return nil
}
func (f *fakeJobs) AddUsage(_ context.Context, _ string, in, out int) error {
	f.inputTokens += in
	f.outputTokens += out
	return nil
}
func (f *fakeJobs) CancelRequested(_ context.Context, _ string) (bool, error) {
	return f.cancelFlag, nil
}

type fakeMessages struct {
	msgs []models.Message
}

func (f *fakeMessages) Append(_ context.Context, _ string, role string, content []models.ContentBlock) (*ent.JobMessage, error) {
	f.msgs = append(f.msgs, models.Message{Role: role, Content: content})
	return &ent.JobMessage{Sequence: len(f.msgs)}, nil
}
func (f *fakeMessages) History(_ context.Context, _ string) ([]models.Message, error) {
	out := make([]models.Message, len(f.msgs))
	copy(out, f.msgs)
	return out, nil
}
func (f *fakeMessages) Count(_ context.Context, _ string) (int, error) { return len(f.msgs), nil }

type fakeLogs struct{}

func (fakeLogs) Append(context.Context, string, joblog.LogType, map[string]any) {}
func (fakeLogs) System(context.Context, string, string)                         {}
func (fakeLogs) Error(context.Context, string, string)                          {}

type fakeVersions struct{ v *ent.APIDefinitionVersion }

func (f *fakeVersions) GetActiveVersion(context.Context, string) (*ent.APIDefinitionVersion, error) {
	return f.v, nil
}
func (f *fakeVersions) GetVersion(context.Context, string) (*ent.APIDefinitionVersion, error) {
	return f.v, nil
}

type fakeSessions struct{ s *ent.Session }

func (f *fakeSessions) Get(context.Context, string) (*ent.Session, error) { return f.s, nil }
func (f *fakeSessions) TouchLastJobTime(context.Context, string) error { return nil }

type fakeTargets struct{ t *ent.Target }

func (f *fakeTargets) Get(context.Context, string) (*ent.Target, error) { return f.t, nil }

type fakeFacade struct {
	healthy   bool
	reason    string
	responses []*tools.SandboxResponse
	calls     []string
	onToolUse func(action string)
}

func (f *fakeFacade) ToolUse(_ context.Context, action string, _ map[string]any) (*tools.SandboxResponse, error) {
	f.calls = append(f.calls, action)
	if f.onToolUse != nil {
		f.onToolUse(action)
	}
	if len(f.responses) == 0 {
		return &tools.SandboxResponse{Output: "ok"}, nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeFacade) Healthy(context.Context) (bool, string) { return f.healthy, f.reason }

type scriptedHandler struct {
	responses []*provider.Response
	calls     int
}

func (h *scriptedHandler) Name() string { return "scripted" }
func (h *scriptedHandler) Execute(_ context.Context, _ *provider.Request) (*provider.Response, error) {
	if h.calls >= len(h.responses) {
		return nil, fmt.Errorf("handler called more often than scripted (%d)", h.calls)
	}
	resp := h.responses[h.calls]
	h.calls++
	return resp, nil
}

type loopFixture struct {
	loop    *Loop
	jobs    *fakeJobs
	msgs    *fakeMessages
	facade  *fakeFacade
	handler *scriptedHandler
}

func newLoopFixture(t *testing.T, responses []*provider.Response) *loopFixture {
	t.Helper()

	jobs := &fakeJobs{job: &ent.Job{
		ID:        "job-1",
		TargetID:  "tgt-1",
		SessionID: lo.ToPtr("sess-1"),
		APIName:   "read_balance",
		Status:    job.StatusRunning,
		Parameters: map[string]any{
			"account": "12345",
		},
	}}
	facade := &fakeFacade{healthy: true}
	handler := &scriptedHandler{responses: responses}
	msgs := &fakeMessages{}

	cfg := config.DefaultLoopConfig()
	loop := New(cfg, Deps{
		Jobs:     jobs,
		Messages: msgs,
		Logs:     fakeLogs{},
		Versions: &fakeVersions{v: &ent.APIDefinitionVersion{
			ID:              "v-1",
			VersionNumber:   1,
			Prompt:          "Read the balance for account {account}.",
			PromptCleanup:   "Log out.",
			ResponseExample: map[string]any{"balance": "1.00"},
		}},
		Sessions:  &fakeSessions{s: &ent.Session{ID: "sess-1", ContainerIP: lo.ToPtr("10.0.0.5")}},
		Targets:   &fakeTargets{t: &ent.Target{ID: "tgt-1", Width: 1024, Height: 768}},
		Handler:   handler,
		NewFacade: func(string) Facade { return facade },
	})
	return &loopFixture{loop: loop, jobs: jobs, msgs: msgs, facade: facade, handler: handler}
}

func toolUse(id, name string, input map[string]any) models.ContentBlock {
	return models.ToolUseBlock(id, name, input)
}

func TestRunHappyPathWithExtraction(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				models.TextBlock("Taking a screenshot first."),
				toolUse("t1", tools.NameComputer, map[string]any{"action": "screenshot"}),
			},
			StopReason: models.StopReasonToolUse,
			Usage:      models.Usage{InputTokens: 100, OutputTokens: 20},
		},
		{
			Content: []models.ContentBlock{
				toolUse("t2", tools.NameExtraction, map[string]any{
					"data": map[string]any{"result": map[string]any{"balance": "42.50"}},
				}),
			},
			StopReason: models.StopReasonToolUse,
			Usage:      models.Usage{InputTokens: 120, OutputTokens: 30},
		},
		{
			Content:    []models.ContentBlock{models.TextBlock("All done.")},
			StopReason: models.StopReasonEndTurn,
		},
	})
	fx.facade.responses = []*tools.SandboxResponse{{Base64Image: "c2NyZWVu"}}

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))

	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusSuccess, fx.jobs.finished.Status)
	assert.Equal(t, map[string]any{"balance": "42.50"}, fx.jobs.finished.Result)

	// initial prompt, assistant, tool_result, assistant, tool_result, assistant
	require.Len(t, fx.msgs.msgs, 6)
	assert.Equal(t, models.RoleUser, fx.msgs.msgs[0].Role)
	assert.Contains(t, fx.msgs.msgs[0].Content[0].Text, "account 12345")
	assert.True(t, fx.msgs.msgs[2].Content[0].HasImage(), "screenshot lands in the tool_result")
	assert.Equal(t, []string{"screenshot"}, fx.facade.calls)
	assert.Equal(t, 220, fx.jobs.inputTokens)
	assert.Equal(t, 50, fx.jobs.outputTokens)
}

func TestRunEndTurnWithoutExtraction(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content:    []models.ContentBlock{models.TextBlock("The balance is 42.50.")},
			StopReason: models.StopReasonEndTurn,
		},
	})

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))
	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusError, fx.jobs.finished.Status)
	assert.Equal(t, services.ErrorNoExtraction, fx.jobs.finished.Error)
}

func TestRunUIMismatchPauses(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				toolUse("t1", tools.NameUINotAsExpected, map[string]any{
					"reasoning": "Expected a login form but see an error dialog.",
				}),
			},
			StopReason: models.StopReasonToolUse,
		},
	})

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))
	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusPaused, fx.jobs.finished.Status)
	assert.Equal(t, services.ErrorUIMismatch, fx.jobs.finished.Error)
	assert.Equal(t, "Expected a login form but see an error dialog.", fx.jobs.finished.ErrorDescription)
}

func TestRunHealthGatePauses(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				toolUse("t1", tools.NameComputer, map[string]any{"action": "screenshot"}),
			},
			StopReason: models.StopReasonToolUse,
		},
	})
	fx.facade.healthy = false
	fx.facade.reason = "connection refused"

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))
	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusPaused, fx.jobs.finished.Status)
	assert.Equal(t, services.ErrorHealthCheck, fx.jobs.finished.Error)
	assert.Equal(t, "connection refused", fx.jobs.finished.ErrorDescription)
	assert.Empty(t, fx.facade.calls, "the tool never runs when the target is unhealthy")
}

func TestRunCancelRequestedAtToolBoundary(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				toolUse("t1", tools.NameComputer, map[string]any{"action": "screenshot"}),
			},
			StopReason: models.StopReasonToolUse,
		},
	})
	fx.facade.onToolUse = func(string) { fx.jobs.cancelFlag = true }

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))
	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusError, fx.jobs.finished.Status)
	assert.Equal(t, services.ErrorInterruptedByUser, fx.jobs.finished.Error)
	assert.Equal(t, 1, fx.handler.calls, "the handler is not called again after the interrupt")
}

func TestRunTokenLimitTerminates(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				toolUse("t1", tools.NameComputer, map[string]any{"action": "screenshot"}),
			},
			StopReason: models.StopReasonToolUse,
			Usage:      models.Usage{InputTokens: 900, OutputTokens: 200},
		},
	})
	fx.loop.cfg.TokenLimit = 1000

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))
	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusError, fx.jobs.finished.Status)
	assert.Equal(t, services.ErrorTokenLimit, fx.jobs.finished.Error)
	assert.Empty(t, fx.facade.calls, "no tool runs once the budget is blown")
}

func TestRunMissingToolParametersCorrects(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				// computer tool_use without the required action parameter
				toolUse("t1", tools.NameComputer, map[string]any{}),
			},
			StopReason: models.StopReasonToolUse,
		},
		{
			Content: []models.ContentBlock{
				toolUse("t2", tools.NameExtraction, map[string]any{
					"data": map[string]any{"result": map[string]any{"balance": "1.23"}},
				}),
			},
			StopReason: models.StopReasonToolUse,
		},
		{
			Content:    []models.ContentBlock{models.TextBlock("done")},
			StopReason: models.StopReasonEndTurn,
		},
	})

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))

	// the corrective tool_result went back to the model instead of failing
	// the job
	correction := fx.msgs.msgs[2]
	require.Equal(t, models.RoleUser, correction.Role)
	require.Equal(t, models.BlockTypeToolResult, correction.Content[0].Type)
	assert.True(t, correction.Content[0].IsError)
	assert.Contains(t, correction.Content[0].Content[0].Text, "missing required parameters: action")

	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusSuccess, fx.jobs.finished.Status)
	assert.Empty(t, fx.facade.calls)
}

func TestRunResumesPendingToolUses(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content:    []models.ContentBlock{models.TextBlock("nothing left")},
			StopReason: models.StopReasonEndTurn,
		},
	})
	// simulate a crash-restart: history ends on an assistant message whose
	// tool_use was never executed
	fx.msgs.msgs = []models.Message{
		{Role: models.RoleUser, Content: []models.ContentBlock{models.TextBlock("initial prompt")}},
		{Role: models.RoleAssistant, Content: []models.ContentBlock{
			models.TextBlock("pressing enter"),
			toolUse("t9", tools.NameComputer, map[string]any{"action": "key", "text": "Return"}),
		}},
	}

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))

	require.Equal(t, []string{"key"}, fx.facade.calls, "the pending tool_use runs before the next sample")
	// pending tool executed and persisted before the handler was called
	assert.Equal(t, models.BlockTypeToolResult, fx.msgs.msgs[2].Content[0].Type)
	assert.Equal(t, "t9", fx.msgs.msgs[2].Content[0].ToolUseID)
	assert.Equal(t, 1, fx.handler.calls)
}

func TestRunExtractionValidationErrorNotRecorded(t *testing.T) {
	fx := newLoopFixture(t, []*provider.Response{
		{
			Content: []models.ContentBlock{
				// balance must be a string per the response example
				toolUse("t1", tools.NameExtraction, map[string]any{
					"data": map[string]any{"result": map[string]any{"balance": 42}},
				}),
			},
			StopReason: models.StopReasonToolUse,
		},
		{
			Content:    []models.ContentBlock{models.TextBlock("giving up")},
			StopReason: models.StopReasonEndTurn,
		},
	})

	require.NoError(t, fx.loop.Run(context.Background(), "job-1"))
	require.NotNil(t, fx.jobs.finished)
	assert.Equal(t, job.StatusError, fx.jobs.finished.Status)
	assert.Equal(t, services.ErrorNoExtraction, fx.jobs.finished.Error)
}
