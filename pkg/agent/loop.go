package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/provider"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

// JobStore is the job-side persistence the loop needs. Implemented by
// services.JobService.
type JobStore interface {
	Get(ctx context.Context, id string) (*ent.Job, error)
	Finish(ctx context.Context, jobID string, upd services.TerminalUpdate) error
	AddUsage(ctx context.Context, jobID string, inputTokens, outputTokens int) error
	CancelRequested(ctx context.Context, jobID string) (bool, error)
}

// MessageStore persists the conversation. Implemented by
// services.MessageService.
type MessageStore interface {
	Append(ctx context.Context, jobID, role string, content []models.ContentBlock) (*ent.JobMessage, error)
	History(ctx context.Context, jobID string) ([]models.Message, error)
	Count(ctx context.Context, jobID string) (int, error)
}

// LogSink receives the job narrative. Implemented by services.LogService.
type LogSink interface {
	Append(ctx context.Context, jobID string, logType joblog.LogType, content map[string]any)
	System(ctx context.Context, jobID, message string)
	Error(ctx context.Context, jobID, message string)
}

// VersionStore resolves API definition versions. Implemented by
// services.APIService.
type VersionStore interface {
	GetActiveVersion(ctx context.Context, apiName string) (*ent.APIDefinitionVersion, error)
	GetVersion(ctx context.Context, id string) (*ent.APIDefinitionVersion, error)
}

// SessionStore reads sessions and stamps their idle clock. Implemented by
// services.SessionService.
type SessionStore interface {
	Get(ctx context.Context, id string) (*ent.Session, error)
	TouchLastJobTime(ctx context.Context, id string) error
}

// TargetStore reads targets. Implemented by services.TargetService.
type TargetStore interface {
	Get(ctx context.Context, id string) (*ent.Target, error)
}

// Facade is the sandbox surface of one session: tool forwarding plus the
// health probe. Implemented by sandbox.FacadeClient.
type Facade interface {
	tools.SandboxCaller
	Healthy(ctx context.Context) (bool, string)
}

// FacadeFactory builds the facade for a session's container IP.
type FacadeFactory func(containerIP string) Facade

// Deps wires the loop's collaborators.
type Deps struct {
	Jobs      JobStore
	Messages  MessageStore
	Logs      LogSink
	Versions  VersionStore
	Sessions  SessionStore
	Targets   TargetStore
	Handler   provider.Handler
	Settings  provider.Settings
	NewFacade FacadeFactory
}

// Loop runs jobs. One Loop serves one tenant worker; Run is invoked once per
// claimed job.
type Loop struct {
	cfg  *config.LoopConfig
	deps Deps
}

// New creates a sampling loop.
func New(cfg *config.LoopConfig, deps Deps) *Loop {
	return &Loop{cfg: cfg, deps: deps}
}

// Run executes one claimed job to a terminal (or paused) state. Business
// outcomes are written through Finish and return nil; a non-nil error means
// infrastructure failed and the job's fate is decided by the lease reaper.
func (l *Loop) Run(ctx context.Context, jobID string) error {
	j, err := l.deps.Jobs.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("loading job: %w", err)
	}

	version, err := l.resolveVersion(ctx, j)
	if err != nil {
		return l.failJob(ctx, jobID, "API version could not be resolved", err.Error())
	}
	if j.SessionID == nil {
		return l.failJob(ctx, jobID, "Job has no session bound", "")
	}
	sess, err := l.deps.Sessions.Get(ctx, *j.SessionID)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if sess.ContainerIP == nil || *sess.ContainerIP == "" {
		return l.failJob(ctx, jobID, "Session has no container address", "")
	}
	target, err := l.deps.Targets.Get(ctx, j.TargetID)
	if err != nil {
		return fmt.Errorf("loading target: %w", err)
	}

	facade := l.deps.NewFacade(*sess.ContainerIP)
	registry := l.buildRegistry(version, target, facade)
	system := SystemPrompt(target.Width, target.Height, l.cfg.SystemPromptSuffix, time.Now())

	count, err := l.deps.Messages.Count(ctx, jobID)
	if err != nil {
		return fmt.Errorf("counting messages: %w", err)
	}
	if count == 0 {
		initial := BuildInitialPrompt(j.APIName, version, j.Parameters, time.Now())
		if _, err := l.deps.Messages.Append(ctx, jobID, models.RoleUser,
			[]models.ContentBlock{models.TextBlock(initial)}); err != nil {
			return fmt.Errorf("persisting initial prompt: %w", err)
		}
		l.deps.Logs.System(ctx, jobID, "Initial prompt built from API version "+strconv.Itoa(version.VersionNumber))
	}

	_ = l.deps.Sessions.TouchLastJobTime(ctx, sess.ID)
	defer func() { _ = l.deps.Sessions.TouchLastJobTime(ctx, sess.ID) }()

	run := &jobRun{
		loop:       l,
		jobID:      jobID,
		sessionID:  sess.ID,
		system:     system,
		registry:   registry,
		facade:     facade,
		tokenLimit: l.tokenLimit(ctx),
	}

	pending, err := run.pendingToolUses(ctx)
	if err != nil {
		return err
	}
	return run.iterate(ctx, pending)
}

// resolveVersion prefers the version pinned on the job, falling back to the
// API's active version.
func (l *Loop) resolveVersion(ctx context.Context, j *ent.Job) (*ent.APIDefinitionVersion, error) {
	if j.APIDefinitionVersionID != nil && *j.APIDefinitionVersionID != "" {
		return l.deps.Versions.GetVersion(ctx, *j.APIDefinitionVersionID)
	}
	return l.deps.Versions.GetActiveVersion(ctx, j.APIName)
}

func (l *Loop) buildRegistry(version *ent.APIDefinitionVersion, target *ent.Target, facade Facade) *tools.Registry {
	computer := tools.NewComputerTool(l.cfg.ToolVersion, target.Width, target.Height, facade)
	set := []tools.Tool{
		computer,
		tools.NewExtractionTool(version.ResponseExample),
		tools.NewUINotAsExpectedTool(),
	}
	if len(l.cfg.CustomActions) > 0 {
		recordings := make(map[string][]tools.RecordedStep, len(l.cfg.CustomActions))
		for name, steps := range l.cfg.CustomActions {
			recordings[name] = lo.Map(steps, func(s config.RecordedStep, _ int) tools.RecordedStep {
				return tools.RecordedStep{Action: s.Action, Params: s.Params}
			})
		}
		set = append(set, tools.NewCustomActionTool(recordings, computer))
	}
	return tools.NewRegistry(set...)
}

// tokenLimit resolves the job budget: the tenant setting wins over the static
// config; zero disables the budget.
func (l *Loop) tokenLimit(ctx context.Context) int {
	if l.deps.Settings != nil {
		if raw, err := l.deps.Settings.Get(ctx, services.SettingTokenLimit); err == nil && raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				return v
			}
		}
	}
	return l.cfg.TokenLimit
}

// failJob stamps a terminal error outside the normal iteration path.
func (l *Loop) failJob(ctx context.Context, jobID, errMsg, description string) error {
	l.deps.Logs.Error(ctx, jobID, errMsg)
	return l.deps.Jobs.Finish(ctx, jobID, services.TerminalUpdate{
		Status:           job.StatusError,
		Error:            errMsg,
		ErrorDescription: description,
	})
}

// jobRun carries the per-run state of one job execution.
type jobRun struct {
	loop       *Loop
	jobID      string
	sessionID  string
	system     string
	registry   *tools.Registry
	facade     Facade
	tokenLimit int

	weightedTokens int
	extraction     map[string]any
	haveExtraction bool
}

// pendingToolUses detects a crash-restart artifact: a trailing assistant
// message whose tool_use blocks were never executed. Those run before the
// handler is called again.
func (r *jobRun) pendingToolUses(ctx context.Context) ([]models.ContentBlock, error) {
	history, err := r.loop.deps.Messages.History(ctx, r.jobID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if len(history) == 0 {
		return nil, nil
	}
	last := history[len(history)-1]
	if last.Role != models.RoleAssistant {
		return nil, nil
	}
	uses := lo.Filter(last.Content, func(b models.ContentBlock, _ int) bool {
		return b.Type == models.BlockTypeToolUse
	})
	if len(uses) > 0 {
		r.loop.deps.Logs.System(ctx, r.jobID, "Resuming with pending tool calls from previous run")
	}
	return uses, nil
}

// iterate is the sampling loop proper.
func (r *jobRun) iterate(ctx context.Context, pending []models.ContentBlock) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			toolUses []models.ContentBlock
			stop     string
		)
		if len(pending) > 0 {
			toolUses, stop = pending, models.StopReasonToolUse
			pending = nil
		} else {
			resp, err := r.sample(ctx)
			if err != nil {
				return err
			}
			if resp == nil {
				// terminal transition already written
				return nil
			}
			toolUses = lo.Filter(resp.Content, func(b models.ContentBlock, _ int) bool {
				return b.Type == models.BlockTypeToolUse
			})
			stop = resp.StopReason
		}

		for _, use := range toolUses {
			done, err := r.dispatch(ctx, use)
			if err != nil || done {
				return err
			}
		}

		if stop == models.StopReasonEndTurn {
			return r.finishTurn(ctx)
		}
	}
}

// sample performs one handler call with pruned, cache-hinted history and
// persists the assistant reply. A nil response with nil error means the run
// ended (token budget).
func (r *jobRun) sample(ctx context.Context) (*provider.Response, error) {
	deps := r.loop.deps
	cfg := r.loop.cfg

	history, err := deps.Messages.History(ctx, r.jobID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	pruned := PruneScreenshots(history, cfg.OnlyNMostRecentImages, cfg.MinRemovalThreshold)

	resp, err := deps.Handler.Execute(ctx, &provider.Request{
		Model:       cfg.Model,
		System:      r.system,
		Messages:    ApplyCacheBreakpoints(pruned),
		Tools:       r.registry.Specs(),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		ToolVersion: cfg.ToolVersion,
	})
	if err != nil {
		deps.Logs.Error(ctx, r.jobID, "Provider request failed: "+err.Error())
		return nil, deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
			Status:           job.StatusError,
			Error:            "Provider request failed",
			ErrorDescription: err.Error(),
		})
	}

	deps.Logs.Append(ctx, r.jobID, joblog.LogTypeHTTPExchange, map[string]any{
		"request":  resp.RawRequest,
		"response": resp.RawResponse,
	})

	inputTotal := resp.Usage.InputTokens + resp.Usage.CacheCreationInputTokens + resp.Usage.CacheReadInputTokens
	if err := deps.Jobs.AddUsage(ctx, r.jobID, inputTotal, resp.Usage.OutputTokens); err != nil {
		slog.Warn("Failed to record job usage", "job_id", r.jobID, "error", err)
	}
	r.weightedTokens += resp.Usage.WeightedTotal()
	if r.tokenLimit > 0 && r.weightedTokens > r.tokenLimit {
		deps.Logs.Error(ctx, r.jobID, services.ErrorTokenLimit)
		return nil, deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
			Status: job.StatusError,
			Error:  services.ErrorTokenLimit,
			ErrorDescription: fmt.Sprintf("weighted token usage %d exceeded limit %d",
				r.weightedTokens, r.tokenLimit),
		})
	}

	if _, err := deps.Messages.Append(ctx, r.jobID, models.RoleAssistant, resp.Content); err != nil {
		return nil, fmt.Errorf("persisting assistant message: %w", err)
	}
	deps.Logs.Append(ctx, r.jobID, joblog.LogTypeMessage, map[string]any{
		"role":        models.RoleAssistant,
		"stop_reason": resp.StopReason,
	})
	return resp, nil
}

// dispatch executes one tool_use: health gate, input validation, execution,
// result persistence, and the terminal tool semantics. done=true ends the
// run with its transition already written.
func (r *jobRun) dispatch(ctx context.Context, use models.ContentBlock) (done bool, err error) {
	deps := r.loop.deps

	if healthy, reason := r.facade.Healthy(ctx); !healthy {
		deps.Logs.Error(ctx, r.jobID, services.ErrorHealthCheck+": "+reason)
		return true, deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
			Status:           job.StatusPaused,
			Error:            services.ErrorHealthCheck,
			ErrorDescription: reason,
		})
	}

	tool, ok := r.registry.Get(use.Name)
	if !ok {
		return false, r.appendToolResult(ctx, use.ID,
			[]models.ContentBlock{models.TextBlock(fmt.Sprintf("The tool %s does not exist.", use.Name))}, true)
	}
	if msg := tools.ValidateInput(tool.Spec(), use.Input); msg != "" {
		return false, r.appendToolResult(ctx, use.ID,
			[]models.ContentBlock{models.TextBlock(msg)}, true)
	}

	toolCtx, cancel := context.WithTimeout(ctx, r.loop.cfg.ToolTimeout)
	result, execErr := tool.Execute(toolCtx, use.Input)
	cancel()
	if execErr != nil {
		deps.Logs.Error(ctx, r.jobID, fmt.Sprintf("Tool %s failed: %v", use.Name, execErr))
		if err := r.appendToolResult(ctx, use.ID,
			[]models.ContentBlock{models.TextBlock(fmt.Sprintf("The tool %s failed! Reason: %v", use.Name, execErr))},
			true); err != nil {
			return true, err
		}
		return r.checkCancel(ctx)
	}

	blocks, isError := resultBlocks(result)
	if err := r.appendToolResult(ctx, use.ID, blocks, isError); err != nil {
		return true, err
	}
	deps.Logs.Append(ctx, r.jobID, joblog.LogTypeToolUse, map[string]any{
		"tool":         use.Name,
		"input":        use.Input,
		"output":       result.Output,
		"base64_image": result.Base64Image,
		"error":        result.Error,
	})

	switch use.Name {
	case tools.NameUINotAsExpected:
		reasoning, _ := use.Input["reasoning"].(string)
		deps.Logs.Error(ctx, r.jobID, services.ErrorUIMismatch)
		return true, deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
			Status:           job.StatusPaused,
			Error:            services.ErrorUIMismatch,
			ErrorDescription: reasoning,
		})

	case tools.NameExtraction:
		if !isError {
			if data, ok := use.Input["data"].(map[string]any); ok {
				r.extraction = asResultMap(tools.ExtractionPayload(data))
				r.haveExtraction = true
			}
		}
	}

	return r.checkCancel(ctx)
}

// checkCancel applies a requested cancellation at the tool boundary.
func (r *jobRun) checkCancel(ctx context.Context) (bool, error) {
	deps := r.loop.deps
	requested, err := deps.Jobs.CancelRequested(ctx, r.jobID)
	if err != nil {
		return true, fmt.Errorf("checking cancel flag: %w", err)
	}
	if !requested {
		return false, nil
	}
	deps.Logs.System(ctx, r.jobID, services.ErrorInterruptedByUser)
	return true, deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
		Status: job.StatusError,
		Error:  services.ErrorInterruptedByUser,
	})
}

// finishTurn closes an end_turn: success with the recorded extraction, or an
// error when the model never extracted anything.
func (r *jobRun) finishTurn(ctx context.Context) error {
	deps := r.loop.deps
	if r.haveExtraction {
		deps.Logs.Append(ctx, r.jobID, joblog.LogTypeResult, map[string]any{"result": r.extraction})
		return deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
			Status: job.StatusSuccess,
			Result: r.extraction,
		})
	}
	deps.Logs.Error(ctx, r.jobID, services.ErrorNoExtraction)
	return deps.Jobs.Finish(ctx, r.jobID, services.TerminalUpdate{
		Status: job.StatusError,
		Error:  services.ErrorNoExtraction,
	})
}

func (r *jobRun) appendToolResult(ctx context.Context, toolUseID string, content []models.ContentBlock, isError bool) error {
	_, err := r.loop.deps.Messages.Append(ctx, r.jobID, models.RoleUser,
		[]models.ContentBlock{models.ToolResultBlock(toolUseID, content, isError)})
	if err != nil {
		return fmt.Errorf("persisting tool result: %w", err)
	}
	return nil
}

// resultBlocks converts a tool result into tool_result content.
func resultBlocks(result *tools.Result) ([]models.ContentBlock, bool) {
	if result.Error != "" {
		return []models.ContentBlock{models.TextBlock(result.Error)}, true
	}
	var blocks []models.ContentBlock
	if result.Output != "" {
		blocks = append(blocks, models.TextBlock(result.Output))
	}
	if result.Base64Image != "" {
		blocks = append(blocks, models.ImageBlock(result.Base64Image))
	}
	if len(blocks) == 0 {
		blocks = append(blocks, models.TextBlock("ok"))
	}
	return blocks, false
}

// asResultMap shapes an extraction payload for the jobs.result column.
func asResultMap(payload any) map[string]any {
	if m, ok := payload.(map[string]any); ok {
		return m
	}
	return map[string]any{"result": payload}
}
