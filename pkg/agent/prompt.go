// Package agent runs a single job from first prompt to terminal result: it
// builds the initial prompt, drives the provider handler over the persisted
// conversation, dispatches tool calls to the sandbox, and applies the
// terminal transition.
package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/tools"
)

// SubstituteParameters fills {name} and {{name}} placeholders from the job
// parameters. A synthetic "now" parameter carries the current timestamp;
// explicit parameters win over it.
func SubstituteParameters(prompt string, params map[string]any, now time.Time) string {
	merged := map[string]any{"now": now.Format(time.RFC3339)}
	for k, v := range params {
		merged[k] = v
	}

	out := prompt
	for k, v := range merged {
		val := fmt.Sprintf("%v", v)
		out = strings.ReplaceAll(out, "{{"+k+"}}", val)
		out = strings.ReplaceAll(out, "{"+k+"}", val)
	}
	return out
}

// BuildInitialPrompt renders the first user message of a job: the API
// version's prompt with parameters substituted, followed by the extraction
// contract preamble.
func BuildInitialPrompt(apiName string, version *ent.APIDefinitionVersion, params map[string]any, now time.Time) string {
	prompt := SubstituteParameters(version.Prompt, params, now)
	preamble := tools.ExtractionPreamble(apiName, version.ResponseExample, version.PromptCleanup)
	return prompt + "\n\n" + preamble
}

// systemDateFormat renders "Monday, January 2, 2006".
const systemDateFormat = "Monday, January 2, 2006"

// SystemPrompt composes the capability prompt handed to the handler. The
// suffix, when set, is appended with a single space.
func SystemPrompt(width, height int, suffix string, now time.Time) string {
	var b strings.Builder
	b.WriteString("<SYSTEM_CAPABILITY>\n")
	fmt.Fprintf(&b, "* You are controlling a remote computer with a %dx%d display through the computer tool.\n", width, height)
	b.WriteString("* Take a screenshot before your first action and after every action whose outcome you cannot otherwise verify.\n")
	b.WriteString("* Click precisely: aim at the center of the element you are targeting.\n")
	b.WriteString("* Key names follow X conventions: Return, Escape, Super_L for the system key, and ctrl+c style combinations.\n")
	b.WriteString("* After each tool call the target's health is verified; a failing target pauses the job, so do not retry failed actions blindly.\n")
	b.WriteString("* You MUST report results by calling the extraction tool exactly once; plain text answers are discarded.\n")
	b.WriteString("* If the interface does not match what the task describes, call ui_not_as_expected instead of improvising.\n")
	b.WriteString("* Chain independent tool calls in a single response where possible; they are executed in order.\n")
	fmt.Fprintf(&b, "* The current date is %s.\n", now.Format(systemDateFormat))
	b.WriteString("</SYSTEM_CAPABILITY>")
	if suffix != "" {
		b.WriteString(" ")
		b.WriteString(suffix)
	}
	return b.String()
}
