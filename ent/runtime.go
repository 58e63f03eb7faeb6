// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/ent/schema"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/ent/target"
	"github.com/legacyuse/orchestrator/ent/tenant"
	"github.com/legacyuse/orchestrator/ent/tenantsetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apidefinitionFields := schema.APIDefinition{}.Fields()
	_ = apidefinitionFields
	// apidefinitionDescIsArchived is the schema descriptor for is_archived field.
	apidefinitionDescIsArchived := apidefinitionFields[3].Descriptor()
	// apidefinition.DefaultIsArchived holds the default value on creation for the is_archived field.
	apidefinition.DefaultIsArchived = apidefinitionDescIsArchived.Default.(bool)
	// apidefinitionDescCreatedAt is the schema descriptor for created_at field.
	apidefinitionDescCreatedAt := apidefinitionFields[4].Descriptor()
	// apidefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	apidefinition.DefaultCreatedAt = apidefinitionDescCreatedAt.Default.(func() time.Time)
	apidefinitionversionFields := schema.APIDefinitionVersion{}.Fields()
	_ = apidefinitionversionFields
	// apidefinitionversionDescIsActive is the schema descriptor for is_active field.
	apidefinitionversionDescIsActive := apidefinitionversionFields[7].Descriptor()
	// apidefinitionversion.DefaultIsActive holds the default value on creation for the is_active field.
	apidefinitionversion.DefaultIsActive = apidefinitionversionDescIsActive.Default.(bool)
	// apidefinitionversionDescCreatedAt is the schema descriptor for created_at field.
	apidefinitionversionDescCreatedAt := apidefinitionversionFields[8].Descriptor()
	// apidefinitionversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	apidefinitionversion.DefaultCreatedAt = apidefinitionversionDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	jobDescTotalInputTokens := jobFields[10].Descriptor()
	// job.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	job.DefaultTotalInputTokens = jobDescTotalInputTokens.Default.(int)
	// jobDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	jobDescTotalOutputTokens := jobFields[11].Descriptor()
	// job.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	job.DefaultTotalOutputTokens = jobDescTotalOutputTokens.Default.(int)
	// jobDescCancelRequested is the schema descriptor for cancel_requested field.
	jobDescCancelRequested := jobFields[14].Descriptor()
	// job.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	job.DefaultCancelRequested = jobDescCancelRequested.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[15].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[16].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	joblogFields := schema.JobLog{}.Fields()
	_ = joblogFields
	// joblogDescTimestamp is the schema descriptor for timestamp field.
	joblogDescTimestamp := joblogFields[2].Descriptor()
	// joblog.DefaultTimestamp holds the default value on creation for the timestamp field.
	joblog.DefaultTimestamp = joblogDescTimestamp.Default.(func() time.Time)
	jobmessageFields := schema.JobMessage{}.Fields()
	_ = jobmessageFields
	// jobmessageDescCreatedAt is the schema descriptor for created_at field.
	jobmessageDescCreatedAt := jobmessageFields[5].Descriptor()
	// jobmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobmessage.DefaultCreatedAt = jobmessageDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescIsArchived is the schema descriptor for is_archived field.
	sessionDescIsArchived := sessionFields[6].Descriptor()
	// session.DefaultIsArchived holds the default value on creation for the is_archived field.
	session.DefaultIsArchived = sessionDescIsArchived.Default.(bool)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[9].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[10].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	targetFields := schema.Target{}.Fields()
	_ = targetFields
	// targetDescWidth is the schema descriptor for width field.
	targetDescWidth := targetFields[10].Descriptor()
	// target.DefaultWidth holds the default value on creation for the width field.
	target.DefaultWidth = targetDescWidth.Default.(int)
	// targetDescHeight is the schema descriptor for height field.
	targetDescHeight := targetFields[11].Descriptor()
	// target.DefaultHeight holds the default value on creation for the height field.
	target.DefaultHeight = targetDescHeight.Default.(int)
	// targetDescIsArchived is the schema descriptor for is_archived field.
	targetDescIsArchived := targetFields[13].Descriptor()
	// target.DefaultIsArchived holds the default value on creation for the is_archived field.
	target.DefaultIsArchived = targetDescIsArchived.Default.(bool)
	// targetDescCreatedAt is the schema descriptor for created_at field.
	targetDescCreatedAt := targetFields[14].Descriptor()
	// target.DefaultCreatedAt holds the default value on creation for the created_at field.
	target.DefaultCreatedAt = targetDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescIsActive is the schema descriptor for is_active field.
	tenantDescIsActive := tenantFields[4].Descriptor()
	// tenant.DefaultIsActive holds the default value on creation for the is_active field.
	tenant.DefaultIsActive = tenantDescIsActive.Default.(bool)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[6].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	tenantsettingFields := schema.TenantSetting{}.Fields()
	_ = tenantsettingFields
	// tenantsettingDescUpdatedAt is the schema descriptor for updated_at field.
	tenantsettingDescUpdatedAt := tenantsettingFields[2].Descriptor()
	// tenantsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantsetting.DefaultUpdatedAt = tenantsettingDescUpdatedAt.Default.(func() time.Time)
	// tenantsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantsetting.UpdateDefaultUpdatedAt = tenantsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
