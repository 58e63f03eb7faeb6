// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIDefinitionsColumns holds the columns for the "api_definitions" table.
	APIDefinitionsColumns = []*schema.Column{
		{Name: "api_definition_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIDefinitionsTable holds the schema information for the "api_definitions" table.
	APIDefinitionsTable = &schema.Table{
		Name:       "api_definitions",
		Columns:    APIDefinitionsColumns,
		PrimaryKey: []*schema.Column{APIDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apidefinition_is_archived",
				Unique:  false,
				Columns: []*schema.Column{APIDefinitionsColumns[3]},
			},
		},
	}
	// APIDefinitionVersionsColumns holds the columns for the "api_definition_versions" table.
	APIDefinitionVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "version_number", Type: field.TypeInt},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "prompt_cleanup", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_example", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "api_definition_id", Type: field.TypeString},
	}
	// APIDefinitionVersionsTable holds the schema information for the "api_definition_versions" table.
	APIDefinitionVersionsTable = &schema.Table{
		Name:       "api_definition_versions",
		Columns:    APIDefinitionVersionsColumns,
		PrimaryKey: []*schema.Column{APIDefinitionVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_definition_versions_api_definitions_versions",
				Columns:    []*schema.Column{APIDefinitionVersionsColumns[8]},
				RefColumns: []*schema.Column{APIDefinitionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apidefinitionversion_api_definition_id_version_number",
				Unique:  true,
				Columns: []*schema.Column{APIDefinitionVersionsColumns[8], APIDefinitionVersionsColumns[1]},
			},
			{
				Name:    "apidefinitionversion_api_definition_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{APIDefinitionVersionsColumns[8], APIDefinitionVersionsColumns[6]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "api_name", Type: field.TypeString},
		{Name: "api_definition_version_id", Type: field.TypeString, Nullable: true},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "paused", "success", "error", "canceled"}, Default: "queued"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "target_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_targets_jobs",
				Columns:    []*schema.Column{JobsColumns[17]},
				RefColumns: []*schema.Column{TargetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
			{
				Name:    "job_target_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[17], JobsColumns[5]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[14]},
			},
			{
				Name:    "job_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[12]},
			},
		},
	}
	// JobLogsColumns holds the columns for the "job_logs" table.
	JobLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "log_type", Type: field.TypeEnum, Enums: []string{"system", "http_exchange", "tool_use", "message", "result", "error"}},
		{Name: "content", Type: field.TypeJSON},
		{Name: "content_trimmed", Type: field.TypeJSON},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobLogsTable holds the schema information for the "job_logs" table.
	JobLogsTable = &schema.Table{
		Name:       "job_logs",
		Columns:    JobLogsColumns,
		PrimaryKey: []*schema.Column{JobLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_logs_jobs_logs",
				Columns:    []*schema.Column{JobLogsColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "joblog_job_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{JobLogsColumns[5], JobLogsColumns[1]},
			},
			{
				Name:    "joblog_log_type",
				Unique:  false,
				Columns: []*schema.Column{JobLogsColumns[2]},
			},
			{
				Name:    "joblog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{JobLogsColumns[1]},
			},
		},
	}
	// JobMessagesColumns holds the columns for the "job_messages" table.
	JobMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "message_content", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobMessagesTable holds the schema information for the "job_messages" table.
	JobMessagesTable = &schema.Table{
		Name:       "job_messages",
		Columns:    JobMessagesColumns,
		PrimaryKey: []*schema.Column{JobMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_messages_jobs_messages",
				Columns:    []*schema.Column{JobMessagesColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobmessage_job_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{JobMessagesColumns[5], JobMessagesColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"initializing", "authenticating", "ready", "destroying", "destroyed"}, Default: "initializing"},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "container_id", Type: field.TypeString, Nullable: true},
		{Name: "container_ip", Type: field.TypeString, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "archive_reason", Type: field.TypeEnum, Nullable: true, Enums: []string{"user_initiated", "auto_cleanup"}},
		{Name: "last_job_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "target_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_targets_sessions",
				Columns:    []*schema.Column{SessionsColumns[10]},
				RefColumns: []*schema.Column{TargetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_target_id_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[10], SessionsColumns[1]},
			},
			{
				Name:    "session_is_archived_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5], SessionsColumns[1]},
			},
		},
	}
	// TargetsColumns holds the columns for the "targets" table.
	TargetsColumns = []*schema.Column{
		{Name: "target_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "host", Type: field.TypeString},
		{Name: "port", Type: field.TypeInt, Nullable: true},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "password", Type: field.TypeString},
		{Name: "vpn_config", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "vpn_username", Type: field.TypeString, Nullable: true},
		{Name: "vpn_password", Type: field.TypeString, Nullable: true},
		{Name: "width", Type: field.TypeInt, Default: 1024},
		{Name: "height", Type: field.TypeInt, Default: 768},
		{Name: "rdp_params", Type: field.TypeString, Nullable: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TargetsTable holds the schema information for the "targets" table.
	TargetsTable = &schema.Table{
		Name:       "targets",
		Columns:    TargetsColumns,
		PrimaryKey: []*schema.Column{TargetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "target_is_archived",
				Unique:  false,
				Columns: []*schema.Column{TargetsColumns[13]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "host", Type: field.TypeString, Unique: true},
		{Name: "schema", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "clerk_user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_is_active",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[4]},
			},
		},
	}
	// TenantSettingsColumns holds the columns for the "tenant_settings" table.
	TenantSettingsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantSettingsTable holds the schema information for the "tenant_settings" table.
	TenantSettingsTable = &schema.Table{
		Name:       "tenant_settings",
		Columns:    TenantSettingsColumns,
		PrimaryKey: []*schema.Column{TenantSettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIDefinitionsTable,
		APIDefinitionVersionsTable,
		JobsTable,
		JobLogsTable,
		JobMessagesTable,
		SessionsTable,
		TargetsTable,
		TenantsTable,
		TenantSettingsTable,
	}
)

func init() {
	APIDefinitionVersionsTable.ForeignKeys[0].RefTable = APIDefinitionsTable
	JobsTable.ForeignKeys[0].RefTable = TargetsTable
	JobLogsTable.ForeignKeys[0].RefTable = JobsTable
	JobMessagesTable.ForeignKeys[0].RefTable = JobsTable
	SessionsTable.ForeignKeys[0].RefTable = TargetsTable
}
