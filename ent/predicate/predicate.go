// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIDefinition is the predicate function for apidefinition builders.
type APIDefinition func(*sql.Selector)

// APIDefinitionVersion is the predicate function for apidefinitionversion builders.
type APIDefinitionVersion func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobLog is the predicate function for joblog builders.
type JobLog func(*sql.Selector)

// JobMessage is the predicate function for jobmessage builders.
type JobMessage func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Target is the predicate function for target builders.
type Target func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// TenantSetting is the predicate function for tenantsetting builders.
type TenantSetting func(*sql.Selector)
