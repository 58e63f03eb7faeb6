// Code generated by ent, DO NOT EDIT.

package target

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldName, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldType, v))
}

// Host applies equality check predicate on the "host" field. It's identical to HostEQ.
func Host(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldHost, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldPort, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldUsername, v))
}

// Password applies equality check predicate on the "password" field. It's identical to PasswordEQ.
func Password(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldPassword, v))
}

// VpnConfig applies equality check predicate on the "vpn_config" field. It's identical to VpnConfigEQ.
func VpnConfig(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldVpnConfig, v))
}

// VpnUsername applies equality check predicate on the "vpn_username" field. It's identical to VpnUsernameEQ.
func VpnUsername(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldVpnUsername, v))
}

// VpnPassword applies equality check predicate on the "vpn_password" field. It's identical to VpnPasswordEQ.
func VpnPassword(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldVpnPassword, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldHeight, v))
}

// RdpParams applies equality check predicate on the "rdp_params" field. It's identical to RdpParamsEQ.
func RdpParams(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldRdpParams, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldIsArchived, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldType, v))
}

// HostEQ applies the EQ predicate on the "host" field.
func HostEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldHost, v))
}

// HostNEQ applies the NEQ predicate on the "host" field.
func HostNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldHost, v))
}

// HostIn applies the In predicate on the "host" field.
func HostIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldHost, vs...))
}

// HostNotIn applies the NotIn predicate on the "host" field.
func HostNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldHost, vs...))
}

// HostGT applies the GT predicate on the "host" field.
func HostGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldHost, v))
}

// HostGTE applies the GTE predicate on the "host" field.
func HostGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldHost, v))
}

// HostLT applies the LT predicate on the "host" field.
func HostLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldHost, v))
}

// HostLTE applies the LTE predicate on the "host" field.
func HostLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldHost, v))
}

// HostContains applies the Contains predicate on the "host" field.
func HostContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldHost, v))
}

// HostHasPrefix applies the HasPrefix predicate on the "host" field.
func HostHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldHost, v))
}

// HostHasSuffix applies the HasSuffix predicate on the "host" field.
func HostHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldHost, v))
}

// HostEqualFold applies the EqualFold predicate on the "host" field.
func HostEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldHost, v))
}

// HostContainsFold applies the ContainsFold predicate on the "host" field.
func HostContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldHost, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldPort, v))
}

// PortIsNil applies the IsNil predicate on the "port" field.
func PortIsNil() predicate.Target {
	return predicate.Target(sql.FieldIsNull(FieldPort))
}

// PortNotNil applies the NotNil predicate on the "port" field.
func PortNotNil() predicate.Target {
	return predicate.Target(sql.FieldNotNull(FieldPort))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.Target {
	return predicate.Target(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.Target {
	return predicate.Target(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldUsername, v))
}

// PasswordEQ applies the EQ predicate on the "password" field.
func PasswordEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldPassword, v))
}

// PasswordNEQ applies the NEQ predicate on the "password" field.
func PasswordNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldPassword, v))
}

// PasswordIn applies the In predicate on the "password" field.
func PasswordIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldPassword, vs...))
}

// PasswordNotIn applies the NotIn predicate on the "password" field.
func PasswordNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldPassword, vs...))
}

// PasswordGT applies the GT predicate on the "password" field.
func PasswordGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldPassword, v))
}

// PasswordGTE applies the GTE predicate on the "password" field.
func PasswordGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldPassword, v))
}

// PasswordLT applies the LT predicate on the "password" field.
func PasswordLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldPassword, v))
}

// PasswordLTE applies the LTE predicate on the "password" field.
func PasswordLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldPassword, v))
}

// PasswordContains applies the Contains predicate on the "password" field.
func PasswordContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldPassword, v))
}

// PasswordHasPrefix applies the HasPrefix predicate on the "password" field.
func PasswordHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldPassword, v))
}

// PasswordHasSuffix applies the HasSuffix predicate on the "password" field.
func PasswordHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldPassword, v))
}

// PasswordEqualFold applies the EqualFold predicate on the "password" field.
func PasswordEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldPassword, v))
}

// PasswordContainsFold applies the ContainsFold predicate on the "password" field.
func PasswordContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldPassword, v))
}

// VpnConfigEQ applies the EQ predicate on the "vpn_config" field.
func VpnConfigEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldVpnConfig, v))
}

// VpnConfigNEQ applies the NEQ predicate on the "vpn_config" field.
func VpnConfigNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldVpnConfig, v))
}

// VpnConfigIn applies the In predicate on the "vpn_config" field.
func VpnConfigIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldVpnConfig, vs...))
}

// VpnConfigNotIn applies the NotIn predicate on the "vpn_config" field.
func VpnConfigNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldVpnConfig, vs...))
}

// VpnConfigGT applies the GT predicate on the "vpn_config" field.
func VpnConfigGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldVpnConfig, v))
}

// VpnConfigGTE applies the GTE predicate on the "vpn_config" field.
func VpnConfigGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldVpnConfig, v))
}

// VpnConfigLT applies the LT predicate on the "vpn_config" field.
func VpnConfigLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldVpnConfig, v))
}

// VpnConfigLTE applies the LTE predicate on the "vpn_config" field.
func VpnConfigLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldVpnConfig, v))
}

// VpnConfigContains applies the Contains predicate on the "vpn_config" field.
func VpnConfigContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldVpnConfig, v))
}

// VpnConfigHasPrefix applies the HasPrefix predicate on the "vpn_config" field.
func VpnConfigHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldVpnConfig, v))
}

// VpnConfigHasSuffix applies the HasSuffix predicate on the "vpn_config" field.
func VpnConfigHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldVpnConfig, v))
}

// VpnConfigIsNil applies the IsNil predicate on the "vpn_config" field.
func VpnConfigIsNil() predicate.Target {
	return predicate.Target(sql.FieldIsNull(FieldVpnConfig))
}

// VpnConfigNotNil applies the NotNil predicate on the "vpn_config" field.
func VpnConfigNotNil() predicate.Target {
	return predicate.Target(sql.FieldNotNull(FieldVpnConfig))
}

// VpnConfigEqualFold applies the EqualFold predicate on the "vpn_config" field.
func VpnConfigEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldVpnConfig, v))
}

// VpnConfigContainsFold applies the ContainsFold predicate on the "vpn_config" field.
func VpnConfigContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldVpnConfig, v))
}

// VpnUsernameEQ applies the EQ predicate on the "vpn_username" field.
func VpnUsernameEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldVpnUsername, v))
}

// VpnUsernameNEQ applies the NEQ predicate on the "vpn_username" field.
func VpnUsernameNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldVpnUsername, v))
}

// VpnUsernameIn applies the In predicate on the "vpn_username" field.
func VpnUsernameIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldVpnUsername, vs...))
}

// VpnUsernameNotIn applies the NotIn predicate on the "vpn_username" field.
func VpnUsernameNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldVpnUsername, vs...))
}

// VpnUsernameGT applies the GT predicate on the "vpn_username" field.
func VpnUsernameGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldVpnUsername, v))
}

// VpnUsernameGTE applies the GTE predicate on the "vpn_username" field.
func VpnUsernameGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldVpnUsername, v))
}

// VpnUsernameLT applies the LT predicate on the "vpn_username" field.
func VpnUsernameLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldVpnUsername, v))
}

// VpnUsernameLTE applies the LTE predicate on the "vpn_username" field.
func VpnUsernameLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldVpnUsername, v))
}

// VpnUsernameContains applies the Contains predicate on the "vpn_username" field.
func VpnUsernameContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldVpnUsername, v))
}

// VpnUsernameHasPrefix applies the HasPrefix predicate on the "vpn_username" field.
func VpnUsernameHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldVpnUsername, v))
}

// VpnUsernameHasSuffix applies the HasSuffix predicate on the "vpn_username" field.
func VpnUsernameHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldVpnUsername, v))
}

// VpnUsernameIsNil applies the IsNil predicate on the "vpn_username" field.
func VpnUsernameIsNil() predicate.Target {
	return predicate.Target(sql.FieldIsNull(FieldVpnUsername))
}

// VpnUsernameNotNil applies the NotNil predicate on the "vpn_username" field.
func VpnUsernameNotNil() predicate.Target {
	return predicate.Target(sql.FieldNotNull(FieldVpnUsername))
}

// VpnUsernameEqualFold applies the EqualFold predicate on the "vpn_username" field.
func VpnUsernameEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldVpnUsername, v))
}

// VpnUsernameContainsFold applies the ContainsFold predicate on the "vpn_username" field.
func VpnUsernameContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldVpnUsername, v))
}

// VpnPasswordEQ applies the EQ predicate on the "vpn_password" field.
func VpnPasswordEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldVpnPassword, v))
}

// VpnPasswordNEQ applies the NEQ predicate on the "vpn_password" field.
func VpnPasswordNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldVpnPassword, v))
}

// VpnPasswordIn applies the In predicate on the "vpn_password" field.
func VpnPasswordIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldVpnPassword, vs...))
}

// VpnPasswordNotIn applies the NotIn predicate on the "vpn_password" field.
func VpnPasswordNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldVpnPassword, vs...))
}

// VpnPasswordGT applies the GT predicate on the "vpn_password" field.
func VpnPasswordGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldVpnPassword, v))
}

// VpnPasswordGTE applies the GTE predicate on the "vpn_password" field.
func VpnPasswordGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldVpnPassword, v))
}

// VpnPasswordLT applies the LT predicate on the "vpn_password" field.
func VpnPasswordLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldVpnPassword, v))
}

// VpnPasswordLTE applies the LTE predicate on the "vpn_password" field.
func VpnPasswordLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldVpnPassword, v))
}

// VpnPasswordContains applies the Contains predicate on the "vpn_password" field.
func VpnPasswordContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldVpnPassword, v))
}

// VpnPasswordHasPrefix applies the HasPrefix predicate on the "vpn_password" field.
func VpnPasswordHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldVpnPassword, v))
}

// VpnPasswordHasSuffix applies the HasSuffix predicate on the "vpn_password" field.
func VpnPasswordHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldVpnPassword, v))
}

// VpnPasswordIsNil applies the IsNil predicate on the "vpn_password" field.
func VpnPasswordIsNil() predicate.Target {
	return predicate.Target(sql.FieldIsNull(FieldVpnPassword))
}

// VpnPasswordNotNil applies the NotNil predicate on the "vpn_password" field.
func VpnPasswordNotNil() predicate.Target {
	return predicate.Target(sql.FieldNotNull(FieldVpnPassword))
}

// VpnPasswordEqualFold applies the EqualFold predicate on the "vpn_password" field.
func VpnPasswordEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldVpnPassword, v))
}

// VpnPasswordContainsFold applies the ContainsFold predicate on the "vpn_password" field.
func VpnPasswordContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldVpnPassword, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldWidth, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldHeight, v))
}

// RdpParamsEQ applies the EQ predicate on the "rdp_params" field.
func RdpParamsEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldRdpParams, v))
}

// RdpParamsNEQ applies the NEQ predicate on the "rdp_params" field.
func RdpParamsNEQ(v string) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldRdpParams, v))
}

// RdpParamsIn applies the In predicate on the "rdp_params" field.
func RdpParamsIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldRdpParams, vs...))
}

// RdpParamsNotIn applies the NotIn predicate on the "rdp_params" field.
func RdpParamsNotIn(vs ...string) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldRdpParams, vs...))
}

// RdpParamsGT applies the GT predicate on the "rdp_params" field.
func RdpParamsGT(v string) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldRdpParams, v))
}

// RdpParamsGTE applies the GTE predicate on the "rdp_params" field.
func RdpParamsGTE(v string) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldRdpParams, v))
}

// RdpParamsLT applies the LT predicate on the "rdp_params" field.
func RdpParamsLT(v string) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldRdpParams, v))
}

// RdpParamsLTE applies the LTE predicate on the "rdp_params" field.
func RdpParamsLTE(v string) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldRdpParams, v))
}

// RdpParamsContains applies the Contains predicate on the "rdp_params" field.
func RdpParamsContains(v string) predicate.Target {
	return predicate.Target(sql.FieldContains(FieldRdpParams, v))
}

// RdpParamsHasPrefix applies the HasPrefix predicate on the "rdp_params" field.
func RdpParamsHasPrefix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasPrefix(FieldRdpParams, v))
}

// RdpParamsHasSuffix applies the HasSuffix predicate on the "rdp_params" field.
func RdpParamsHasSuffix(v string) predicate.Target {
	return predicate.Target(sql.FieldHasSuffix(FieldRdpParams, v))
}

// RdpParamsIsNil applies the IsNil predicate on the "rdp_params" field.
func RdpParamsIsNil() predicate.Target {
	return predicate.Target(sql.FieldIsNull(FieldRdpParams))
}

// RdpParamsNotNil applies the NotNil predicate on the "rdp_params" field.
func RdpParamsNotNil() predicate.Target {
	return predicate.Target(sql.FieldNotNull(FieldRdpParams))
}

// RdpParamsEqualFold applies the EqualFold predicate on the "rdp_params" field.
func RdpParamsEqualFold(v string) predicate.Target {
	return predicate.Target(sql.FieldEqualFold(FieldRdpParams, v))
}

// RdpParamsContainsFold applies the ContainsFold predicate on the "rdp_params" field.
func RdpParamsContainsFold(v string) predicate.Target {
	return predicate.Target(sql.FieldContainsFold(FieldRdpParams, v))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldIsArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Target {
	return predicate.Target(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Target {
	return predicate.Target(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Target {
	return predicate.Target(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Target {
	return predicate.Target(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Target {
	return predicate.Target(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Target {
	return predicate.Target(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.Job) predicate.Target {
	return predicate.Target(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Target) predicate.Target {
	return predicate.Target(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Target) predicate.Target {
	return predicate.Target(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Target) predicate.Target {
	return predicate.Target(sql.NotPredicates(p))
}
