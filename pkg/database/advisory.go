package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// advisoryLockSalt is the second argument of the two-argument advisory lock
// functions. Keeping it fixed namespaces this application's locks away from
// other users of the same cluster.
const advisoryLockSalt = 2001

// MaintenanceLockKey is the advisory key for maintenance leader election.
const MaintenanceLockKey = "maintenance_v1"

// TryAdvisoryXactLock attempts a transaction-scoped advisory lock keyed by
// hashtext(key). Returns true when the lock was acquired; the lock releases
// automatically at commit or rollback.
func TryAdvisoryXactLock(ctx context.Context, tx *stdsql.Tx, key string) (bool, error) {
	var acquired bool
	err := tx.QueryRowContext(ctx,
		"SELECT pg_try_advisory_xact_lock(hashtext($1), $2)",
		key, advisoryLockSalt,
	).Scan(&acquired)
	if err != nil {
		return false, fmt.Errorf("acquiring advisory xact lock %q: %w", key, err)
	}
	return acquired, nil
}

// TryAdvisorySessionLock attempts a session-scoped advisory lock on a
// dedicated connection. The lock is held until the connection closes or
// ReleaseAdvisorySessionLock is called; the caller must keep conn alive for
// the lock's lifetime.
func TryAdvisorySessionLock(ctx context.Context, conn *stdsql.Conn, key string) (bool, error) {
	var acquired bool
	err := conn.QueryRowContext(ctx,
		"SELECT pg_try_advisory_lock(hashtext($1), $2)",
		key, advisoryLockSalt,
	).Scan(&acquired)
	if err != nil {
		return false, fmt.Errorf("acquiring advisory session lock %q: %w", key, err)
	}
	return acquired, nil
}

// ReleaseAdvisorySessionLock releases a session-scoped advisory lock taken on
// conn. Returns whether the lock was actually held.
func ReleaseAdvisorySessionLock(ctx context.Context, conn *stdsql.Conn, key string) (bool, error) {
	var released bool
	err := conn.QueryRowContext(ctx,
		"SELECT pg_advisory_unlock(hashtext($1), $2)",
		key, advisoryLockSalt,
	).Scan(&released)
	if err != nil {
		return false, fmt.Errorf("releasing advisory session lock %q: %w", key, err)
	}
	return released, nil
}

// TargetClaimKey builds the advisory key serializing claims per
// (tenant schema, target).
func TargetClaimKey(schema, targetID string) string {
	return schema + ":" + targetID
}
