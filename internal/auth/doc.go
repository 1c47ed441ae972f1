// Package auth implements user accounts, password hashing, cookie
// sessions and the middleware that guards authenticated routes.
//
// Accounts live in the account store (see internal/database); sessions
// are persisted to the same store through scs's sqlite3 backend. The
// Service owns registration and credential verification, the
// SessionManager owns the per-request session context, and Middleware
// wires both into the gin router.
//
// Credential failures are deliberately indistinct: a missing account and
// a wrong password both return ErrInvalidCredentials so the login form
// cannot be used to probe which usernames exist.
package auth
