// Copyright (c) 2026 Inkpost. All rights reserved.
// Author: h.m.tran.dev@gmail.com

/*
Package session provides the server-side browser session abstraction.

Each anonymous visitor is identified by an opaque token issued via the
blog_session cookie ([middleware.SessionCookie]). All state attached to
that token lives in Redis, so the session survives server restarts and
expires on its own when the visitor stops coming back.

The only session value the blog keeps today is the read-later list:
an ordered list of post identifiers under the key "stored_posts".

# Design

Handlers never touch session state as an ambient dictionary. They depend
on the typed [Store] interface, which is injected through constructors
like any other repository.
*/
package session

import "context"

// Store is the typed interface to per-visitor session state.
//
// # Contract
//
// GetStoredPosts returns the visitor's ordered read-later list. A missing
// session or key yields an empty list, never an error — a fresh browser
// simply has nothing stored yet.
//
// SetStoredPosts replaces the list and refreshes the session lifetime.
//
// # Invariants
//
// Callers maintain the list invariants (no duplicate ids, insertion order
// preserved); the store is a dumb persistence mechanism.
type Store interface {
	GetStoredPosts(ctx context.Context, token string) ([]int64, error)
	SetStoredPosts(ctx context.Context, token string, postIDs []int64) error
}
