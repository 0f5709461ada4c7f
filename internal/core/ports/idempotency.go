package ports

import "context"

// IdempotencyStore binds a client-supplied key to the item it created, per
// user. A key is claimed before the item is written so that a retry racing
// the first request cannot create a second item.
type IdempotencyStore interface {
	// Claim atomically reserves key. When the key is already taken claimed is
	// false and itemID holds the item created under it, or is empty while the
	// request that claimed it is still running.
	Claim(ctx context.Context, userID, key string) (claimed bool, itemID string, err error)
	// Complete binds a claimed key to the item it created.
	Complete(ctx context.Context, userID, key, itemID string) error
	// Release frees a claimed key after the request failed so it can be retried.
	Release(ctx context.Context, userID, key string) error
}
