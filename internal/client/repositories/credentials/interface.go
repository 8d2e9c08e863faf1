// Package credentials persists the bearer credential across CLI runs,
// the terminal analog of the browser's localStorage slot.
package credentials

import "context"

// TokenKey is the fixed storage key the credential lives under. Its
// presence or absence is the sole "am I authenticated" signal at startup.
const TokenKey = "token"

// Repository is a durable key/value store for session credentials.
// Get returns "" (not an error) when the key is absent; Delete and Clear
// are no-ops when there is nothing to remove.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
