package utils

import "context"

// FirstOf evaluates the given providers in order and returns the first
// non-empty result. Providers after the first hit are never invoked. An error
// from any provider aborts the chain. If every provider yields an empty
// string, the empty string is returned with a nil error; callers supply their
// own terminal fallback.
//
// This backs both the price-list resolution cascade and the customer
// resolution fallbacks.
func FirstOf(ctx context.Context, providers ...func(context.Context) (string, error)) (string, error) {
	for _, provide := range providers {
		value, err := provide(ctx)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
	return "", nil
}
