package spawn

import "errors"

var (
	// ErrNotInitialized means the spawner was used before its registries,
	// resolver, and world were injected.
	ErrNotInitialized = errors.New("spawn: spawner not initialized")

	// ErrUnknownEntityID means no data record exists for the requested ID.
	ErrUnknownEntityID = errors.New("spawn: unknown entity id")

	// ErrMissingTemplate means a data record exists but no prefab template
	// resolves for it. There is no fallback template.
	ErrMissingTemplate = errors.New("spawn: no template for entity id")
)
