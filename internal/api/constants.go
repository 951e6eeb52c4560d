package api

// Cache-Control header values for the static front-end.
const (
	CacheImmutable = "public, max-age=31536000, immutable"
	CacheNoStore   = "no-cache"
)

// assetsPrefix is where the front-end build keeps fingerprinted files.
const assetsPrefix = "/assets/"
