package cache

import "strings"

const (
	GlobalKeyPrefix = "studyhelper"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TopicKey normalizes a topic so lookups differing only in case or
// surrounding whitespace share one cache entry.
func TopicKey(topic string) string {
	return GenerateCacheKey("wikipedia", "summary", strings.ToLower(strings.TrimSpace(topic)))
}
