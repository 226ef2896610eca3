package utils

func EmptyFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
