package advisor

import "strings"

// Normalize turns a raw symptom label into a knowledge key: lowercase, with
// every space replaced by an underscore. Nothing is trimmed or stripped.
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.ToLower(raw), " ", "_")
}
