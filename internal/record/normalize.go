package record

import "strings"

// normalizeSkip holds keys that are never case-folded.
var normalizeSkip = map[string]struct{}{
	"id":             {},
	"password":       {},
	"email":          {},
	"remember_token": {},
}

// Normalize returns a copy of p with every string value upper-cased, except
// identifier and credential fields (see isProtectedKey). Non-string values are
// copied as-is. The input is never mutated.
func Normalize(p Payload) Payload {
	out := p.Clone()
	for key, value := range out {
		if isProtectedKey(key) {
			continue
		}
		if s, ok := value.(string); ok {
			out[key] = strings.ToUpper(s)
		}
	}
	return out
}

func isProtectedKey(key string) bool {
	lower := strings.ToLower(key)
	if _, ok := normalizeSkip[lower]; ok {
		return true
	}
	return strings.HasSuffix(lower, "_id")
}
