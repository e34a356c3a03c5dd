package logging

import "strings"

// Redacted replaces the value of sensitive keys in log output.
const Redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"auth_token":    {},
	"password":      {},
	"authorization": {},
}

func sensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

func redact(key string, val any) any {
	if sensitive(key) {
		return Redacted
	}
	return val
}

// scrub returns args with sensitive values replaced. args is not modified.
func scrub(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || !sensitive(key) {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i+1] = Redacted
	}
	if out == nil {
		return args
	}
	return out
}
