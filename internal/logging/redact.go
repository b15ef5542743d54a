// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import "strings"

// sensitiveKeys are field names whose string values are masked on output.
// Matching ignores case and any group prefix ("auth.token" matches "token").
var sensitiveKeys = map[string]bool{
	"access_token":  true,
	"refresh_token": true,
	"id_token":      true,
	"token":         true,
	"password":      true,
	"secret":        true,
	"api_key":       true,
	"apikey":        true,
	"authorization": true,
	"bearer":        true,
	"cookie":        true,
	"session_id":    true,
	"sessionid":     true,
}

// IsSensitiveKey reports whether values under key are masked.
func IsSensitiveKey(key string) bool {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	return sensitiveKeys[strings.ToLower(key)]
}

// MaskToken keeps the first and last four characters of a long value.
// Example: "abcd1234efgh5678" -> "abcd...5678"
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// redactFields returns fields with sensitive values masked. The input map
// is returned as is when nothing needs masking.
func redactFields(fields map[string]any) map[string]any {
	var out map[string]any
	for k, v := range fields {
		s, ok := v.(string)
		if !ok || !IsSensitiveKey(k) {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(fields))
			for k2, v2 := range fields {
				out[k2] = v2
			}
		}
		out[k] = MaskToken(s)
	}
	if out == nil {
		return fields
	}
	return out
}
