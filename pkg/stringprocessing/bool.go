// Package stringprocessing provides utilities for string processing shared
// across devconsole packages.
package stringprocessing

import "strings"

// ParseBool maps the common boolean spellings to a value. Unlike
// strconv.ParseBool it accepts word forms, but unlike a truthiness check it
// rejects unrecognized text: ok is false when the spelling is not one of
// the known sets.
//
// Recognized (case-insensitive, surrounding whitespace ignored):
//   - true:  'true', '1', 'yes', 'on', 'enabled'
//   - false: 'false', '0', 'no', 'off', 'disabled'
func ParseBool(text string) (value, ok bool) {
	text = strings.TrimSpace(strings.ToLower(text))

	switch text {
	case "true", "1", "yes", "on", "enabled":
		return true, true
	case "false", "0", "no", "off", "disabled":
		return false, true
	}
	return false, false
}
