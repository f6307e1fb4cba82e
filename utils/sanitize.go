package utils

import "strings"

// SanitizeHeaderFilename strips CR, LF and double quotes from a name
// destined for a Content-Disposition filename*=UTF-8” value, so a
// crafted upload name cannot inject extra header lines. Empty names
// fall back to "download".
func SanitizeHeaderFilename(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "download"
	}
	for _, bad := range []string{"\r", "\n", "\""} {
		clean = strings.ReplaceAll(clean, bad, "")
	}
	return clean
}
