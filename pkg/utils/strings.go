package utils

import "strings"

// RemoveEmptyStrings drops blank entries, keeping the order of the rest.
func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if strings.TrimSpace(s) != "" {
			result = append(result, s)
		}
	}

	return result
}
