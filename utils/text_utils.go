package utils

import "strings"

// DeduplicateSlice 去重字符串切片，去掉首尾空白和空串，保持原顺序
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// NormalizeTags 统一为小写、空格换成连字符后去重，例如 "Customer Support" → "customer-support"
func NormalizeTags(input []string) []string {
	normalized := make([]string, 0, len(input))
	for _, val := range input {
		val = strings.ToLower(strings.TrimSpace(val))
		normalized = append(normalized, strings.Join(strings.Fields(val), "-"))
	}
	return DeduplicateSlice(normalized)
}
