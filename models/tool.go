package models

import "strings"

// DefaultCategory 无法确定分类时使用的通用分类
const DefaultCategory = "general"

// ToolRecord 目录中的工具条目，对推荐引擎只读
type ToolRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Tags        []string `json:"tags" yaml:"tags"`
	Pricing     Pricing  `json:"pricing" yaml:"pricing"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url,omitempty" yaml:"url"`
}

// Labels 返回分类和标签（小写），用于规则表匹配
func (t ToolRecord) Labels() []string {
	labels := make([]string, 0, len(t.Tags)+1)
	if t.Category != "" {
		labels = append(labels, strings.ToLower(t.Category))
	}
	for _, tag := range t.Tags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			labels = append(labels, tag)
		}
	}
	return labels
}

// ContextTags 持久化推荐行时附带的上下文标签：分类在前，随后是去重后的标签
func (t ToolRecord) ContextTags() []string {
	seen := make(map[string]bool)
	tags := make([]string, 0, len(t.Tags)+1)
	for _, l := range t.Labels() {
		if !seen[l] {
			seen[l] = true
			tags = append(tags, l)
		}
	}
	return tags
}

// Workflow 由多个工具组成的组合工作流
type Workflow struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Tools       []string `json:"tools" yaml:"tools"`
	Tags        []string `json:"tags" yaml:"tags"`
}
