// Package catalog 工具目录与工作流池的只读提供方
//
// 目录来自一个 YAML 文件，启动时加载，之后可以整体替换（Reload）。
// 读操作返回副本，调用方可以自由修改。
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"ai_tool_directory/models"

	"gopkg.in/yaml.v3"
)

// File 目录文件结构
type File struct {
	Tools     []models.ToolRecord `yaml:"tools"`
	Workflows []models.Workflow   `yaml:"workflows"`
}

// Static 内存中的目录
type Static struct {
	mu        sync.RWMutex
	path      string
	tools     []models.ToolRecord
	byID      map[string]int
	workflows []models.Workflow
}

// NewStatic 直接由内存数据构造目录（测试和 CLI 使用）
func NewStatic(tools []models.ToolRecord, workflows []models.Workflow) (*Static, error) {
	s := &Static{}
	if err := s.replace(File{Tools: tools, Workflows: workflows}); err != nil {
		return nil, err
	}
	return s, nil
}

// Load 从 YAML 文件加载目录
func Load(path string) (*Static, error) {
	f, err := readFile(path)
	if err != nil {
		return nil, err
	}
	s := &Static{path: path}
	if err := s.replace(f); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return s, nil
}

// Reload 重新读取加载时的文件；失败时保留原目录
func (s *Static) Reload() error {
	if s.path == "" {
		return nil
	}
	f, err := readFile(s.path)
	if err != nil {
		return err
	}
	if err := s.replace(f); err != nil {
		return fmt.Errorf("catalog %s: %w", s.path, err)
	}
	return nil
}

// AllTools 返回目录中全部工具，顺序与文件一致
func (s *Static) AllTools(ctx context.Context) ([]models.ToolRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ToolRecord(nil), s.tools...), nil
}

// Workflows 返回工作流池
func (s *Static) Workflows(ctx context.Context) ([]models.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Workflow(nil), s.workflows...), nil
}

// Tool 按标识查找工具，不存在时返回 models.ErrToolNotFound
func (s *Static) Tool(ctx context.Context, id string) (models.ToolRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.ToolRecord{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return models.ToolRecord{}, fmt.Errorf("%w: %s", models.ErrToolNotFound, id)
	}
	return s.tools[i], nil
}

// Len 目录中的工具数量
func (s *Static) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tools)
}

func readFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read catalog: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return f, nil
}

func (s *Static) replace(f File) error {
	byID := make(map[string]int, len(f.Tools))
	tools := make([]models.ToolRecord, 0, len(f.Tools))
	for _, t := range f.Tools {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return errors.New("tool without id")
		}
		if _, dup := byID[t.ID]; dup {
			return fmt.Errorf("duplicate tool id %q", t.ID)
		}
		if t.Name == "" {
			t.Name = t.ID
		}
		if t.Pricing.Type == "" {
			t.Pricing = models.Pricing{Type: models.PricingCustom}
		}
		byID[t.ID] = len(tools)
		tools = append(tools, t)
	}

	workflows := make([]models.Workflow, 0, len(f.Workflows))
	seen := make(map[string]bool, len(f.Workflows))
	for _, w := range f.Workflows {
		if w.ID == "" {
			return errors.New("workflow without id")
		}
		if seen[w.ID] {
			return fmt.Errorf("duplicate workflow id %q", w.ID)
		}
		seen[w.ID] = true
		workflows = append(workflows, w)
	}

	s.mu.Lock()
	s.tools, s.byID, s.workflows = tools, byID, workflows
	s.mu.Unlock()
	return nil
}
