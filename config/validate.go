package config

import (
	"errors"
	"fmt"

	"ai_tool_directory/validation"
)

// Validate 检查加载后的配置是否可用
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DB.DSN == "" {
		return errors.New("invalid config: database dsn is empty, set database.host or DB_DSN")
	}
	if (c.Log.Output == "file" || c.Log.Output == "both") && c.Log.FilePath == "" {
		return errors.New("invalid config: log.file_path is required when log.output is file or both")
	}
	return nil
}
