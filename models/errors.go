package models

import "errors"

var (
	// ErrProfileNotFound 用户没有画像，调用方应引导用户完成注册设置
	ErrProfileNotFound = errors.New("profile not found")
	// ErrToolNotFound 目录中不存在该工具
	ErrToolNotFound = errors.New("tool not found")
	// ErrInvalidBehavior 未知的行为类型或缺少标识
	ErrInvalidBehavior = errors.New("invalid behavior event")
	// ErrInvalidRating 评分不在 1-5 范围内
	ErrInvalidRating = errors.New("invalid rating")
)
