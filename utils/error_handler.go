package utils

import (
	"context"
	"database/sql"
	"errors"

	"ai_tool_directory/models"
	"ai_tool_directory/validation"
)

// IsSQLNoRowsError 检查错误是否为SQL无结果错误
func IsSQLNoRowsError(err error) bool {
	return err != nil && (errors.Is(err, sql.ErrNoRows) || err.Error() == "sql: no rows in result set")
}

// ErrorCode 把服务层错误映射为响应码；未识别的错误返回 fallback
func ErrorCode(err error, fallback int) int {
	var ve *validation.RequestValidationError
	switch {
	case errors.As(err, &ve):
		return models.CodeInvalidParams
	case errors.Is(err, models.ErrProfileNotFound):
		return models.CodeNoUserProfile
	case errors.Is(err, models.ErrToolNotFound):
		return models.CodeToolNotFound
	case errors.Is(err, models.ErrInvalidBehavior), errors.Is(err, models.ErrInvalidRating):
		return models.CodeInvalidParams
	case IsSQLNoRowsError(err):
		return models.CodeNoRecommendData
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return models.CodeServerError
	default:
		return fallback
	}
}
