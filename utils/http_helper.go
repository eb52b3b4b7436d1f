package utils

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"ai_tool_directory/logger"
	"ai_tool_directory/models"
	"ai_tool_directory/validation"
)

// maxBodyBytes 请求体上限
const maxBodyBytes = 1 << 20

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	if err := encoder.Encode(data); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// HandleServiceError 处理服务层错误的通用函数
// 已知的业务错误映射到对应响应码，其余使用 fallbackCode
func HandleServiceError(w http.ResponseWriter, err error, fallbackCode int) {
	var ve *validation.RequestValidationError
	if errors.As(err, &ve) {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, ve.Error(), ve.Details())
		return
	}

	code := ErrorCode(err, fallbackCode)
	switch code {
	case models.CodeNoUserProfile, models.CodeToolNotFound, models.CodeNoRecommendData:
		WriteErrorResponse(w, code, map[string]interface{}{})
	default:
		if code >= models.CodeServerError {
			logger.Error("Request failed", "code", code, "error", err)
		}
		WriteCustomErrorResponse(w, code, err.Error(), map[string]interface{}{})
	}
}

// ValidateUserID 验证用户ID参数
func ValidateUserID(w http.ResponseWriter, userID string) bool {
	if strings.TrimSpace(userID) == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "userId",
		})
		return false
	}
	return true
}

// DecodeJSONBody 解析并校验请求体，失败时已写入错误响应并返回 false
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "invalid request body: "+err.Error(), map[string]interface{}{})
		return false
	}

	if err := validation.ValidateStruct(dst); err != nil {
		HandleServiceError(w, err, models.CodeInvalidParams)
		return false
	}
	return true
}
