// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrConflict        = errors.New("resource conflict") // 重複・競合エラー用
	ErrNoEligibleCards = errors.New("no eligible cards") // 出題プールが空（フィルタ再計算後も空）
	ErrRewardPending   = errors.New("reward pending")    // ごほうび未受取のため出題停止中
)

// ErrorDetail はAPIエラーレスポンスの詳細部です
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージ・フィールド情報を持つアプリケーションエラーです。
// Err にはセンチネルエラー (ErrNotFound など) をラップし、HTTPステータスの判定に使います。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
