// internal/handlers/handlers.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_math_adventure/internal/model"
	"go_math_adventure/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// handleValidationError はvalidatorのエラーをクライアント向けレスポンスに変換します。
// 最初のエラーを代表として日本語メッセージで返します。
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error, req interface{}) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)
		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}

// decodeBody はJSONボディをデコードし、失敗時はエラーレスポンスを書き込みます
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	return true
}

// cardIDFromURL はパスパラメータのカードIDを取り出します
func cardIDFromURL(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	raw := chi.URLParam(r, "card_id")
	cardID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("Invalid card ID in URL", slog.String("card_id", raw))
		appErr := model.NewAppError("INVALID_CARD_ID", "カードIDの形式が正しくありません。", "card_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return 0, false
	}
	return cardID, true
}
