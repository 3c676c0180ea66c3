// internal/handlers/card_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_math_adventure/internal/excel"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/service"
	"go_math_adventure/internal/webutil"
)

// アップロードファイルの上限 (10MB)
const maxUploadBytes = 10 << 20

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// PostCard は新しいカードを作成するためのハンドラ
func (h *CardHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCard"))

	var req model.PostCardRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	card, err := h.service.PostCard(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting card in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card posted successfully", slog.Int64("card_id", card.CardID))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// GetCards はカード一覧を取得するためのハンドラ
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))

	cards, err := h.service.ListCards(r.Context())
	if err != nil {
		logger.Error("Error listing cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// GetCard は単一カードを取得するためのハンドラ
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCard"))

	cardID, ok := cardIDFromURL(w, r, logger)
	if !ok {
		return
	}

	card, err := h.service.GetCard(r.Context(), cardID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PutCard はカード全体を更新するためのハンドラ
func (h *CardHandler) PutCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCard"))

	cardID, ok := cardIDFromURL(w, r, logger)
	if !ok {
		return
	}

	var req model.PutCardRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	card, err := h.service.PutCard(r.Context(), cardID, &req)
	if err != nil {
		logger.Error("Error putting card in service", slog.Any("error", err), slog.Int64("card_id", cardID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PatchCard はカードを部分更新するためのハンドラ
func (h *CardHandler) PatchCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCard"))

	cardID, ok := cardIDFromURL(w, r, logger)
	if !ok {
		return
	}

	var req model.PatchCardRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	card, err := h.service.PatchCard(r.Context(), cardID, &req)
	if err != nil {
		logger.Error("Error patching card in service", slog.Any("error", err), slog.Int64("card_id", cardID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// DeleteCard はカードを削除するためのハンドラ
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	cardID, ok := cardIDFromURL(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteCard(r.Context(), cardID); err != nil {
		logger.Error("Error deleting card in service", slog.Any("error", err), slog.Int64("card_id", cardID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card deleted successfully", slog.Int64("card_id", cardID))
	w.WriteHeader(http.StatusNoContent)
}

// ImportCards はJSON形式のカタログ一括インポートのハンドラ
func (h *CardHandler) ImportCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportCards"))

	var req model.ImportCardsRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	imported, err := h.service.ImportCards(r.Context(), req.Cards, req.Replace)
	if err != nil {
		logger.Error("Error importing cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cards imported successfully", slog.Int("count", imported))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]int{"imported": imported}, logger)
}

// UploadCards はxlsx/csvファイルからの取り込みのハンドラ
func (h *CardHandler) UploadCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UploadCards"))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "ファイルのアップロード形式が正しくありません。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Missing upload file", slog.String("error", err.Error()))
		appErr := model.NewAppError("MISSING_FILE", "アップロードファイルが見つかりません。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	result, err := excel.ParseCards(file, header.Filename)
	if err != nil {
		logger.Warn("Failed to parse upload file", slog.Any("error", err), slog.String("filename", header.Filename))
		appErr := model.NewAppError("INVALID_FILE", "ファイルを読み取れませんでした。xlsxまたはcsv形式を指定してください。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	imported, err := h.service.ImportCards(r.Context(), result.Cards, false)
	if err != nil {
		logger.Error("Error importing uploaded cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cards uploaded successfully",
		slog.String("filename", header.Filename),
		slog.Int("imported", imported),
		slog.Int("skipped", len(result.Errors)))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"imported": imported,
		"skipped":  result.Errors,
	}, logger)
}

// ExportCards はカタログをJSONエクスポートするためのハンドラ。
// レスポンスはそのまま ImportCards に書き戻せる形です。
func (h *CardHandler) ExportCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ExportCards"))

	cards, err := h.service.ListCards(r.Context())
	if err != nil {
		logger.Error("Error listing cards for export", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"cards": cards}, logger)
}

// ResetCards はカタログを初期状態に戻すためのハンドラ
func (h *CardHandler) ResetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetCards"))

	if err := h.service.ResetCards(r.Context()); err != nil {
		logger.Error("Error resetting cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card catalog reset")
	w.WriteHeader(http.StatusNoContent)
}
