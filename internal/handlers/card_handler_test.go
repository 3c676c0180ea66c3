// internal/handlers/card_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_math_adventure/internal/handlers"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/service/mocks"
)

func newCardRouter(t *testing.T) (*mocks.MockCardService, chi.Router) {
	t.Helper()
	mockCardService := mocks.NewMockCardService(t)
	cardHandler := handlers.NewCardHandler(mockCardService, nil)

	router := chi.NewRouter()
	router.Post("/api/v1/cards", cardHandler.PostCard)
	router.Get("/api/v1/cards", cardHandler.GetCards)
	router.Get("/api/v1/cards/{card_id}", cardHandler.GetCard)
	router.Delete("/api/v1/cards/{card_id}", cardHandler.DeleteCard)
	router.Post("/api/v1/cards/import", cardHandler.ImportCards)
	return mockCardService, router
}

func TestCardHandler_PostCard(t *testing.T) {
	validReqBody := model.PostCardRequest{
		Question:   "2 + 3 = ?",
		Answer:     "5",
		Options:    []string{"4", "5", "6"},
		Difficulty: model.DifficultyEasy,
		Category:   "addition",
		InputType:  model.InputTypeMultipleChoice,
	}
	expectedCard := &model.Card{
		CardID:     1,
		Question:   validReqBody.Question,
		Answer:     validReqBody.Answer,
		Options:    validReqBody.Options,
		Difficulty: validReqBody.Difficulty,
		Category:   validReqBody.Category,
		InputType:  validReqBody.InputType,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockCardService)
		expectedStatus int
	}{
		{
			name: "正常系: カード作成",
			body: validReqBody,
			setupMock: func(m *mocks.MockCardService) {
				m.On("PostCard", mock.Anything, &validReqBody).Return(expectedCard, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 必須フィールド欠落",
			body:           model.PostCardRequest{Question: "2 + 3 = ?"},
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 不正な難易度",
			body:           map[string]string{"question": "q", "answer": "a", "difficulty": "expert", "category": "addition", "inputType": "text-input"},
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: サービス内部エラー",
			body: validReqBody,
			setupMock: func(m *mocks.MockCardService) {
				m.On("PostCard", mock.Anything, &validReqBody).Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockCardService, router := newCardRouter(t)
			tc.setupMock(mockCardService)

			req := createRequest(t, "POST", "/api/v1/cards", tc.body)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var got model.Card
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, expectedCard.Question, got.Question)
				assert.Equal(t, expectedCard.Answer, got.Answer)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}
		})
	}
}

func TestCardHandler_GetCard(t *testing.T) {
	expectedCard := &model.Card{CardID: 7, Question: "3 + 4 = ?", Answer: "7", Difficulty: model.DifficultyEasy, Category: "addition"}

	tests := []struct {
		name           string
		url            string
		setupMock      func(m *mocks.MockCardService)
		expectedStatus int
	}{
		{
			name: "正常系: カード取得",
			url:  "/api/v1/cards/7",
			setupMock: func(m *mocks.MockCardService) {
				m.On("GetCard", mock.Anything, int64(7)).Return(expectedCard, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: カードが存在しない",
			url:  "/api/v1/cards/999",
			setupMock: func(m *mocks.MockCardService) {
				m.On("GetCard", mock.Anything, int64(999)).Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: 数値でないカードID",
			url:            "/api/v1/cards/abc",
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockCardService, router := newCardRouter(t)
			tc.setupMock(mockCardService)

			req := createRequest(t, "GET", tc.url, nil)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestCardHandler_DeleteCard(t *testing.T) {
	t.Run("正常系: 削除成功で204", func(t *testing.T) {
		mockCardService, router := newCardRouter(t)
		mockCardService.On("DeleteCard", mock.Anything, int64(3)).Return(nil).Once()

		req := createRequest(t, "DELETE", "/api/v1/cards/3", nil)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
	})

	t.Run("異常系: 存在しないカードで404", func(t *testing.T) {
		mockCardService, router := newCardRouter(t)
		mockCardService.On("DeleteCard", mock.Anything, int64(99)).Return(model.ErrNotFound).Once()

		req := createRequest(t, "DELETE", "/api/v1/cards/99", nil)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCardHandler_ImportCards(t *testing.T) {
	validBody := model.ImportCardsRequest{
		Cards: []model.Card{
			{CardID: 71, Question: "2 + 3 = ?", Answer: "5", Difficulty: model.DifficultyEasy, Category: "addition", InputType: model.InputTypeTextInput},
		},
		Replace: true,
	}

	t.Run("正常系: 取り込み件数が返る", func(t *testing.T) {
		mockCardService, router := newCardRouter(t)
		mockCardService.On("ImportCards", mock.Anything, mock.AnythingOfType("[]model.Card"), true).Return(1, nil).Once()

		req := createRequest(t, "POST", "/api/v1/cards/import", validBody)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got map[string]int
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 1, got["imported"])
	})

	t.Run("異常系: カードが空のリクエスト", func(t *testing.T) {
		_, router := newCardRouter(t)

		req := createRequest(t, "POST", "/api/v1/cards/import", model.ImportCardsRequest{})
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
