// internal/model/deck.go
package model

import "time"

// Deck はカードのまとまり（カテゴリ単位）を表します。
// 有効なデッキのカテゴリだけが出題プールの対象になります。
type Deck struct {
	DeckID      string    `gorm:"primaryKey" json:"id"` // 既定デッキはカテゴリ名、カスタムデッキは custom_<uuid>
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"not null;index" json:"category"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	Color       string    `json:"color"` // フロントエンド用の表示データ
	Emoji       string    `json:"emoji"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Deck) TableName() string {
	return "decks"
}

// DefaultDecks は初期状態の5デッキを返します
func DefaultDecks() []Deck {
	return []Deck{
		{
			DeckID:      "addition",
			Name:        "Addition Adventures",
			Description: "Learn to add numbers together!",
			Category:    "addition",
			IsActive:    true,
			Color:       "from-green-400 to-green-600",
			Emoji:       "➕",
		},
		{
			DeckID:      "subtraction",
			Name:        "Subtraction Superstar",
			Description: "Master taking numbers away!",
			Category:    "subtraction",
			IsActive:    true,
			Color:       "from-blue-400 to-blue-600",
			Emoji:       "➖",
		},
		{
			DeckID:      "multiplication",
			Name:        "Multiplication Magic",
			Description: "Discover the power of times tables!",
			Category:    "multiplication",
			IsActive:    true,
			Color:       "from-purple-400 to-purple-600",
			Emoji:       "✖️",
		},
		{
			DeckID:      "division",
			Name:        "Division Dynasty",
			Description: "Share and divide like a pro!",
			Category:    "division",
			IsActive:    true,
			Color:       "from-orange-400 to-orange-600",
			Emoji:       "➗",
		},
		{
			DeckID:      "spelling",
			Name:        "Spelling Numbers",
			Description: "Learn spellings for numbers 1 to 20",
			Category:    "spelling",
			IsActive:    true,
			Color:       "from-indigo-400 to-indigo-600",
			Emoji:       "🔤",
		},
	}
}

// デッキ作成リクエストDTO
type PostDeckRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Color       string `json:"color"`
	Emoji       string `json:"emoji"`
}

// デッキ更新（部分）リクエストDTO
type PatchDeckRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,min=1"`
	Color       *string `json:"color,omitempty"`
	Emoji       *string `json:"emoji,omitempty"`
}

// デッキ有効/無効切り替えリクエストDTO
type SetDeckActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// DeckStats はデッキ内カードの難易度別枚数です
type DeckStats struct {
	TotalCards  int64 `json:"totalCards"`
	EasyCards   int64 `json:"easyCards"`
	MediumCards int64 `json:"mediumCards"`
	HardCards   int64 `json:"hardCards"`
}
