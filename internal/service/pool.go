// internal/service/pool.go
package service

import "go_math_adventure/internal/model"

// PoolFilter は出題プールの絞り込み条件です
type PoolFilter struct {
	Difficulties []string // 許可する難易度
	Categories   []string // 有効なデッキのカテゴリ
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// BuildPool はカタログから出題プールを構成します。カタログの並び順は保持されます。
//
//  1. 難易度・カテゴリの両方に合致するカードを選ぶ
//  2. セッション正解済み(answered)のカードを除外する
//  3. 除外の結果プールが空になった場合は周回完了とみなし、
//     除外前のプールを返す (rolledOver=true、呼び出し側は answered を
//     クリアして世代を進めること)
//
// フィルタ自体に合致するカードが1枚もなければ空プールを返します。
func BuildPool(catalog []*model.Card, filter PoolFilter, answered map[int64]bool) (pool []*model.Card, rolledOver bool) {
	difficulties := toSet(filter.Difficulties)
	categories := toSet(filter.Categories)

	base := make([]*model.Card, 0, len(catalog))
	for _, card := range catalog {
		if difficulties[card.Difficulty] && categories[card.Category] {
			base = append(base, card)
		}
	}

	pool = make([]*model.Card, 0, len(base))
	for _, card := range base {
		if !answered[card.CardID] {
			pool = append(pool, card)
		}
	}

	if len(pool) == 0 && len(base) > 0 {
		// 全カード正解済み。次の周回は全カードが再び対象になる
		return base, true
	}
	return pool, false
}
