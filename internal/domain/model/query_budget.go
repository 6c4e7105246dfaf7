package model

import "sync"

// QueryBudget 1回の検索リクエスト内で許可する追加外部クエリ数のカウンタ
// 検索中のすべての解決処理で共有され、並行デクリメントに対して安全
type QueryBudget struct {
	mu        sync.Mutex
	remaining int
}

// NewQueryBudget 指定した上限のカウンタを作成
func NewQueryBudget(max int) *QueryBudget {
	return &QueryBudget{remaining: max}
}

// TryConsume 残量があれば1消費してtrue、尽きていればfalseを返す
func (b *QueryBudget) TryConsume() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Remaining 残クエリ数を取得
func (b *QueryBudget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}
