package model

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Player ゴルフ場を探すプレイヤーを表すモデル
type Player struct {
	ID      int     `json:"id" db:"id"`           // 永続化時に採番されるID
	Name    string  `json:"name" db:"name"`       // 表示名
	Address string  `json:"address" db:"address"` // 入力された住所（レジストリ内で一意）
	Coord   *LatLng `json:"coord,omitempty"`      // ジオコーディング結果（未解決ならnil）
}

// HasCoord 座標が解決済みかチェック
func (p *Player) HasCoord() bool {
	return p.Coord != nil
}

// PlayerDistance あるコースへの1プレイヤー分の距離と推定移動時間
type PlayerDistance struct {
	Distance   float64 `json:"distance"`    // マイル
	TravelTime int     `json:"travel_time"` // 分（時速50マイル換算、切り捨て）
}

// PlayerPairDistance プレイヤー2人の組とその間の距離
type PlayerPairDistance struct {
	Players  string  `json:"players"`  // "{名前1} and {名前2}" 形式のラベル
	Distance float64 `json:"distance"` // マイル
}
