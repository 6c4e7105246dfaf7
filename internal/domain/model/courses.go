package model

// Course 発見されたゴルフ場を表すモデル
// DistancesとTotalDistanceはランキング時にのみ設定される
type Course struct {
	ID            string                    `json:"id,omitempty" db:"id"` // 永続化時に採番されるID
	Name          string                    `json:"name" db:"name"`
	City          string                    `json:"city" db:"city"`
	Lat           float64                   `json:"lat" db:"latitude"`
	Lng           float64                   `json:"lon" db:"longitude"`
	Access        string                    `json:"access" db:"access"` // 元タグのアクセス区分（デフォルト "unknown"）
	Distances     map[string]PlayerDistance `json:"distances,omitempty"`
	TotalDistance float64                   `json:"total_distance"`
}

// ToLatLng コースの座標をLatLng型に変換
func (c *Course) ToLatLng() LatLng {
	return LatLng{Lat: c.Lat, Lng: c.Lng}
}

// MapFeature Overpass APIが返す地物（node/way/relation）の共通表現
type MapFeature struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`    // node のみ
	Lon    *float64          `json:"lon,omitempty"`    // node のみ
	Center *LatLng           `json:"center,omitempty"` // way/relation の事前計算された重心
	Tags   map[string]string `json:"tags"`
}

// Coordinates 地物の代表座標を取得する
// 直接の座標 → 重心の順で探し、どちらもなければnilを返す
func (f *MapFeature) Coordinates() *LatLng {
	if f.Lat != nil && f.Lon != nil {
		return &LatLng{Lat: *f.Lat, Lng: *f.Lon}
	}
	if f.Center != nil {
		return &LatLng{Lat: f.Center.Lat, Lng: f.Center.Lng}
	}
	return nil
}
