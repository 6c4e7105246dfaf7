package model

// ReverseAddress 逆ジオコーディング結果の構造化された住所フィールド
type ReverseAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Hamlet  string `json:"hamlet"`
	County  string `json:"county"`
}

// CityName 優先順（city → town → village → hamlet → county）で都市名を取得する
// どれも空ならセンチネル値を返す
func (a *ReverseAddress) CityName() string {
	for _, name := range []string{a.City, a.Town, a.Village, a.Hamlet, a.County} {
		if name != "" {
			return name
		}
	}
	return UnknownCity
}
