package model

// 検索関連の定数
const (
	// DefaultSearchRadiusMeters ゴルフ場検索のデフォルト半径（約100マイル）
	DefaultSearchRadiusMeters = 160934

	// MaxAdditionalQueries 1回の検索で許可する都市名逆引きクエリの上限
	MaxAdditionalQueries = 10

	// MaxNearbyQueries 1回の検索で許可する周辺地物名クエリの上限
	MaxNearbyQueries = 10

	// MinimumPlayers ペア距離計算が意味を持つ最小プレイヤー数
	MinimumPlayers = 2
)

// UnknownCity 都市名がどの手段でも解決できなかった場合のセンチネル値
const UnknownCity = "Unknown City"

// AverageSpeedMph 移動時間の推定に使う平均時速（マイル）
const AverageSpeedMph = 50.0

// CityTags 地物タグから都市名を直接読むときの優先順リスト
var CityTags = []string{
	"addr:city",
	"addr:town",
	"addr:village",
	"addr:hamlet",
	"is_in:city",
	"is_in:town",
	"is_in:village",
	"addr:county",
	"addr:state",
}

// AlternativeNameTags nameタグがない地物の名前を探すときの優先順リスト
var AlternativeNameTags = []string{
	"official_name",
	"alt_name",
	"short_name",
	"operator",
	"brand",
	"description",
}
