package helper

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"GoBuddy-App/internal/domain/model"
)

// metersPerMile マイル換算係数
const metersPerMile = 1609.34

// DistanceMiles 2地点間の大円距離をマイルで計算する
func DistanceMiles(p1, p2 model.LatLng) float64 {
	a := orb.Point{p1.Lng, p1.Lat}
	b := orb.Point{p2.Lng, p2.Lat}
	return geo.Distance(a, b) / metersPerMile
}

// CoordKey 座標を小数第5位（約1.1m）で丸めたキャッシュキーを生成する
// 同一地点の判定単位としても使う
func CoordKey(coord model.LatLng) string {
	return fmt.Sprintf("%.5f, %.5f", coord.Lat, coord.Lng)
}

// RegionKey 検索中心と半径からリージョンキャッシュのキーを生成する
func RegionKey(center model.LatLng, radiusMeters int) string {
	return fmt.Sprintf("%.5f, %.5f, %d", center.Lat, center.Lng, radiusMeters)
}

// CenterCoordinate 全プレイヤー座標の重心（算術平均）を計算する
// 呼び出し側は少なくとも1座標あることを保証する
func CenterCoordinate(coords []model.LatLng) model.LatLng {
	var sumLat, sumLng float64
	for _, c := range coords {
		sumLat += c.Lat
		sumLng += c.Lng
	}
	n := float64(len(coords))
	return model.LatLng{Lat: sumLat / n, Lng: sumLng / n}
}

// Capitalize 先頭を大文字、残りを小文字にする（"golf_course" → "Golf_course"）
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
