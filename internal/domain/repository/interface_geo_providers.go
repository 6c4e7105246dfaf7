package repository

import (
	"context"

	"GoBuddy-App/internal/domain/model"
)

// GeocodingProvider 外部ジオコーダーへの境界インターフェース
type GeocodingProvider interface {
	// Geocode 住所を座標に解決する（見つからなければnil, nil）
	Geocode(ctx context.Context, address string) (*model.LatLng, error)
	// ReverseGeocode 座標から構造化された住所フィールドを取得する（見つからなければnil, nil）
	ReverseGeocode(ctx context.Context, coord model.LatLng) (*model.ReverseAddress, error)
}

// MapDataProvider 地図データクエリサービス（Overpass API）への境界インターフェース
type MapDataProvider interface {
	// FindGolfCourses 中心から半径内のゴルフ場タグ付き地物を検索する（node/way/relation一括）
	FindGolfCourses(ctx context.Context, center model.LatLng, radiusMeters int) ([]*model.MapFeature, error)
	// FindAdminBoundaries 座標近傍（10m）のadmin_level 6〜8の行政境界を検索する
	FindAdminBoundaries(ctx context.Context, coord model.LatLng) ([]*model.MapFeature, error)
	// FindNearbyPlaces 座標から500m以内の名前付き地区地物を検索する
	FindNearbyPlaces(ctx context.Context, coord model.LatLng) ([]*model.MapFeature, error)
}
