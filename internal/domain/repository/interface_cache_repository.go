package repository

import (
	"context"

	"GoBuddy-App/internal/domain/model"
)

// GeocodeCacheRepository 住所→座標のキャッシュ
type GeocodeCacheRepository interface {
	// GetGeocode 住所に対するキャッシュ済み座標を取得する（未キャッシュならnil）
	GetGeocode(ctx context.Context, address string) (*model.LatLng, error)
	// PutGeocode ジオコーディング結果をキャッシュする（既存キーは無視）
	PutGeocode(ctx context.Context, address string, coord model.LatLng) error
}

// CityCacheRepository 丸め座標キー→都市名のキャッシュ
// "Unknown City" センチネルもそのまま保存される
type CityCacheRepository interface {
	GetCity(ctx context.Context, coordKey string) (string, bool, error)
	PutCity(ctx context.Context, coordKey string, city string) error
}

// NearbyFeatureCacheRepository 丸め座標キー→周辺地物名のキャッシュ
// 名前が見つからなかった事実（nil）もキャッシュされるため、
// 取得結果は (名前, キャッシュ有無) の2値で区別する
type NearbyFeatureCacheRepository interface {
	GetNearbyFeatureName(ctx context.Context, coordKey string) (name *string, cached bool, err error)
	PutNearbyFeatureName(ctx context.Context, coordKey string, name *string) error
}

// RegionCourseCacheRepository リージョンキー→コースリスト全体のキャッシュ
// リスト全体が1エントリとして不可分に保存される
type RegionCourseCacheRepository interface {
	GetRegionCourses(ctx context.Context, regionKey string) ([]*model.Course, bool, error)
	PutRegionCourses(ctx context.Context, regionKey string, courses []*model.Course) error
}
