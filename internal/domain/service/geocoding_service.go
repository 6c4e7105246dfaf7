package service

import (
	"context"
	"log"
	"strings"

	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
)

// GeocodingService 住所→座標の解決を行うドメインサービス
// 結果は永続キャッシュにメモ化され、未キャッシュの住所1件につき外部呼び出しは1回
type GeocodingService interface {
	// Resolve 住所を座標に解決する（解決できなければnil）
	Resolve(ctx context.Context, address string) (*model.LatLng, error)
}

type geocodingService struct {
	cache    repository.GeocodeCacheRepository
	provider repository.GeocodingProvider
}

// NewGeocodingService 新しいGeocodingServiceインスタンスを作成
func NewGeocodingService(cache repository.GeocodeCacheRepository, provider repository.GeocodingProvider) GeocodingService {
	return &geocodingService{
		cache:    cache,
		provider: provider,
	}
}

// Resolve 住所を座標に解決する
// キャッシュキーは入力された住所文字列そのまま（大文字小文字・空白も区別）
// プロバイダのタイムアウト等は吸収してnilを返し、キャッシュは変更しない
// （次回のリクエストで自然に再試行される）
func (s *geocodingService) Resolve(ctx context.Context, address string) (*model.LatLng, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	cached, err := s.cache.GetGeocode(ctx, address)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		log.Printf("CACHED: using cache for %s", address)
		return cached, nil
	}

	log.Printf("UNCACHED: geocoding %s", address)
	coord, err := s.provider.Geocode(ctx, address)
	if err != nil {
		// タイムアウト等の外部要因はここで吸収する
		log.Printf("⚠️ ジオコーディング失敗 (%s): %v", address, err)
		return nil, nil
	}
	if coord == nil {
		// 該当なし — 今は解決できない住所も後で解決できる可能性があるため
		// キャッシュには記録しない
		return nil, nil
	}

	if err := s.cache.PutGeocode(ctx, address, *coord); err != nil {
		log.Printf("⚠️ ジオコードキャッシュへの保存失敗 (%s): %v", address, err)
	}
	return coord, nil
}
