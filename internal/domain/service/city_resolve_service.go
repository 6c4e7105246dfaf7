package service

import (
	"context"
	"log"
	"sort"
	"strconv"

	"GoBuddy-App/internal/domain/helper"
	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
)

// CityResolveService 座標→都市名の解決を行うドメインサービス
// 失敗しても必ず文字列を返す（全滅時は "Unknown City" センチネル）
type CityResolveService interface {
	// ResolveCity 座標と地物タグから都市名を解決する
	// budgetは1回の検索リクエスト内の全都市解決で共有される
	ResolveCity(ctx context.Context, coord model.LatLng, featureTags map[string]string, budget *model.QueryBudget) string
}

type cityResolveService struct {
	cache    repository.CityCacheRepository
	mapData  repository.MapDataProvider
	geocoder repository.GeocodingProvider
}

// NewCityResolveService 新しいCityResolveServiceインスタンスを作成
func NewCityResolveService(
	cache repository.CityCacheRepository,
	mapData repository.MapDataProvider,
	geocoder repository.GeocodingProvider,
) CityResolveService {
	return &cityResolveService{
		cache:    cache,
		mapData:  mapData,
		geocoder: geocoder,
	}
}

// ResolveCity 3段フォールバックで都市名を解決する
//  1. 地物タグの address系キー（外部呼び出しなし）
//  2. 丸め座標キーでのキャッシュ参照
//  3. 予算が残っていれば消費して行政境界クエリ → ダメなら逆ジオコーディング
//
// 段3の結果はセンチネル含めてキャッシュされる（恒久的に解決不能な地点は
// 二度と照会されない）。予算切れの場合はキャッシュせずセンチネルを返す
func (s *cityResolveService) ResolveCity(ctx context.Context, coord model.LatLng, featureTags map[string]string, budget *model.QueryBudget) string {
	// 段1: 地物自身のタグ
	for _, tag := range model.CityTags {
		if city := featureTags[tag]; city != "" {
			return city
		}
	}

	coordKey := helper.CoordKey(coord)

	// 段2: キャッシュ
	if city, cached, err := s.cache.GetCity(ctx, coordKey); err != nil {
		log.Printf("⚠️ 都市名キャッシュの参照失敗 (%s): %v", coordKey, err)
	} else if cached {
		return city
	}

	// 段3: 予算を1消費して外部照会
	if !budget.TryConsume() {
		return model.UnknownCity
	}

	city := s.queryEnclosingCity(ctx, coord)
	if city == model.UnknownCity {
		city = s.reverseGeocodeCity(ctx, coord)
	}

	if err := s.cache.PutCity(ctx, coordKey, city); err != nil {
		log.Printf("⚠️ 都市名キャッシュへの保存失敗 (%s): %v", coordKey, err)
	}

	return city
}

// queryEnclosingCity 座標を含む最小の行政区域名を探す
// admin_levelが大きい（より細かい）境界を優先し、6〜8のみ採用する
// クエリ失敗は「該当なし」として扱い伝播させない
func (s *cityResolveService) queryEnclosingCity(ctx context.Context, coord model.LatLng) string {
	boundaries, err := s.mapData.FindAdminBoundaries(ctx, coord)
	if err != nil {
		log.Printf("⚠️ 行政境界クエリに失敗: %v", err)
		return model.UnknownCity
	}
	log.Printf("行政境界クエリが %d 件の境界を返しました", len(boundaries))

	sort.SliceStable(boundaries, func(i, j int) bool {
		return adminLevel(boundaries[i]) > adminLevel(boundaries[j])
	})

	for _, boundary := range boundaries {
		level := boundary.Tags["admin_level"]
		name := boundary.Tags["name"]
		if name != "" && (level == "6" || level == "7" || level == "8") {
			return name
		}
	}
	return model.UnknownCity
}

// reverseGeocodeCity 逆ジオコーディングで都市名を取得する
// タイムアウトやクォータ超過はセンチネルに落とす
func (s *cityResolveService) reverseGeocodeCity(ctx context.Context, coord model.LatLng) string {
	address, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		log.Printf("⚠️ 逆ジオコーディング失敗 (%f, %f): %v", coord.Lat, coord.Lng, err)
		return model.UnknownCity
	}
	if address == nil {
		return model.UnknownCity
	}
	return address.CityName()
}

func adminLevel(feature *model.MapFeature) int {
	level, err := strconv.Atoi(feature.Tags["admin_level"])
	if err != nil {
		return 0
	}
	return level
}
