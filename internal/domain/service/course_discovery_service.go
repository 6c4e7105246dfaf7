package service

import (
	"context"
	"fmt"
	"log"

	"GoBuddy-App/internal/domain/helper"
	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
)

// CourseDiscoveryService 地図データサービスからゴルフ場を発見するドメインサービス
// 結果はリージョン単位（丸め中心座標+半径）で丸ごとキャッシュされ、
// キャッシュヒット時は名前・都市の解決も含めて一切の外部呼び出しをしない
type CourseDiscoveryService interface {
	FindGolfCourses(ctx context.Context, center model.LatLng, radiusMeters int) ([]*model.Course, error)
}

type courseDiscoveryService struct {
	regionCache  repository.RegionCourseCacheRepository
	nearbyCache  repository.NearbyFeatureCacheRepository
	coursesRepo  repository.CoursesRepository
	mapData      repository.MapDataProvider
	cityResolver CityResolveService
}

// NewCourseDiscoveryService 新しいCourseDiscoveryServiceインスタンスを作成
func NewCourseDiscoveryService(
	regionCache repository.RegionCourseCacheRepository,
	nearbyCache repository.NearbyFeatureCacheRepository,
	coursesRepo repository.CoursesRepository,
	mapData repository.MapDataProvider,
	cityResolver CityResolveService,
) CourseDiscoveryService {
	return &courseDiscoveryService{
		regionCache:  regionCache,
		nearbyCache:  nearbyCache,
		coursesRepo:  coursesRepo,
		mapData:      mapData,
		cityResolver: cityResolver,
	}
}

// FindGolfCourses 中心から半径内のゴルフ場を検索する
// 空のリストも有効な結果としてキャッシュされる
func (s *courseDiscoveryService) FindGolfCourses(ctx context.Context, center model.LatLng, radiusMeters int) ([]*model.Course, error) {
	regionKey := helper.RegionKey(center, radiusMeters)

	cached, hit, err := s.regionCache.GetRegionCourses(ctx, regionKey)
	if err != nil {
		return nil, err
	}
	if hit {
		return cached, nil
	}

	features, err := s.mapData.FindGolfCourses(ctx, center, radiusMeters)
	if err != nil {
		// 主検索の失敗は空リストとしてキャッシュしてはいけないため、そのまま返す
		return nil, fmt.Errorf("ゴルフ場の検索に失敗: %w", err)
	}

	// 予算カウンタはこの検索リクエスト内の全地物で共有される
	cityBudget := model.NewQueryBudget(model.MaxAdditionalQueries)
	nearbyBudget := model.NewQueryBudget(model.MaxNearbyQueries)

	courses := make([]*model.Course, 0, len(features))
	for _, feature := range features {
		coord := feature.Coordinates()
		if coord == nil {
			// 代表座標のない地物は何にも寄与しない
			continue
		}

		name := s.resolveCourseName(ctx, feature.Tags, *coord, nearbyBudget)
		city := s.cityResolver.ResolveCity(ctx, *coord, feature.Tags, cityBudget)

		access := feature.Tags["access"]
		if access == "" {
			access = "unknown"
		}

		course := &model.Course{
			Name:   name,
			City:   city,
			Lat:    coord.Lat,
			Lng:    coord.Lng,
			Access: access,
		}

		if err := s.coursesRepo.Add(ctx, course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	log.Printf("found %d golf courses within %.0f miles of %s",
		len(courses), float64(radiusMeters)/1609.34, helper.CoordKey(center))

	if err := s.regionCache.PutRegionCourses(ctx, regionKey, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// resolveCourseName 地物タグ→代替タグ→周辺地物名→leisureタグの順で名前を解決する
// 周辺地物クエリは専用の予算が残っている場合のみ実行される
func (s *courseDiscoveryService) resolveCourseName(ctx context.Context, tags map[string]string, coord model.LatLng, nearbyBudget *model.QueryBudget) string {
	if name := tags["name"]; name != "" {
		return name
	}

	for _, tag := range model.AlternativeNameTags {
		if name := tags[tag]; name != "" {
			return name
		}
	}

	if nearbyBudget.TryConsume() {
		if name := s.nameFromNearbyFeatures(ctx, coord); name != nil {
			return *name
		}
	}

	leisure := tags["leisure"]
	if leisure == "" {
		leisure = "Unknown"
	}
	return helper.Capitalize(leisure)
}

// nameFromNearbyFeatures 周辺500m以内の地区地物から名前を1つ借りる
// 「見つからなかった」結果もキャッシュされ、同じ座標は二度と照会されない
func (s *courseDiscoveryService) nameFromNearbyFeatures(ctx context.Context, coord model.LatLng) *string {
	coordKey := helper.CoordKey(coord)

	if name, cached, err := s.nearbyCache.GetNearbyFeatureName(ctx, coordKey); err != nil {
		log.Printf("⚠️ 周辺地物名キャッシュの参照失敗 (%s): %v", coordKey, err)
	} else if cached {
		return name
	}

	features, err := s.mapData.FindNearbyPlaces(ctx, coord)
	if err != nil {
		// クエリ失敗も「該当なし」として記録する
		log.Printf("⚠️ 周辺地物クエリに失敗: %v", err)
		if putErr := s.nearbyCache.PutNearbyFeatureName(ctx, coordKey, nil); putErr != nil {
			log.Printf("⚠️ 周辺地物名キャッシュへの保存失敗 (%s): %v", coordKey, putErr)
		}
		return nil
	}

	var nearbyName *string
	for _, feature := range features {
		if name := feature.Tags["name"]; name != "" {
			nearbyName = &name
			break
		}
	}

	if err := s.nearbyCache.PutNearbyFeatureName(ctx, coordKey, nearbyName); err != nil {
		log.Printf("⚠️ 周辺地物名キャッシュへの保存失敗 (%s): %v", coordKey, err)
	}
	return nearbyName
}
