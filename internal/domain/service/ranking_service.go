package service

import (
	"fmt"
	"sort"

	"GoBuddy-App/internal/domain/helper"
	"GoBuddy-App/internal/domain/model"
)

// RankingService 全プレイヤーへの合計距離でコースをランク付けするドメインサービス
// playerCoordsとplayerNamesはインデックスで対応する並行配列
type RankingService interface {
	// FindBestCourses 各コースのプレイヤー別距離を計算し、合計距離の昇順でソートして返す
	FindBestCourses(courses []*model.Course, playerCoords []model.LatLng, playerNames []string) []*model.Course
	// CalculatePlayerDistances 全プレイヤーの組について相互距離を計算する
	CalculatePlayerDistances(playerCoords []model.LatLng, playerNames []string) []model.PlayerPairDistance
}

type rankingService struct{}

// NewRankingService 新しいRankingServiceインスタンスを作成
func NewRankingService() RankingService {
	return &rankingService{}
}

// FindBestCourses 各コースについてプレイヤーごとの大円距離（マイル）と
// 推定移動時間（時速50マイル換算、分、切り捨て）を求め、合計距離の昇順に並べる
// ソートは安定で、同距離のコースは元の相対順を保つ
func (s *rankingService) FindBestCourses(courses []*model.Course, playerCoords []model.LatLng, playerNames []string) []*model.Course {
	for _, course := range courses {
		courseCoord := course.ToLatLng()
		totalDistance := 0.0
		course.Distances = make(map[string]model.PlayerDistance)
		for i, coord := range playerCoords {
			if i >= len(playerNames) {
				break
			}
			distance := helper.DistanceMiles(courseCoord, coord)
			travelTime := distance / model.AverageSpeedMph * 60
			course.Distances[playerNames[i]] = model.PlayerDistance{
				Distance:   distance,
				TravelTime: int(travelTime),
			}
			totalDistance += distance
		}
		course.TotalDistance = totalDistance
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].TotalDistance < courses[j].TotalDistance
	})
	return courses
}

// CalculatePlayerDistances すべての異なる2人組（i<j）の距離を組み合わせ順で返す
// プレイヤーが1人以下なら空リスト
func (s *rankingService) CalculatePlayerDistances(playerCoords []model.LatLng, playerNames []string) []model.PlayerPairDistance {
	distances := []model.PlayerPairDistance{}
	for i := 0; i < len(playerCoords); i++ {
		for j := i + 1; j < len(playerCoords); j++ {
			distance := helper.DistanceMiles(playerCoords[i], playerCoords[j])
			distances = append(distances, model.PlayerPairDistance{
				Players:  fmt.Sprintf("%s and %s", playerNames[i], playerNames[j]),
				Distance: distance,
			})
		}
	}
	return distances
}
