package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"GoBuddy-App/internal/domain/model"
)

func TestFindBestCourses(t *testing.T) {
	svc := NewRankingService()

	t.Run("プレイヤー別距離と合計距離を計算する", func(t *testing.T) {
		courses := []*model.Course{
			{Name: "Course A", Lat: 0, Lng: 0},
		}
		coords := []model.LatLng{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 1},
		}
		names := []string{"P1", "P2"}

		ranked := svc.FindBestCourses(courses, coords, names)

		assert.Len(t, ranked, 1)
		assert.Equal(t, 0.0, ranked[0].Distances["P1"].Distance)
		assert.Equal(t, 0, ranked[0].Distances["P1"].TravelTime)
		// 赤道上の経度1度 ≈ 69.17マイル
		assert.InDelta(t, 69.17, ranked[0].Distances["P2"].Distance, 0.05)
		assert.InDelta(t, 69.17, ranked[0].TotalDistance, 0.05)
		// 69.17マイル / 50mph * 60分 = 83分（切り捨て）
		assert.Equal(t, 83, ranked[0].Distances["P2"].TravelTime)
	})

	t.Run("合計距離の昇順にソートされる", func(t *testing.T) {
		courses := []*model.Course{
			{Name: "Far", Lat: 10, Lng: 10},
			{Name: "Near", Lat: 0.1, Lng: 0.1},
		}
		coords := []model.LatLng{{Lat: 0, Lng: 0}}
		names := []string{"P1"}

		ranked := svc.FindBestCourses(courses, coords, names)

		assert.Equal(t, "Near", ranked[0].Name)
		assert.Equal(t, "Far", ranked[1].Name)
	})

	t.Run("同距離のコースは元の相対順を保つ", func(t *testing.T) {
		courses := []*model.Course{
			{Name: "First", Lat: 0, Lng: 1},
			{Name: "Second", Lat: 0, Lng: 1},
			{Name: "Third", Lat: 0, Lng: 1},
		}
		coords := []model.LatLng{{Lat: 0, Lng: 0}}
		names := []string{"P1"}

		ranked := svc.FindBestCourses(courses, coords, names)

		assert.Equal(t, "First", ranked[0].Name)
		assert.Equal(t, "Second", ranked[1].Name)
		assert.Equal(t, "Third", ranked[2].Name)
	})

	t.Run("プレイヤーが空でも落ちない", func(t *testing.T) {
		courses := []*model.Course{{Name: "Course A", Lat: 0, Lng: 0}}

		ranked := svc.FindBestCourses(courses, nil, nil)

		assert.Len(t, ranked, 1)
		assert.Equal(t, 0.0, ranked[0].TotalDistance)
		assert.Empty(t, ranked[0].Distances)
	})
}

func TestCalculatePlayerDistances(t *testing.T) {
	svc := NewRankingService()

	t.Run("2人組の距離とラベル", func(t *testing.T) {
		coords := []model.LatLng{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 1},
		}
		names := []string{"P1", "P2"}

		distances := svc.CalculatePlayerDistances(coords, names)

		assert.Len(t, distances, 1)
		assert.Equal(t, "P1 and P2", distances[0].Players)
		assert.InDelta(t, 69.17, distances[0].Distance, 0.05)
	})

	t.Run("組み合わせ順（iの昇順、次にjの昇順）", func(t *testing.T) {
		coords := []model.LatLng{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 1},
			{Lat: 1, Lng: 0},
		}
		names := []string{"A", "B", "C"}

		distances := svc.CalculatePlayerDistances(coords, names)

		assert.Len(t, distances, 3)
		assert.Equal(t, "A and B", distances[0].Players)
		assert.Equal(t, "A and C", distances[1].Players)
		assert.Equal(t, "B and C", distances[2].Players)
	})

	t.Run("1人以下なら空リスト", func(t *testing.T) {
		assert.Empty(t, svc.CalculatePlayerDistances(nil, nil))
		assert.Empty(t, svc.CalculatePlayerDistances(
			[]model.LatLng{{Lat: 0, Lng: 0}}, []string{"P1"}))
	})
}
