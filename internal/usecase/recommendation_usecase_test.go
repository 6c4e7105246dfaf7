package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dmodel "GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/service"
	"GoBuddy-App/model"
)

// --- テスト用のスタブサービス ---

type stubPlayersService struct {
	players map[string]*dmodel.Player
	nextID  int
}

func newStubPlayersService() *stubPlayersService {
	return &stubPlayersService{players: map[string]*dmodel.Player{}, nextID: 1}
}

func (s *stubPlayersService) FetchOrCreate(ctx context.Context, id *int, name, address string) (*dmodel.Player, error) {
	if existing, ok := s.players[address]; ok {
		return existing, nil
	}
	player := &dmodel.Player{ID: s.nextID, Name: name, Address: address}
	s.nextID++
	s.players[address] = player
	return player, nil
}

func (s *stubPlayersService) GetAll(ctx context.Context) ([]*dmodel.Player, error) {
	return nil, nil
}

// resolveCoord 指定住所のスタブに座標を設定する
func (s *stubPlayersService) resolveCoord(address string, coord dmodel.LatLng) {
	s.players[address] = &dmodel.Player{
		ID:      s.nextID,
		Name:    address,
		Address: address,
		Coord:   &coord,
	}
	s.nextID++
}

type stubDiscoveryService struct {
	courses    []*dmodel.Course
	err        error
	lastCenter dmodel.LatLng
	lastRadius int
	calls      int
}

func (s *stubDiscoveryService) FindGolfCourses(ctx context.Context, center dmodel.LatLng, radiusMeters int) ([]*dmodel.Course, error) {
	s.calls++
	s.lastCenter = center
	s.lastRadius = radiusMeters
	if s.err != nil {
		return nil, s.err
	}
	return s.courses, nil
}

type stubRecommendRepo struct {
	saved   map[string]*dmodel.RecommendationResult
	saveErr error
}

func newStubRecommendRepo() *stubRecommendRepo {
	return &stubRecommendRepo{saved: map[string]*dmodel.RecommendationResult{}}
}

func (s *stubRecommendRepo) SaveRecommendation(ctx context.Context, result *dmodel.RecommendationResult) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	result.RecommendationID = fmt.Sprintf("rec_%d", len(s.saved)+1)
	s.saved[result.RecommendationID] = result
	return nil
}

func (s *stubRecommendRepo) GetRecommendation(ctx context.Context, recommendationID string) (*dmodel.RecommendationResult, error) {
	result, ok := s.saved[recommendationID]
	if !ok {
		return nil, fmt.Errorf("ランキング結果が見つかりません: %s", recommendationID)
	}
	return result, nil
}

func TestRecommendationUseCase_Recommend(t *testing.T) {
	ctx := context.Background()

	t.Run("プレイヤー解決から保存までの一連の流れ", func(t *testing.T) {
		players := newStubPlayersService()
		players.resolveCoord("A", dmodel.LatLng{Lat: 34.0, Lng: -84.0})
		players.resolveCoord("B", dmodel.LatLng{Lat: 36.0, Lng: -82.0})

		discovery := &stubDiscoveryService{courses: []*dmodel.Course{
			{ID: "c1", Name: "Pine Valley", Lat: 35.0, Lng: -83.0},
		}}
		repo := newStubRecommendRepo()
		uc := NewRecommendationUseCase(players, discovery, service.NewRankingService(), repo)

		result, err := uc.Recommend(ctx, []model.PlayerInput{
			{Name: "A", Address: "A"},
			{Name: "B", Address: "B"},
		})
		require.NoError(t, err)

		// 検索中心は2プレイヤーの重心
		assert.InDelta(t, 35.0, discovery.lastCenter.Lat, 1e-9)
		assert.InDelta(t, -83.0, discovery.lastCenter.Lng, 1e-9)
		assert.Equal(t, dmodel.DefaultSearchRadiusMeters, discovery.lastRadius)

		assert.NotEmpty(t, result.RecommendationID)
		assert.Len(t, result.Players, 2)
		require.Len(t, result.BestCourses, 1)
		assert.Len(t, result.BestCourses[0].Distances, 2)
		require.Len(t, result.PlayerDistances, 1)
		assert.Equal(t, "A and B", result.PlayerDistances[0].Players)

		// 保存済みの結果はIDで取得できる
		fetched, err := uc.GetRecommendation(ctx, result.RecommendationID)
		require.NoError(t, err)
		assert.Equal(t, result.RecommendationID, fetched.RecommendationID)
	})

	t.Run("名前か住所が欠けたエントリはスキップされる", func(t *testing.T) {
		players := newStubPlayersService()
		players.resolveCoord("A", dmodel.LatLng{Lat: 34.0, Lng: -84.0})

		discovery := &stubDiscoveryService{}
		uc := NewRecommendationUseCase(players, discovery, service.NewRankingService(), newStubRecommendRepo())

		result, err := uc.Recommend(ctx, []model.PlayerInput{
			{Name: "A", Address: "A"},
			{Name: "", Address: "no name"},
			{Name: "no address", Address: ""},
		})
		require.NoError(t, err)
		assert.Len(t, result.Players, 1)
	})

	t.Run("座標が1人も解決できなければErrNoResolvablePlayers", func(t *testing.T) {
		players := newStubPlayersService()
		discovery := &stubDiscoveryService{}
		uc := NewRecommendationUseCase(players, discovery, service.NewRankingService(), newStubRecommendRepo())

		_, err := uc.Recommend(ctx, []model.PlayerInput{
			{Name: "A", Address: "unresolvable"},
		})
		require.ErrorIs(t, err, dmodel.ErrNoResolvablePlayers)
		assert.Equal(t, 0, discovery.calls)
	})

	t.Run("座標のないプレイヤーは保持されるが距離計算からは除外される", func(t *testing.T) {
		players := newStubPlayersService()
		players.resolveCoord("A", dmodel.LatLng{Lat: 34.0, Lng: -84.0})
		players.resolveCoord("B", dmodel.LatLng{Lat: 36.0, Lng: -82.0})

		discovery := &stubDiscoveryService{courses: []*dmodel.Course{
			{ID: "c1", Name: "Pine Valley", Lat: 35.0, Lng: -83.0},
		}}
		uc := NewRecommendationUseCase(players, discovery, service.NewRankingService(), newStubRecommendRepo())

		result, err := uc.Recommend(ctx, []model.PlayerInput{
			{Name: "A", Address: "A"},
			{Name: "B", Address: "B"},
			{Name: "C", Address: "unresolvable"},
		})
		require.NoError(t, err)

		assert.Len(t, result.Players, 3)
		require.Len(t, result.BestCourses, 1)
		// 距離は座標の解決できた2人分だけ
		assert.Len(t, result.BestCourses[0].Distances, 2)
		assert.NotContains(t, result.BestCourses[0].Distances, "C")
		require.Len(t, result.PlayerDistances, 1)
		assert.Equal(t, "A and B", result.PlayerDistances[0].Players)
	})

	t.Run("コース発見の失敗はそのまま伝播する", func(t *testing.T) {
		players := newStubPlayersService()
		players.resolveCoord("A", dmodel.LatLng{Lat: 34.0, Lng: -84.0})

		discovery := &stubDiscoveryService{err: fmt.Errorf("overpass unavailable")}
		uc := NewRecommendationUseCase(players, discovery, service.NewRankingService(), newStubRecommendRepo())

		_, err := uc.Recommend(ctx, []model.PlayerInput{{Name: "A", Address: "A"}})
		require.Error(t, err)
		assert.NotErrorIs(t, err, dmodel.ErrNoResolvablePlayers)
	})
}
