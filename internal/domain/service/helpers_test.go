package service

import (
	"context"
	"fmt"
	"sync"

	"GoBuddy-App/internal/domain/model"
)

// --- テスト用のインメモリ実装 ---

type fakeGeocodeCache struct {
	mu      sync.Mutex
	entries map[string]model.LatLng
}

func newFakeGeocodeCache() *fakeGeocodeCache {
	return &fakeGeocodeCache{entries: map[string]model.LatLng{}}
}

func (f *fakeGeocodeCache) GetGeocode(ctx context.Context, address string) (*model.LatLng, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if coord, ok := f.entries[address]; ok {
		c := coord
		return &c, nil
	}
	return nil, nil
}

func (f *fakeGeocodeCache) PutGeocode(ctx context.Context, address string, coord model.LatLng) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[address]; !ok {
		f.entries[address] = coord
	}
	return nil
}

type fakeCityCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCityCache() *fakeCityCache {
	return &fakeCityCache{entries: map[string]string{}}
}

func (f *fakeCityCache) GetCity(ctx context.Context, coordKey string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	city, ok := f.entries[coordKey]
	return city, ok, nil
}

func (f *fakeCityCache) PutCity(ctx context.Context, coordKey string, city string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[coordKey]; !ok {
		f.entries[coordKey] = city
	}
	return nil
}

type fakeNearbyCache struct {
	mu      sync.Mutex
	entries map[string]*string
}

func newFakeNearbyCache() *fakeNearbyCache {
	return &fakeNearbyCache{entries: map[string]*string{}}
}

func (f *fakeNearbyCache) GetNearbyFeatureName(ctx context.Context, coordKey string) (*string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.entries[coordKey]
	return name, ok, nil
}

func (f *fakeNearbyCache) PutNearbyFeatureName(ctx context.Context, coordKey string, name *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[coordKey]; !ok {
		f.entries[coordKey] = name
	}
	return nil
}

type fakeRegionCache struct {
	mu      sync.Mutex
	entries map[string][]*model.Course
}

func newFakeRegionCache() *fakeRegionCache {
	return &fakeRegionCache{entries: map[string][]*model.Course{}}
}

func (f *fakeRegionCache) GetRegionCourses(ctx context.Context, regionKey string) ([]*model.Course, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	courses, ok := f.entries[regionKey]
	return courses, ok, nil
}

func (f *fakeRegionCache) PutRegionCourses(ctx context.Context, regionKey string, courses []*model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[regionKey]; !ok {
		f.entries[regionKey] = courses
	}
	return nil
}

type fakeCoursesRepo struct {
	mu      sync.Mutex
	courses []*model.Course
	addErr  error
}

func newFakeCoursesRepo() *fakeCoursesRepo {
	return &fakeCoursesRepo{}
}

func (f *fakeCoursesRepo) Add(ctx context.Context, course *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCoursesRepo) GetAll(ctx context.Context) ([]*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.courses, nil
}

type fakePlayersRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*model.Player
	byAddr map[string]*model.Player
}

func newFakePlayersRepo() *fakePlayersRepo {
	return &fakePlayersRepo{
		nextID: 1,
		byID:   map[int]*model.Player{},
		byAddr: map[string]*model.Player{},
	}
}

func (f *fakePlayersRepo) GetByID(ctx context.Context, id int) (*model.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakePlayersRepo) GetByAddress(ctx context.Context, address string) (*model.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byAddr[address], nil
}

func (f *fakePlayersRepo) Insert(ctx context.Context, player *model.Player) (*model.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// 住所のUNIQUE制約と同じ挙動: 衝突したら既存行を返す
	if existing, ok := f.byAddr[player.Address]; ok {
		return existing, nil
	}
	inserted := *player
	inserted.ID = f.nextID
	f.nextID++
	f.byID[inserted.ID] = &inserted
	f.byAddr[inserted.Address] = &inserted
	return &inserted, nil
}

func (f *fakePlayersRepo) GetAll(ctx context.Context) ([]*model.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	players := make([]*model.Player, 0, len(f.byID))
	for i := 1; i < f.nextID; i++ {
		if p, ok := f.byID[i]; ok {
			players = append(players, p)
		}
	}
	return players, nil
}

type fakeGeocodingProvider struct {
	mu             sync.Mutex
	geocodeResults map[string]*model.LatLng
	geocodeErr     error
	geocodeCalls   int
	reverseResult  *model.ReverseAddress
	reverseErr     error
	reverseCalls   int
}

func newFakeGeocodingProvider() *fakeGeocodingProvider {
	return &fakeGeocodingProvider{geocodeResults: map[string]*model.LatLng{}}
}

func (f *fakeGeocodingProvider) Geocode(ctx context.Context, address string) (*model.LatLng, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.geocodeCalls++
	if f.geocodeErr != nil {
		return nil, f.geocodeErr
	}
	return f.geocodeResults[address], nil
}

func (f *fakeGeocodingProvider) ReverseGeocode(ctx context.Context, coord model.LatLng) (*model.ReverseAddress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reverseCalls++
	if f.reverseErr != nil {
		return nil, f.reverseErr
	}
	return f.reverseResult, nil
}

type fakeMapDataProvider struct {
	mu             sync.Mutex
	golfFeatures   []*model.MapFeature
	golfErr        error
	golfCalls      int
	adminFeatures  []*model.MapFeature
	adminErr       error
	adminCalls     int
	nearbyFeatures []*model.MapFeature
	nearbyErr      error
	nearbyCalls    int
}

func newFakeMapDataProvider() *fakeMapDataProvider {
	return &fakeMapDataProvider{}
}

func (f *fakeMapDataProvider) FindGolfCourses(ctx context.Context, center model.LatLng, radiusMeters int) ([]*model.MapFeature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.golfCalls++
	if f.golfErr != nil {
		return nil, f.golfErr
	}
	return f.golfFeatures, nil
}

func (f *fakeMapDataProvider) FindAdminBoundaries(ctx context.Context, coord model.LatLng) ([]*model.MapFeature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adminCalls++
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	return f.adminFeatures, nil
}

func (f *fakeMapDataProvider) FindNearbyPlaces(ctx context.Context, coord model.LatLng) ([]*model.MapFeature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nearbyCalls++
	if f.nearbyErr != nil {
		return nil, f.nearbyErr
	}
	return f.nearbyFeatures, nil
}

// nodeFeature テスト用のnode地物を作成
func nodeFeature(lat, lng float64, tags map[string]string) *model.MapFeature {
	if tags == nil {
		tags = map[string]string{}
	}
	return &model.MapFeature{
		Type: "node",
		Lat:  &lat,
		Lon:  &lng,
		Tags: tags,
	}
}

// relationFeature テスト用のrelation地物を作成（重心付き）
func relationFeature(centerLat, centerLng float64, tags map[string]string) *model.MapFeature {
	if tags == nil {
		tags = map[string]string{}
	}
	return &model.MapFeature{
		Type:   "relation",
		Center: &model.LatLng{Lat: centerLat, Lng: centerLng},
		Tags:   tags,
	}
}

var errProviderDown = fmt.Errorf("provider unavailable")
