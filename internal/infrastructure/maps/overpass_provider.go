package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"GoBuddy-App/internal/domain/model"
)

const overpassBaseURL = "https://overpass-api.de/api/interpreter"

// OverpassProvider はOverpass APIを使用した地図データクエリの実装
type OverpassProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOverpassProvider は新しいプロバイダを生成する
func NewOverpassProvider() *OverpassProvider {
	return &OverpassProvider{
		baseURL:    overpassBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewOverpassProviderWithBaseURL はエンドポイントを指定してプロバイダを生成する（テスト用）
func NewOverpassProviderWithBaseURL(baseURL string) *OverpassProvider {
	return &OverpassProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FindGolfCourses は中心から半径内のゴルフ場タグ付き地物を検索する
// node/way/relationの3種類を1クエリでまとめて取得する
func (o *OverpassProvider) FindGolfCourses(ctx context.Context, center model.LatLng, radiusMeters int) ([]*model.MapFeature, error) {
	query := fmt.Sprintf(`[out:json];
	(
	  node["leisure"="golf_course"](around:%d,%f,%f);
	  way["leisure"="golf_course"](around:%d,%f,%f);
	  relation["leisure"="golf_course"](around:%d,%f,%f);
	);
	out center tags;`,
		radiusMeters, center.Lat, center.Lng,
		radiusMeters, center.Lat, center.Lng,
		radiusMeters, center.Lat, center.Lng,
	)
	return o.query(ctx, query)
}

// FindAdminBoundaries は座標近傍の行政境界（admin_level 6〜8）を検索する
func (o *OverpassProvider) FindAdminBoundaries(ctx context.Context, coord model.LatLng) ([]*model.MapFeature, error) {
	query := fmt.Sprintf(`[out:json];
	(
	  relation["boundary"="administrative"]["admin_level"~"^(6|7|8)$"](around:10,%f,%f);
	);
	out body;`,
		coord.Lat, coord.Lng,
	)
	return o.query(ctx, query)
}

// FindNearbyPlaces は座標から500m以内の名前付き地区地物を検索する
func (o *OverpassProvider) FindNearbyPlaces(ctx context.Context, coord model.LatLng) ([]*model.MapFeature, error) {
	query := fmt.Sprintf(`[out:json];
	(
	  node(around:500,%f,%f)[place~"locality|suburb|neighbourhood|hamlet"][name];
	  way(around:500,%f,%f)[place~"locality|suburb|neighbourhood|hamlet"][name];
	  relation(around:500,%f,%f)[place~"locality|suburb|neighbourhood|hamlet"][name];
	);
	out tags;`,
		coord.Lat, coord.Lng,
		coord.Lat, coord.Lng,
		coord.Lat, coord.Lng,
	)
	return o.query(ctx, query)
}

// query はOverpass QLを実行して地物リストを返す
func (o *OverpassProvider) query(ctx context.Context, overpassQL string) ([]*model.MapFeature, error) {
	form := url.Values{}
	form.Set("data", overpassQL)

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Overpass APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Overpass APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	features := make([]*model.MapFeature, 0, len(apiResp.Elements))
	for _, el := range apiResp.Elements {
		feature := &model.MapFeature{
			Type: el.Type,
			ID:   el.ID,
			Lat:  el.Lat,
			Lon:  el.Lon,
			Tags: el.Tags,
		}
		if el.Center != nil {
			feature.Center = &model.LatLng{Lat: el.Center.Lat, Lng: el.Center.Lon}
		}
		if feature.Tags == nil {
			feature.Tags = map[string]string{}
		}
		features = append(features, feature)
	}
	return features, nil
}

// --- Overpass APIのレスポンスをパースするための構造体 ---

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *overpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
