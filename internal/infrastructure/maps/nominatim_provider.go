package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"GoBuddy-App/internal/domain/model"
)

const (
	nominatimBaseURL = "https://nominatim.openstreetmap.org"
	// nominatimUserAgent Nominatimの利用規約で必須
	nominatimUserAgent = "gobuddy"
)

// NominatimProvider はNominatim APIを使用したジオコーディングの実装
type NominatimProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimProvider は新しいプロバイダを生成する
func NewNominatimProvider() *NominatimProvider {
	return &NominatimProvider{
		baseURL:    nominatimBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewNominatimProviderWithBaseURL はエンドポイントを指定してプロバイダを生成する（テスト用）
func NewNominatimProviderWithBaseURL(baseURL string) *NominatimProvider {
	return &NominatimProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode は住所を座標に解決する
// 該当なしは (nil, nil) を返す
func (n *NominatimProvider) Geocode(ctx context.Context, address string) (*model.LatLng, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/search?%s", n.baseURL, params.Encode())

	var results []nominatimPlace
	if err := n.doGet(ctx, reqURL, &results); err != nil {
		return nil, fmt.Errorf("ジオコーディングリクエストに失敗: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("緯度のパースに失敗: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("経度のパースに失敗: %w", err)
	}

	return &model.LatLng{Lat: lat, Lng: lng}, nil
}

// ReverseGeocode は座標から構造化された住所フィールドを取得する
func (n *NominatimProvider) ReverseGeocode(ctx context.Context, coord model.LatLng) (*model.ReverseAddress, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	params.Set("format", "jsonv2")
	reqURL := fmt.Sprintf("%s/reverse?%s", n.baseURL, params.Encode())

	var result nominatimPlace
	if err := n.doGet(ctx, reqURL, &result); err != nil {
		return nil, fmt.Errorf("逆ジオコーディングリクエストに失敗: %w", err)
	}

	if result.Address == nil {
		return nil, nil
	}

	return &model.ReverseAddress{
		City:    result.Address.City,
		Town:    result.Address.Town,
		Village: result.Address.Village,
		Hamlet:  result.Address.Hamlet,
		County:  result.Address.County,
	}, nil
}

func (n *NominatimProvider) doGet(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("APIのクォータを超過しました: %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}

// --- Nominatim APIのレスポンスをパースするための構造体 ---

type nominatimPlace struct {
	Lat     string            `json:"lat"`
	Lon     string            `json:"lon"`
	Address *nominatimAddress `json:"address,omitempty"`
}

type nominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Hamlet  string `json:"hamlet"`
	County  string `json:"county"`
}
