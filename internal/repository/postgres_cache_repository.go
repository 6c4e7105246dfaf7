package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/infrastructure/database"
)

// PostgresCacheRepository 外部サービス応答のキャッシュテーブル群へのアクセス
// 全テーブルが挿入専用で、更新も削除も行わない（古さは外部呼び出し削減のための
// 意図的なトレードオフ）
type PostgresCacheRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCacheRepository(client *database.PostgreSQLClient) *PostgresCacheRepository {
	return &PostgresCacheRepository{
		client: client,
	}
}

// GetGeocode 住所に対するキャッシュ済み座標を取得する
func (r *PostgresCacheRepository) GetGeocode(ctx context.Context, address string) (*model.LatLng, error) {
	query := `SELECT latitude, longitude FROM geocode_cache WHERE address = $1`

	var lat, lng float64
	err := r.client.DB.QueryRowContext(ctx, query, address).Scan(&lat, &lng)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ジオコードキャッシュの取得失敗: %w", err)
	}

	return &model.LatLng{Lat: lat, Lng: lng}, nil
}

// PutGeocode ジオコーディング結果をキャッシュする
// 並行リクエストが同じ住所を書いてもON CONFLICTで片方が無視される
func (r *PostgresCacheRepository) PutGeocode(ctx context.Context, address string, coord model.LatLng) error {
	query := `INSERT INTO geocode_cache (address, latitude, longitude) VALUES ($1, $2, $3)
		ON CONFLICT (address) DO NOTHING`

	if _, err := r.client.DB.ExecContext(ctx, query, address, coord.Lat, coord.Lng); err != nil {
		return fmt.Errorf("ジオコードキャッシュの保存失敗: %w", err)
	}
	return nil
}

// GetCity 丸め座標キーに対するキャッシュ済み都市名を取得する
func (r *PostgresCacheRepository) GetCity(ctx context.Context, coordKey string) (string, bool, error) {
	query := `SELECT city FROM reverse_geocode_cache WHERE lat_lon = $1`

	var city string
	err := r.client.DB.QueryRowContext(ctx, query, coordKey).Scan(&city)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("都市名キャッシュの取得失敗: %w", err)
	}

	return city, true, nil
}

// PutCity 都市名をキャッシュする（"Unknown City"センチネルも保存される）
func (r *PostgresCacheRepository) PutCity(ctx context.Context, coordKey string, city string) error {
	query := `INSERT INTO reverse_geocode_cache (lat_lon, city) VALUES ($1, $2)
		ON CONFLICT (lat_lon) DO NOTHING`

	if _, err := r.client.DB.ExecContext(ctx, query, coordKey, city); err != nil {
		return fmt.Errorf("都市名キャッシュの保存失敗: %w", err)
	}
	return nil
}

// GetNearbyFeatureName 丸め座標キーに対するキャッシュ済み周辺地物名を取得する
// 「名前が見つからなかった」事実もNULL行としてキャッシュされるため、
// 戻り値は (名前, 行の有無) で区別する
func (r *PostgresCacheRepository) GetNearbyFeatureName(ctx context.Context, coordKey string) (*string, bool, error) {
	query := `SELECT name FROM nearby_features_cache WHERE lat_lon = $1`

	var name sql.NullString
	err := r.client.DB.QueryRowContext(ctx, query, coordKey).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("周辺地物名キャッシュの取得失敗: %w", err)
	}

	if !name.Valid {
		return nil, true, nil
	}
	return &name.String, true, nil
}

// PutNearbyFeatureName 周辺地物名をキャッシュする（nilは「該当なし」の記録）
func (r *PostgresCacheRepository) PutNearbyFeatureName(ctx context.Context, coordKey string, name *string) error {
	query := `INSERT INTO nearby_features_cache (lat_lon, name) VALUES ($1, $2)
		ON CONFLICT (lat_lon) DO NOTHING`

	var value sql.NullString
	if name != nil {
		value = sql.NullString{String: *name, Valid: true}
	}

	if _, err := r.client.DB.ExecContext(ctx, query, coordKey, value); err != nil {
		return fmt.Errorf("周辺地物名キャッシュの保存失敗: %w", err)
	}
	return nil
}

// GetRegionCourses リージョンキーに対するキャッシュ済みコースリストを取得する
func (r *PostgresCacheRepository) GetRegionCourses(ctx context.Context, regionKey string) ([]*model.Course, bool, error) {
	query := `SELECT courses FROM golf_courses_cache WHERE cache_key = $1`

	var data []byte
	err := r.client.DB.QueryRowContext(ctx, query, regionKey).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("コースリストキャッシュの取得失敗: %w", err)
	}

	var courses []*model.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, false, fmt.Errorf("コースリストのJSONアンマーシャル失敗: %w", err)
	}

	return courses, true, nil
}

// PutRegionCourses コースリスト全体を1エントリとして不可分にキャッシュする
// 空リストも有効な結果として保存される
func (r *PostgresCacheRepository) PutRegionCourses(ctx context.Context, regionKey string, courses []*model.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("コースリストのJSONマーシャル失敗: %w", err)
	}

	query := `INSERT INTO golf_courses_cache (cache_key, courses) VALUES ($1, $2)
		ON CONFLICT (cache_key) DO NOTHING`

	if _, err := r.client.DB.ExecContext(ctx, query, regionKey, data); err != nil {
		return fmt.Errorf("コースリストキャッシュの保存失敗: %w", err)
	}
	return nil
}
