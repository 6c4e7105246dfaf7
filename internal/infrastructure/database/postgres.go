package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if supabasePassword == "" {
		return nil, fmt.Errorf("SUPABASE_DB_PASSWORD環境変数が設定されていません")
	}

	// SupabaseのURLからホスト名を抽出 (https://xxx.supabase.co -> xxx.supabase.co)
	host := supabaseURL[8:] // "https://"を除去

	// SupabaseのPostgreSQL接続文字列を構築（ポート6543を使用）
	connStr := fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, supabasePassword,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}

	// 接続テスト
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("PostgreSQLへの接続に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.Ping()
}

// InitializeSchema キャッシュテーブルとエンティティテーブルを作成する（起動時に呼ぶ）
// キャッシュテーブルはすべて挿入専用で、キー衝突はON CONFLICTで無視される前提
func (pc *PostgreSQLClient) InitializeSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reverse_geocode_cache (
			lat_lon TEXT PRIMARY KEY,
			city TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS golf_courses_cache (
			cache_key TEXT PRIMARY KEY,
			courses JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS nearby_features_cache (
			lat_lon TEXT PRIMARY KEY,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL UNIQUE,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			city TEXT,
			access TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := pc.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("スキーマの初期化に失敗: %w", err)
		}
	}
	return nil
}
