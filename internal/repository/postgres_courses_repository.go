package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
	"GoBuddy-App/internal/infrastructure/database"
)

type PostgresCoursesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCoursesRepository(client *database.PostgreSQLClient) repository.CoursesRepository {
	return &PostgresCoursesRepository{
		client: client,
	}
}

// Add コースを追記する（重複排除はしない — 同じ地物が別リージョンの検索で
// 再発見された場合も新しい行になる）
// 制約違反はキャッシュキー導出のバグを示すため、ログの上で呼び出し側に返す
func (r *PostgresCoursesRepository) Add(ctx context.Context, course *model.Course) error {
	if course.ID == "" {
		course.ID = uuid.New().String()
	}

	query := `INSERT INTO courses (id, name, latitude, longitude, city, access) VALUES ($1, $2, $3, $4, $5, $6)`

	var city, access sql.NullString
	if course.City != "" {
		city = sql.NullString{String: course.City, Valid: true}
	}
	if course.Access != "" {
		access = sql.NullString{String: course.Access, Valid: true}
	}

	if _, err := r.client.DB.ExecContext(ctx, query, course.ID, course.Name, course.Lat, course.Lng, city, access); err != nil {
		log.Printf("❌ コースの追加に失敗: %s (%v)", course.Name, err)
		return fmt.Errorf("コースの追加失敗: %w", err)
	}
	return nil
}

func (r *PostgresCoursesRepository) GetAll(ctx context.Context) ([]*model.Course, error) {
	query := `SELECT id, name, latitude, longitude, city, access FROM courses`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("コース一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		var course model.Course
		var city, access sql.NullString
		if err := rows.Scan(&course.ID, &course.Name, &course.Lat, &course.Lng, &city, &access); err != nil {
			return nil, fmt.Errorf("コースデータスキャンエラー: %w", err)
		}
		course.City = city.String
		course.Access = access.String
		courses = append(courses, &course)
	}

	return courses, rows.Err()
}
