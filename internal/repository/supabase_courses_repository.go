package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"GoBuddy-App/internal/database"
	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
)

// SupabaseCoursesRepository PostgREST経由の読み取り専用コースリポジトリ
// 書き込み（Add）はPostgres直接続側のリポジトリが担当する
type SupabaseCoursesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseCoursesRepository(client *database.SupabaseClient) repository.CoursesRepository {
	return &SupabaseCoursesRepository{
		client: client,
	}
}

// supabaseCourseRow coursesテーブルのPostgREST表現
type supabaseCourseRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      *string `json:"city"`
	Access    *string `json:"access"`
}

func (sr *supabaseCourseRow) toCourse() *model.Course {
	course := &model.Course{
		ID:   sr.ID,
		Name: sr.Name,
		Lat:  sr.Latitude,
		Lng:  sr.Longitude,
	}
	if sr.City != nil {
		course.City = *sr.City
	}
	if sr.Access != nil {
		course.Access = *sr.Access
	}
	return course
}

func (r *SupabaseCoursesRepository) GetAll(ctx context.Context) ([]*model.Course, error) {
	data, count, err := r.client.GetClient().From("courses").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("コースデータの取得失敗: %w", err)
	}
	_ = count

	var rows []supabaseCourseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("コースデータのJSONアンマーシャル失敗: %w", err)
	}

	courses := make([]*model.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, rows[i].toCourse())
	}
	return courses, nil
}

// Add 読み取り専用リポジトリのため未対応
func (r *SupabaseCoursesRepository) Add(ctx context.Context, course *model.Course) error {
	return fmt.Errorf("SupabaseCoursesRepositoryは読み取り専用です")
}
