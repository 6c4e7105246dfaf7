package repository

import (
	"context"

	"GoBuddy-App/internal/domain/model"
)

// CoursesRepository 発見したコースの永続化（追記のみ、重複排除はしない）
type CoursesRepository interface {
	Add(ctx context.Context, course *model.Course) error
	GetAll(ctx context.Context) ([]*model.Course, error)
}
