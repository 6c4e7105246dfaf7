package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GoBuddy-App/internal/domain/repository"
	"GoBuddy-App/model"
)

// CoursesHandler 発見済みコースに関するHTTPハンドラー
type CoursesHandler struct {
	coursesRepo repository.CoursesRepository
}

// NewCoursesHandler CoursesHandlerの新しいインスタンスを作成
func NewCoursesHandler(coursesRepo repository.CoursesRepository) *CoursesHandler {
	return &CoursesHandler{
		coursesRepo: coursesRepo,
	}
}

// GetCourses GET /courses - これまでに発見した全コースを取得
func (h *CoursesHandler) GetCourses(c *gin.Context) {
	courses, err := h.coursesRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get courses: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.GetCoursesResponse{
		Courses: courses,
	})
}
