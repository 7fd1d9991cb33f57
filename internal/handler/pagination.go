package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxPageSize = 100

// PageScope turns optional page/limit query parameters into a gorm scope.
// Without parameters the scope is a no-op and list endpoints return every
// row, matching the original wire contract of a bare array.
func PageScope(c *gin.Context) func(*gorm.DB) *gorm.DB {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return func(db *gorm.DB) *gorm.DB {
		if limit == 0 {
			return db
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
