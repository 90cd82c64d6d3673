package handler

import (
	"github.com/fadilmartias/talent-fit/internal/response"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type window struct {
	from, to int
}

// paginate reads ?page and ?page_size. It returns a nil Pagination when the
// caller asked for neither, meaning the full list should be sent.
func paginate(c *fiber.Ctx, total int) (window, *response.Pagination) {
	if c.Query("page") == "" && c.Query("page_size") == "" {
		return window{0, total}, nil
	}

	size := c.QueryInt("page_size", defaultPageSize)
	if size < 1 {
		size = defaultPageSize
	}
	p, lo, hi := response.NewPagination(c.QueryInt("page", 1), size, maxPageSize, total)
	return window{lo, hi}, p
}
