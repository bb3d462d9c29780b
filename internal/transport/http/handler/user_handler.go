package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-users-api/internal/core/cache"
	"go-users-api/internal/domain"
	"go-users-api/internal/service"
	"go-users-api/internal/transport/http/contract"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// UserHandler owns the /api/users routes. GET responses go through the
// read-through cache when one is configured; a nil cache means every read
// hits the service.
type UserHandler struct {
	svc   *service.UserService
	clock domain.Clock
	cache *cache.Cache
	ttl   time.Duration
}

func NewUserHandler(svc *service.UserService, clock domain.Clock, c *cache.Cache, ttl time.Duration) *UserHandler {
	return &UserHandler{svc: svc, clock: clock, cache: c, ttl: ttl}
}

func (h *UserHandler) Mount(api *gin.RouterGroup) {
	api.POST("/users", h.Create)
	api.GET("/users", h.GetAll)
	api.GET("/users/:id", h.Get)
	api.PUT("/users/:id", h.Update)
	api.DELETE("/users/:id", h.Delete)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req contract.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u := req.ToUser()
	if err := h.svc.Create(c.Request.Context(), u); err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/users/%d", u.ID))
	c.JSON(http.StatusCreated, contract.ToUserResponse(u, h.clock))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(), userKey(id), h.ttl,
		func(ctx context.Context) (*contract.UserResponse, error) {
			u, err := h.svc.GetByID(ctx, id)
			if err != nil || u == nil {
				return nil, err
			}
			out := contract.ToUserResponse(u, h.clock)
			return &out, nil
		})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if resp == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, *resp)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	req, ok := parseGetAllRequest(c)
	if !ok {
		return
	}
	opts := req.ToOptions()

	resp, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(), listKey(req), h.ttl,
		func(ctx context.Context) (*contract.UsersResponse, error) {
			users, err := h.svc.GetAll(ctx, opts)
			if err != nil {
				return nil, err
			}
			total, err := h.svc.GetCount(ctx, opts.Date)
			if err != nil {
				return nil, err
			}
			out := contract.ToUsersResponse(users, opts.Page, opts.PageSize, total, h.clock)
			return &out, nil
		})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, *resp)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req contract.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), req.ToUser(id))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if updated == nil {
		c.Status(http.StatusNotFound)
		return
	}

	h.invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, contract.ToUserResponse(updated, h.clock))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.svc.DeleteByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}

	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusOK)
}

func (h *UserHandler) invalidate(ctx context.Context, id int64) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, userKey(id))
	}
}

// parseID rejects non-integer ids with 404, matching a typed route.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func parseGetAllRequest(c *gin.Context) (contract.GetAllUsersRequest, bool) {
	req := contract.GetAllUsersRequest{Page: defaultPage, PageSize: defaultPageSize}

	if raw := c.Query("date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return req, false
		}
		req.Date = &d
	}
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return req, false
		}
		req.Page = p
	}
	if raw := c.Query("pageSize"); raw != "" {
		ps, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pageSize"})
			return req, false
		}
		req.PageSize = ps
	}
	return req, true
}

func parseDate(raw string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func userKey(id int64) string { return fmt.Sprintf("users:one:%d", id) }

func listKey(req contract.GetAllUsersRequest) string {
	date := ""
	if req.Date != nil {
		date = req.Date.Format("2006-01-02")
	}
	return fmt.Sprintf("users:all:%s:%d:%d", date, req.Page, req.PageSize)
}
