package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogging-api/api/middleware"
	"blogging-api/dto"
	"blogging-api/logger"
	"blogging-api/services"
)

// ListBlogsHandler godoc
// @Summary      List published blogs
// @Description  List published blogs with search, ordering and pagination
// @Tags         blogs
// @Param        page     query  int     false  "Page number (1-based)"
// @Param        limit    query  int     false  "Page size"
// @Param        search   query  string  false  "Substring match on title, tags or author name"
// @Param        state    query  string  false  "State filter override"
// @Param        orderBy  query  string  false  "read_count, reading_time or timestamp"
// @Produce      json
// @Success      200  {object}  dto.BlogPage[dto.BlogDTO]
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListBlogsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
		in.Search = c.Query("search")
		in.State = c.Query("state")
		in.OrderBy = c.Query("orderBy")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetBlogHandler godoc
// @Summary      Get a published blog
// @Description  Get a single published blog by id; each successful read increments read_count
// @Tags         blogs
// @Param        id   path   string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetPublic(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondBlogError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// ListOwnBlogsHandler godoc
// @Summary      List own blogs
// @Description  List the authenticated user's blogs, drafts included, newest first
// @Tags         blogs
// @Security     BearerAuth
// @Param        page   query  int     false  "Page number (1-based)"
// @Param        limit  query  int     false  "Page size"
// @Param        state  query  string  false  "State filter"
// @Produce      json
// @Success      200  {object}  dto.BlogPage[models.Blog]
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/my-blogs [get]
func ListOwnBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListOwnBlogsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
		in.State = c.Query("state")

		page, err := svc.ListOwn(c.Request.Context(), c.GetString(middleware.CtxUserID), in)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog
// @Description  Create a draft owned by the authenticated user
// @Tags         blogs
// @Security     BearerAuth
// @Accept       json
// @Param        blog  body  dto.CreateBlogRequest  true  "Blog fields"
// @Produce      json
// @Success      201  {object}  models.Blog
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Invalid request body"})
			return
		}

		blog, err := svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserID), services.CreateBlogInput{
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
			Body:        req.Body,
		})
		if err != nil {
			respondBlogError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}

// PublishBlogHandler godoc
// @Summary      Publish a blog
// @Description  Move an owned blog from draft to published; idempotent
// @Tags         blogs
// @Security     BearerAuth
// @Param        id   path   string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  models.Blog
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id}/publish [put]
func PublishBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.Publish(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID))
		if err != nil {
			respondBlogError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// EditBlogHandler godoc
// @Summary      Edit a blog
// @Description  Update fields of an owned blog; empty fields are left unchanged
// @Tags         blogs
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  string               true  "Blog id"
// @Param        blog  body  dto.EditBlogRequest  true  "Fields to update"
// @Produce      json
// @Success      200  {object}  models.Blog
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [put]
func EditBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.EditBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Invalid request body"})
			return
		}

		blog, err := svc.Edit(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID), services.EditBlogInput{
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
			Body:        req.Body,
		})
		if err != nil {
			respondBlogError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog
// @Description  Permanently remove an owned blog
// @Tags         blogs
// @Security     BearerAuth
// @Param        id   path   string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID)); err != nil {
			respondBlogError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Msg: "Blog deleted"})
	}
}

// respondBlogError maps service errors to the HTTP taxonomy: 404 for
// missing (or unpublished on the public path), 401 for ownership
// violations, 400 for validation, 500 otherwise.
func respondBlogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Msg: "Blog not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Msg: "Not authorized"})
	case errors.Is(err, services.ErrTitleTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Title already taken"})
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Title and body are required"})
	default:
		serverError(c, err)
	}
}

func serverError(c *gin.Context, err error) {
	logger.ErrorWithFields("request failed", logger.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"error":  err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Msg: "Server error", Error: err.Error()})
}
