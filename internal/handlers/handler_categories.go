package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves the taxonomy of one ledger kind.
type categoryHandler struct {
	kind            domain.EntryKind
	categoryService portssvc.CategorySvc
}

// registerCategoryRoutes registers the taxonomy routes of kind under /{kind}s/categories.
func registerCategoryRoutes(rg *gin.RouterGroup, kind domain.EntryKind, categoryService portssvc.CategorySvc) {
	h := &categoryHandler{kind: kind, categoryService: categoryService}

	categories := rg.Group("/" + kind.Plural() + "/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PATCH("/:name", h.updateCategory)
		categories.DELETE("/:name", h.deleteCategory)
	}
}

func (h *categoryHandler) logger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromContext(c).With(slog.String("kind", string(h.kind)))
}

// listCategories godoc
// @Summary List expense categories or income sources
// @Tags categories
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param includeDisabled query bool false "Include disabled ones" default(false)
// @Param sort query string false "Order" Enums(name, usage) default(name)
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /{kind}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := h.logger(c)

	var q dto.CategoryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind category list query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), h.kind, q)
	if err != nil {
		respondError(c, logger, err, "list "+h.kind.GroupLabel()+" taxonomy")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// createCategory godoc
// @Summary Add a custom category or source
// @Tags categories
// @Accept json
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already taken"
// @Router /{kind}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := h.logger(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), h.kind, req)
	if err != nil {
		respondError(c, logger, err, "create "+h.kind.GroupLabel())
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*category))
}

// updateCategory godoc
// @Summary Edit, enable or disable a category or source
// @Tags categories
// @Accept json
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param name path string true "Category or source name"
// @Param category body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Nothing to update"
// @Router /{kind}/categories/{name} [patch]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := h.logger(c).With(slog.String("name", c.Param("name")))

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), h.kind, c.Param("name"), req)
	if err != nil {
		respondError(c, logger, err, "update "+h.kind.GroupLabel())
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// deleteCategory godoc
// @Summary Remove a custom category or source
// @Description Live entries of the category are moved to the trash. Built-in ones can only be disabled.
// @Tags categories
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param name path string true "Category or source name"
// @Success 200 {object} dto.DeleteCategoryResponse
// @Failure 400 {object} map[string]string "Built-in category"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /{kind}/categories/{name} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	name := c.Param("name")
	logger := h.logger(c).With(slog.String("name", name))

	n, err := h.categoryService.DeleteCategory(c.Request.Context(), h.kind, name)
	if err != nil {
		respondError(c, logger, err, "delete "+h.kind.GroupLabel())
		return
	}

	middleware.PosthogEvent(c, h.kind.GroupLabel()+"_deleted", map[string]any{"kind": string(h.kind), "trashed": n})
	c.JSON(http.StatusOK, dto.DeleteCategoryResponse{Kind: string(h.kind), Name: name, Trashed: n})
}
