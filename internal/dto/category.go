package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// Category list orderings.
const (
	CategorySortName  = "name"
	CategorySortUsage = "usage"
)

// CategoryListQuery binds ?includeDisabled=&sort= query parameters.
type CategoryListQuery struct {
	IncludeDisabled bool   `form:"includeDisabled,default=false"`
	Sort            string `form:"sort,default=name" binding:"oneof=name usage"`
}

// CreateCategoryRequest defines a custom category or source. Label defaults to
// Name, icon and color to the fallback look.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=50" example:"pets"`
	Label string `json:"label,omitempty" binding:"omitempty,max=50" example:"Pets"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50" example:"paw"`
	Color string `json:"color,omitempty" binding:"omitempty,hexcolor" example:"#112233"`
}

// UpdateCategoryRequest patches the editable fields of a category. Nil fields are kept.
type UpdateCategoryRequest struct {
	Label   *string `json:"label,omitempty" binding:"omitempty,min=1,max=50"`
	Icon    *string `json:"icon,omitempty" binding:"omitempty,min=1,max=50"`
	Color   *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// CategoryResponse defines the data returned for a category or source.
type CategoryResponse struct {
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Enabled   bool      `json:"enabled"`
	IsCustom  bool      `json:"isCustom"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		Kind:      string(c.Kind),
		Name:      c.Name,
		Label:     c.Label,
		Icon:      c.Icon,
		Color:     c.Color,
		Enabled:   c.Enabled,
		IsCustom:  c.IsCustom,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to CategoryResponse DTOs
func ToListCategoryResponse(cs []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCategoryResponse(c)
	}
	return res
}

// DeleteCategoryResponse reports the removed category and how many entries it took along.
type DeleteCategoryResponse struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Trashed int64  `json:"trashed"`
}
