package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// ProjectionsJSON stores a category's sparse projection slots as a JSON
// array. Nulls keep their positions so slot numbering survives round-trips.
type ProjectionsJSON []*decimal.Decimal

// Value implements the driver.Valuer interface.
func (p ProjectionsJSON) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface.
func (p *ProjectionsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return errors.New("type assertion to []byte failed")
}

// CategoryGroupModel represents the category_groups table in the database.
type CategoryGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BudgetID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Budget     *BudgetModel     `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
	Categories []*CategoryModel `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the CategoryGroupModel.
func (CategoryGroupModel) TableName() string {
	return "category_groups"
}

// ToEntity converts a CategoryGroupModel to a domain CategoryGroup entity.
func (m *CategoryGroupModel) ToEntity() *entity.CategoryGroup {
	g := &entity.CategoryGroup{
		ID:        m.ID,
		BudgetID:  m.BudgetID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, c := range m.Categories {
		g.Categories = append(g.Categories, c.ToEntity())
	}
	return g
}

// CategoryGroupFromEntity creates a CategoryGroupModel from a domain entity.
func CategoryGroupFromEntity(g *entity.CategoryGroup) *CategoryGroupModel {
	return &CategoryGroupModel{
		ID:        g.ID,
		BudgetID:  g.BudgetID,
		Name:      g.Name,
		SortOrder: g.SortOrder,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Icon          string          `gorm:"type:varchar(64)"`
	DefaultAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Projections   ProjectionsJSON `gorm:"type:text"`
	SortOrder     int             `gorm:"not null;default:0"`
	IsHidden      bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Group *CategoryGroupModel `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:            m.ID,
		GroupID:       m.GroupID,
		Name:          m.Name,
		Icon:          m.Icon,
		DefaultAmount: m.DefaultAmount,
		Projections:   m.Projections,
		SortOrder:     m.SortOrder,
		IsHidden:      m.IsHidden,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(c *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:            c.ID,
		GroupID:       c.GroupID,
		Name:          c.Name,
		Icon:          c.Icon,
		DefaultAmount: c.DefaultAmount,
		Projections:   c.Projections,
		SortOrder:     c.SortOrder,
		IsHidden:      c.IsHidden,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
