package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/planner"
)

// MacrosOutput is a {calories, protein, carbs, fat} quantity.
type MacrosOutput struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func toMacros(v domain.MacroVector) MacrosOutput {
	return MacrosOutput{Calories: v.Calories, Protein: v.Protein, Carbs: v.Carbs, Fat: v.Fat}
}

// FoodOutput is a catalog entry.
type FoodOutput struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	CaloriesPer100g     float64  `json:"caloriesPer100g"`
	ProteinPer100g      float64  `json:"proteinPer100g"`
	CarbsPer100g        float64  `json:"carbsPer100g"`
	FatPer100g          float64  `json:"fatPer100g"`
	FiberPer100g        *float64 `json:"fiberPer100g,omitempty"`
	Tags                []string `json:"tags"`
	DefaultServingGrams float64  `json:"defaultServingGrams"`
}

func toFood(f *domain.Food) FoodOutput {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return FoodOutput{
		ID:                  f.ID,
		Name:                f.Name,
		Category:            string(f.Category),
		CaloriesPer100g:     f.CaloriesPer100g,
		ProteinPer100g:      f.ProteinPer100g,
		CarbsPer100g:        f.CarbsPer100g,
		FatPer100g:          f.FatPer100g,
		FiberPer100g:        f.FiberPer100g,
		Tags:                tags,
		DefaultServingGrams: f.DefaultServingGrams,
	}
}

// ItemOutput is a portion of one food, carrying the full catalog entry.
type ItemOutput struct {
	Food     FoodOutput `json:"food"`
	Grams    float64    `json:"grams"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
}

func toItems(items []domain.MealItem) []ItemOutput {
	out := make([]ItemOutput, len(items))
	for i := range items {
		out[i] = ItemOutput{
			Food:     toFood(&items[i].Food),
			Grams:    items[i].Grams,
			Calories: items[i].Calories,
			Protein:  items[i].Protein,
			Carbs:    items[i].Carbs,
			Fat:      items[i].Fat,
		}
	}
	return out
}

// MealOutput is one meal of a menu.
type MealOutput struct {
	Type   string       `json:"type"`
	Items  []ItemOutput `json:"items"`
	Totals MacrosOutput `json:"totals"`
}

// MenuOutput is the output schema for the menu tools.
type MenuOutput struct {
	ID     string       `json:"id"`
	Date   string       `json:"date"`
	Meals  []MealOutput `json:"meals"`
	Totals MacrosOutput `json:"totals"`
}

func toMenu(m *domain.GeneratedMenu) MenuOutput {
	out := MenuOutput{
		ID:     m.ID,
		Date:   m.Date,
		Meals:  make([]MealOutput, len(m.Meals)),
		Totals: toMacros(m.Totals),
	}
	for i := range m.Meals {
		out.Meals[i] = MealOutput{
			Type:   string(m.Meals[i].Type),
			Items:  toItems(m.Meals[i].Items),
			Totals: toMacros(m.Meals[i].Totals),
		}
	}
	return out
}

// GenerateMenuInput is the input schema for the generate_menu tool.
type GenerateMenuInput struct {
	Date       string `json:"date,omitempty" jsonschema:"calendar day as YYYY-MM-DD (default today)"`
	Regenerate bool   `json:"regenerate,omitempty" jsonschema:"discard any stored menu for the day and build a new one"`
}

// GetMenuInput is the input schema for the get_menu tool.
type GetMenuInput struct {
	Date string `json:"date,omitempty" jsonschema:"calendar day as YYYY-MM-DD (default today)"`
}

// ListFoodsInput is the input schema for the list_foods tool.
type ListFoodsInput struct {
	Category string `json:"category,omitempty" jsonschema:"only foods of this category: protein, carb, fat, vegetable, fruit or mixed"`
	Tag      string `json:"tag,omitempty" jsonschema:"only foods carrying this tag, for example vegan"`
}

// ListFoodsOutput is the output schema for the list_foods tool.
type ListFoodsOutput struct {
	Foods []FoodOutput `json:"foods"`
	Count int          `json:"count"`
}

// PortionInput names a food and a starting portion.
type PortionInput struct {
	Food  string  `json:"food" jsonschema:"catalog food name"`
	Grams float64 `json:"grams" jsonschema:"starting portion in grams"`
}

// ScalePortionsInput is the input schema for the scale_portions tool.
type ScalePortionsInput struct {
	Portions []PortionInput `json:"portions" jsonschema:"foods and starting portions"`
	Calories float64        `json:"calories" jsonschema:"calorie target, or the calories to add when top_up is set"`
	TopUp    bool           `json:"top_up,omitempty" jsonschema:"spread calories evenly over the portions instead of rescaling to a target"`
}

// ScalePortionsOutput is the output schema for the scale_portions tool.
type ScalePortionsOutput struct {
	Items  []ItemOutput `json:"items"`
	Totals MacrosOutput `json:"totals"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_menu",
		Description: "Generate the daily menu for a date, or return the one already stored",
	}, s.handleGenerateMenu)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_menu",
		Description: "Read the stored menu for a date without generating one",
	}, s.handleGetMenu)

	if s.ports.Catalog != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_foods",
			Description: "List catalog foods with their per-100g macros",
		}, s.handleListFoods)
	}

	if s.ports.Portion != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "scale_portions",
			Description: "Resize portions of catalog foods toward a calorie target within realistic bounds",
		}, s.handleScalePortions)
	}
}

// parseDay parses an optional YYYY-MM-DD date, defaulting to today.
func parseDay(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(s)
}

// handleGenerateMenu handles the generate_menu tool invocation.
func (s *Server) handleGenerateMenu(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateMenuInput,
) (*mcp.CallToolResult, MenuOutput, error) {
	day, err := parseDay(input.Date)
	if err != nil {
		return nil, MenuOutput{}, err
	}
	if !s.generateLimiter.Allow() {
		return nil, MenuOutput{}, ErrRateLimited
	}

	generate := s.ports.Menu.Generate
	if input.Regenerate {
		generate = s.ports.Menu.Regenerate
	}
	menu, err := generate(ctx, s.userID, day)
	if err != nil {
		return nil, MenuOutput{}, publicError("generate_menu", err)
	}
	return nil, toMenu(menu), nil
}

// handleGetMenu handles the get_menu tool invocation.
func (s *Server) handleGetMenu(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetMenuInput,
) (*mcp.CallToolResult, MenuOutput, error) {
	day, err := parseDay(input.Date)
	if err != nil {
		return nil, MenuOutput{}, err
	}
	menu, err := s.ports.Menu.Get(ctx, s.userID, day)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, MenuOutput{}, fmt.Errorf("no menu stored for %s", domain.FormatDate(day))
		}
		return nil, MenuOutput{}, publicError("get_menu", err)
	}
	return nil, toMenu(menu), nil
}

// handleListFoods handles the list_foods tool invocation.
func (s *Server) handleListFoods(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListFoodsInput,
) (*mcp.CallToolResult, ListFoodsOutput, error) {
	category := domain.FoodCategory(domain.NormalizeName(input.Category))
	if category != "" && !category.IsValid() {
		return nil, ListFoodsOutput{}, &domain.ValidationError{
			Field:   "category",
			Message: "must be one of protein, carb, fat, vegetable, fruit, mixed",
		}
	}

	foods, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, ListFoodsOutput{}, publicError("list_foods", err)
	}

	output := ListFoodsOutput{Foods: []FoodOutput{}}
	for i := range foods {
		if category != "" && foods[i].Category != category {
			continue
		}
		if input.Tag != "" && !foods[i].HasTag(input.Tag) {
			continue
		}
		output.Foods = append(output.Foods, toFood(&foods[i]))
	}
	output.Count = len(output.Foods)
	return nil, output, nil
}

// handleScalePortions handles the scale_portions tool invocation.
func (s *Server) handleScalePortions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScalePortionsInput,
) (*mcp.CallToolResult, ScalePortionsOutput, error) {
	requests := make([]domain.PortionRequest, len(input.Portions))
	for i, p := range input.Portions {
		requests[i] = domain.PortionRequest{FoodName: p.Food, Grams: p.Grams}
	}

	resize := s.ports.Portion.Scale
	if input.TopUp {
		resize = s.ports.Portion.TopUp
	}
	items, err := resize(ctx, requests, input.Calories)
	if err != nil {
		return nil, ScalePortionsOutput{}, publicError("scale_portions", err)
	}

	return nil, ScalePortionsOutput{Items: toItems(items), Totals: toMacros(planner.Sum(items))}, nil
}
