package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

func TestParsePortions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []domain.PortionRequest
		wantErr string
	}{
		{
			name: "single",
			args: []string{"Oats:50"},
			want: []domain.PortionRequest{{FoodName: "Oats", Grams: 50}},
		},
		{
			name: "spaces trimmed",
			args: []string{"Chicken Breast : 150.5"},
			want: []domain.PortionRequest{{FoodName: "Chicken Breast", Grams: 150.5}},
		},
		{
			name: "name with colon",
			args: []string{"Brand: Granola:40"},
			want: []domain.PortionRequest{{FoodName: "Brand: Granola", Grams: 40}},
		},
		{name: "no colon", args: []string{"Oats"}, wantErr: "expected food:grams"},
		{name: "no name", args: []string{":50"}, wantErr: "expected food:grams"},
		{name: "bad grams", args: []string{"Oats:lots"}, wantErr: "invalid grams"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePortions(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPortionScaleCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "portion", "scale", "Chicken Breast:100", "--calories", "330", "--json")
	require.NoError(t, err)

	var result struct {
		Items  []domain.MealItem  `json:"items"`
		Totals domain.MacroVector `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Items, 1)
	assert.InDelta(t, 200, result.Items[0].Grams, 0.5)
	assert.InDelta(t, 330, result.Totals.Calories, 1)
}

func TestPortionScaleCmd_Table(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "portion", "scale", "Chicken Breast:100", "--calories", "330")

	require.NoError(t, err)
	assert.Contains(t, out, "Chicken Breast")
	assert.Contains(t, out, "Total:")
}

func TestPortionScaleCmd_NeedsTarget(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "portion", "scale", "Oats:50")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPortionTopUpCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "portion", "top-up", "Chicken Breast:100", "--calories", "0", "--json")
	require.NoError(t, err)

	var result struct {
		Items []domain.MealItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Items, 1)
	assert.InDelta(t, 100, result.Items[0].Grams, 0.5)
}

func TestPortionCmd_UnknownFood(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "portion", "scale", "Durian:100", "--calories", "300")

	require.Error(t, err)
}
