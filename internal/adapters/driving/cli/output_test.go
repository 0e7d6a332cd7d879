package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

func bufferedCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestRenderTable_Plain(t *testing.T) {
	cmd, buf := bufferedCmd()

	renderTable(cmd, []string{"Food", "kcal"}, [][]string{
		{"Oats", "389"},
		{"Spinach", "23"},
	}, 1)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  Food     kcal", lines[0])
	assert.Equal(t, "  Oats      389", lines[1])
	assert.Equal(t, "  Spinach    23", lines[2])
}

func TestIsTerminal_Buffer(t *testing.T) {
	cmd, _ := bufferedCmd()

	assert.False(t, isTerminal(cmd))
	assert.Equal(t, "Menu", heading(cmd, "Menu"))
	assert.Equal(t, "(dim)", dimText(cmd, "dim"))
}

func TestWantJSON(t *testing.T) {
	SetServices(Services{})
	assert.True(t, wantJSON(true))
	assert.False(t, wantJSON(false))

	env := setupTestServices(t)
	assert.False(t, wantJSON(false))
	require.NoError(t, env.settings.Set("output.format", "json"))
	assert.True(t, wantJSON(false))
}

func TestFormatMacros(t *testing.T) {
	got := formatMacros(domain.MacroVector{Calories: 512.34, Protein: 30, Carbs: 55.5, Fat: 12})

	assert.Equal(t, "512.3 kcal, 30.0g protein, 55.5g carbs, 12.0g fat", got)
}

func TestRenderMenu(t *testing.T) {
	cmd, buf := bufferedCmd()
	menu := &domain.GeneratedMenu{
		Date: "2025-03-01",
		Meals: []domain.Meal{{
			Type: domain.MealBreakfast,
			Items: []domain.MealItem{{
				Food:        domain.Food{Name: "Oats"},
				Grams:       80,
				MacroVector: domain.MacroVector{Calories: 311.2},
			}},
		}},
	}

	renderMenu(cmd, menu)

	out := buf.String()
	assert.Contains(t, out, "Menu for 2025-03-01")
	assert.Contains(t, out, "Breakfast")
	assert.Contains(t, out, "Oats")
	assert.Contains(t, out, "311.2")
}
