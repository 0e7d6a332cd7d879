package tomlfile

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

//go:embed seed.toml
var seedCatalog []byte

// EmbeddedName is the Name reported by the embedded starter catalog.
const EmbeddedName = "embedded"

// Verify interface compliance.
var _ driven.CatalogSource = (*Source)(nil)

// catalogFile is the on-disk document layout.
type catalogFile struct {
	Food []foodEntry `toml:"food"`
}

type foodEntry struct {
	Name                string   `toml:"name"`
	Category            string   `toml:"category"`
	CaloriesPer100g     float64  `toml:"calories_per_100g"`
	ProteinPer100g      float64  `toml:"protein_per_100g"`
	CarbsPer100g        float64  `toml:"carbs_per_100g"`
	FatPer100g          float64  `toml:"fat_per_100g"`
	FiberPer100g        *float64 `toml:"fiber_per_100g,omitempty"`
	Tags                []string `toml:"tags,omitempty"`
	DefaultServingGrams float64  `toml:"default_serving_grams,omitempty"`
	DensityFactor       *float64 `toml:"density_factor,omitempty"`
}

func (e *foodEntry) toDomain() domain.Food {
	return domain.Food{
		Name:                e.Name,
		Category:            domain.FoodCategory(e.Category),
		CaloriesPer100g:     e.CaloriesPer100g,
		ProteinPer100g:      e.ProteinPer100g,
		CarbsPer100g:        e.CarbsPer100g,
		FatPer100g:          e.FatPer100g,
		FiberPer100g:        e.FiberPer100g,
		Tags:                e.Tags,
		DefaultServingGrams: e.DefaultServingGrams,
		DensityFactor:       e.DensityFactor,
	}
}

// Source reads foods from a TOML catalog file or the embedded starter catalog.
type Source struct {
	name string
	read func() ([]byte, error)
}

// NewFileSource returns a source backed by the TOML file at path.
// The file is read on every Load.
func NewFileSource(path string) *Source {
	return &Source{
		name: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// NewEmbeddedSource returns the starter catalog compiled into the binary.
func NewEmbeddedSource() *Source {
	return &Source{
		name: EmbeddedName,
		read: func() ([]byte, error) { return seedCatalog, nil },
	}
}

// Name returns the file path, or "embedded".
func (s *Source) Name() string {
	return s.name
}

// Load decodes every [[food]] table. Entries are returned as written;
// validation happens on import.
func (s *Source) Load(ctx context.Context) ([]domain.Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	foods, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.name, err)
	}
	return foods, nil
}

// Decode parses a TOML catalog document.
func Decode(data []byte) ([]domain.Food, error) {
	var doc catalogFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	foods := make([]domain.Food, 0, len(doc.Food))
	for i := range doc.Food {
		foods = append(foods, doc.Food[i].toDomain())
	}
	return foods, nil
}

// Encode renders foods as a TOML catalog document.
func Encode(foods []domain.Food) ([]byte, error) {
	doc := catalogFile{Food: make([]foodEntry, 0, len(foods))}
	for i := range foods {
		f := &foods[i]
		doc.Food = append(doc.Food, foodEntry{
			Name:                f.Name,
			Category:            string(f.Category),
			CaloriesPer100g:     f.CaloriesPer100g,
			ProteinPer100g:      f.ProteinPer100g,
			CarbsPer100g:        f.CarbsPer100g,
			FatPer100g:          f.FatPer100g,
			FiberPer100g:        f.FiberPer100g,
			Tags:                f.Tags,
			DefaultServingGrams: f.DefaultServingGrams,
			DensityFactor:       f.DensityFactor,
		})
	}
	return toml.Marshal(doc)
}
