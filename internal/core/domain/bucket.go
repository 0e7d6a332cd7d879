package domain

// Bucket is one of the five selection groups a generation run sorts foods into.
type Bucket int

// Selection buckets.
const (
	BucketProteins Bucket = iota
	BucketCarbs
	BucketFats
	BucketVegetables
	BucketFruits
)

// MixedProteinThreshold is the protein-per-100g at or above which a mixed
// food is treated as a protein rather than a carb.
const MixedProteinThreshold = 10.0

// Buckets returns all buckets in a fixed order.
func Buckets() []Bucket {
	return []Bucket{BucketProteins, BucketCarbs, BucketFats, BucketVegetables, BucketFruits}
}

// String returns the bucket's plural name.
func (b Bucket) String() string {
	switch b {
	case BucketProteins:
		return "proteins"
	case BucketCarbs:
		return "carbs"
	case BucketFats:
		return "fats"
	case BucketVegetables:
		return "vegetables"
	case BucketFruits:
		return "fruits"
	default:
		return "unknown"
	}
}

// BucketFor routes a food to its selection bucket.
// The second return is false for categories no bucket accepts.
func BucketFor(f *Food) (Bucket, bool) {
	switch f.Category {
	case CategoryProtein:
		return BucketProteins, true
	case CategoryCarb:
		return BucketCarbs, true
	case CategoryFat:
		return BucketFats, true
	case CategoryVegetable:
		return BucketVegetables, true
	case CategoryFruit:
		return BucketFruits, true
	case CategoryMixed:
		if f.ProteinPer100g >= MixedProteinThreshold {
			return BucketProteins, true
		}
		return BucketCarbs, true
	default:
		return 0, false
	}
}

// CategorizedFoods partitions a filtered catalog into selection buckets.
// Each bucket keeps the order it was built with.
type CategorizedFoods map[Bucket][]Food

// Len returns the number of foods in bucket b.
func (c CategorizedFoods) Len(b Bucket) int {
	return len(c[b])
}

// Total returns the number of foods across all buckets.
func (c CategorizedFoods) Total() int {
	n := 0
	for _, foods := range c {
		n += len(foods)
	}
	return n
}
