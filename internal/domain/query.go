package domain

// PriceBucket ценовой диапазон в фасете поиска
type PriceBucket string

const (
	PriceLow     PriceBucket = "low"     // < 50
	PriceMedium  PriceBucket = "medium"  // [50, 100)
	PriceHigh    PriceBucket = "high"    // [100, 200)
	PricePremium PriceBucket = "premium" // >= 200
)

// PriceBuckets все ценовые диапазоны в порядке отображения
var PriceBuckets = []PriceBucket{PriceLow, PriceMedium, PriceHigh, PricePremium}

// Contains returns true if the price falls into the bucket
// Unknown buckets contain nothing
func (b PriceBucket) Contains(price float64) bool {
	switch b {
	case PriceLow:
		return price < 50
	case PriceMedium:
		return price >= 50 && price < 100
	case PriceHigh:
		return price >= 100 && price < 200
	case PricePremium:
		return price >= 200
	default:
		return false
	}
}

// Label подпись диапазона в фильтрах поиска
func (b PriceBucket) Label() string {
	switch b {
	case PriceLow:
		return "Under $50"
	case PriceMedium:
		return "$50 - $100"
	case PriceHigh:
		return "$100 - $200"
	case PricePremium:
		return "Over $200"
	default:
		return string(b)
	}
}

// RatingBucket минимальный рейтинг в фасете поиска
type RatingBucket string

const (
	Rating4Plus RatingBucket = "4+"
	Rating3Plus RatingBucket = "3+"
)

// RatingBuckets все пороги рейтинга в порядке отображения
var RatingBuckets = []RatingBucket{Rating4Plus, Rating3Plus}

// Admits returns true if the rating meets the bucket floor
// Unknown buckets admit nothing
func (b RatingBucket) Admits(rating float64) bool {
	switch b {
	case Rating4Plus:
		return rating >= 4
	case Rating3Plus:
		return rating >= 3
	default:
		return false
	}
}

// Label подпись порога в фильтрах поиска
func (b RatingBucket) Label() string {
	return string(b) + " Stars"
}

// Query поисковый запрос по каталогу
// Передаётся по значению и не изменяется движком поиска.
// Внутри группы значения объединяются по ИЛИ, группы между собой по И.
// Пустая группа не ограничивает выдачу.
type Query struct {
	Text       string
	Categories []string
	PriceRange []PriceBucket
	MinRating  []RatingBucket
}

// IsEmpty returns true if the query matches the whole catalog
func (q Query) IsEmpty() bool {
	return q.Text == "" && len(q.Categories) == 0 && len(q.PriceRange) == 0 && len(q.MinRating) == 0
}
