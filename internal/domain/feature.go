package domain

// FeatureVector is the numeric representation of a product used for
// similarity comparison. Derived per request, never persisted.
type FeatureVector struct {
	ProductID int64
	Values    []float64
}

func NewFeatureVector(productID int64, values []float64) *FeatureVector {
	return &FeatureVector{
		ProductID: productID,
		Values:    values,
	}
}
