package cats

// FactAndImage is the display model shown to the user: one fact and one
// picture of a cat.
type FactAndImage struct {
	Fact     string
	ImageURL string
}

// Mapper turns the raw values returned by the remote services into the
// display model.
type Mapper interface {
	ToFactAndImage(fact, imageURL string) FactAndImage
}

// DefaultMapper copies the values through unchanged.
type DefaultMapper struct{}

func (DefaultMapper) ToFactAndImage(fact, imageURL string) FactAndImage {
	return FactAndImage{Fact: fact, ImageURL: imageURL}
}
