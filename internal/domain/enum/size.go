package enum

// Size is the marmita container size. P carries a single protein,
// M and G carry up to two.
type Size string

const (
	SizeP Size = "P"
	SizeM Size = "M"
	SizeG Size = "G"
)

// Valid reports whether the size is known.
func (s Size) Valid() bool {
	return s == SizeP || s == SizeM || s == SizeG
}

// MaxProteins returns how many proteins a container of this size carries.
func (s Size) MaxProteins() int {
	if s == SizeP {
		return 1
	}
	return 2
}

func (s Size) String() string {
	return string(s)
}
