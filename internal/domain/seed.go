package domain

// SeedEntry is one categorized text fragment used as generation input.
// (Category, Content) pairs are unique; entries are read-only at runtime and
// written only by the offline seeding command.
type SeedEntry struct {
	ID       int64
	Category string
	Content  string
}

// Seed category keys. Name pools are "<race>_<gender>" and "<race>_surname";
// backstory fragments come in three ordered parts.
const (
	SeedBackstoryStart  = "backstory_start_fragment"
	SeedBackstoryMiddle = "backstory_middle_fragment"
	SeedBackstoryEnd    = "backstory_end_fragment"
)

// NameCategory returns the seed category for a race's gendered first names.
func NameCategory(race Race, gender Gender) string {
	return string(race) + "_" + string(gender)
}

// SurnameCategory returns the seed category for a race's surnames.
func SurnameCategory(race Race) string {
	return string(race) + "_surname"
}
