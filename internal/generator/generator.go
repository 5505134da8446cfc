// Package generator produces randomized characters from seeded name and
// backstory fragments plus dice-rolled ability scores.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"charforge/internal/domain"
)

// SeedSource supplies one uniformly random fragment drawn across the given
// categories. Implementations report domain.ErrMissingSeedData for empty
// categories.
type SeedSource interface {
	GetRandom(ctx context.Context, categories ...string) (string, error)
}

// Generator assembles characters. The random source is injectable so tests
// can fix outcomes; the zero source falls back to the package-level rand,
// which is safe for concurrent requests.
type Generator struct {
	seeds SeedSource
	intn  func(n int) int
}

func New(seeds SeedSource) *Generator {
	return &Generator{seeds: seeds, intn: rand.Intn}
}

// NewWithRand builds a generator over a dedicated rand. The caller owns
// synchronization; intended for deterministic tests.
func NewWithRand(seeds SeedSource, rng *rand.Rand) *Generator {
	return &Generator{seeds: seeds, intn: rng.Intn}
}

// Generate builds a full character for the given race and gender. A
// zero-valued race or gender is selected uniformly at random.
func (g *Generator) Generate(ctx context.Context, race domain.Race, gender domain.Gender) (*domain.Character, error) {
	if race == "" {
		race = domain.Races[g.intn(len(domain.Races))]
	}
	if gender == "" {
		gender = domain.Genders[g.intn(len(domain.Genders))]
	}
	if !race.Valid() {
		return nil, fmt.Errorf("invalid race %q", race)
	}
	if !gender.Valid() {
		return nil, fmt.Errorf("invalid gender %q", gender)
	}

	name, err := g.generateName(ctx, race, gender)
	if err != nil {
		return nil, err
	}
	backstory, err := g.generateBackstory(ctx, name, gender)
	if err != nil {
		return nil, err
	}

	return &domain.Character{
		Name:      name,
		Race:      race,
		Gender:    gender,
		Backstory: backstory,
		StatStr:   g.RollAbility(),
		StatDex:   g.RollAbility(),
		StatCon:   g.RollAbility(),
		StatInt:   g.RollAbility(),
		StatWis:   g.RollAbility(),
		StatCha:   g.RollAbility(),
	}, nil
}

// generateName draws a first name and surname independently. Nonbinary first
// names come from one pool combining both gendered lists, so each entry keeps
// proportional weight instead of a coin flip between pools.
func (g *Generator) generateName(ctx context.Context, race domain.Race, gender domain.Gender) (string, error) {
	var firstPools []string
	if gender == domain.GenderNonbinary {
		firstPools = []string{
			domain.NameCategory(race, domain.GenderMale),
			domain.NameCategory(race, domain.GenderFemale),
		}
	} else {
		firstPools = []string{domain.NameCategory(race, gender)}
	}

	first, err := g.seeds.GetRandom(ctx, firstPools...)
	if err != nil {
		return "", fmt.Errorf("first name: %w", err)
	}
	last, err := g.seeds.GetRandom(ctx, domain.SurnameCategory(race))
	if err != nil {
		return "", fmt.Errorf("surname: %w", err)
	}
	return first + " " + last, nil
}

// generateBackstory joins three independently drawn fragments as
// "{start}. {middle} {end}", substituting the name and pronoun placeholders
// in each. The middle fragment always begins lower-case in the seed corpus,
// so its first rune is upper-cased after substitution.
func (g *Generator) generateBackstory(ctx context.Context, name string, gender domain.Gender) (string, error) {
	start, err := g.seeds.GetRandom(ctx, domain.SeedBackstoryStart)
	if err != nil {
		return "", fmt.Errorf("backstory start: %w", err)
	}
	middle, err := g.seeds.GetRandom(ctx, domain.SeedBackstoryMiddle)
	if err != nil {
		return "", fmt.Errorf("backstory middle: %w", err)
	}
	end, err := g.seeds.GetRandom(ctx, domain.SeedBackstoryEnd)
	if err != nil {
		return "", fmt.Errorf("backstory end: %w", err)
	}

	pronoun, possessive := Pronouns(gender)
	replacer := strings.NewReplacer(
		"{name}", name,
		"{pronoun}", pronoun,
		"{possessive}", possessive,
	)

	return replacer.Replace(start) + ". " +
		upperFirst(replacer.Replace(middle)) + " " +
		replacer.Replace(end), nil
}

// Pronouns maps a gender to its subject pronoun and possessive.
func Pronouns(gender domain.Gender) (pronoun, possessive string) {
	switch gender {
	case domain.GenderMale:
		return "he", "his"
	case domain.GenderFemale:
		return "she", "her"
	default:
		return "they", "their"
	}
}

// RollAbility rolls four six-sided dice, drops one instance of the lowest,
// and sums the remaining three. Result is always in [3,18].
func (g *Generator) RollAbility() int {
	rolls := [4]int{}
	lowest := 0
	sum := 0
	for i := range rolls {
		rolls[i] = g.intn(6) + 1
		sum += rolls[i]
		if rolls[i] < rolls[lowest] {
			lowest = i
		}
	}
	return sum - rolls[lowest]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
