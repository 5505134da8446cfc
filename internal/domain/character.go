package domain

import "time"

type Race string

const (
	RaceHuman Race = "human"
	RaceElf   Race = "elf"
	RaceDwarf Race = "dwarf"
)

// Races lists every valid race, in a fixed order for random selection.
var Races = []Race{RaceHuman, RaceElf, RaceDwarf}

func (r Race) Valid() bool {
	switch r {
	case RaceHuman, RaceElf, RaceDwarf:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonbinary Gender = "nonbinary"
)

// Genders lists every valid gender, in a fixed order for random selection.
var Genders = []Gender{GenderMale, GenderFemale, GenderNonbinary}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonbinary:
		return true
	}
	return false
}

// Character is a persisted (or freshly generated, id-less) player character.
// Ability scores are each in [3,18]; 10 when not rolled.
type Character struct {
	ID        int64
	UserID    int64
	Name      string
	Race      Race
	Gender    Gender
	Backstory string
	StatStr   int
	StatDex   int
	StatCon   int
	StatInt   int
	StatWis   int
	StatCha   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CharacterUpdate carries a partial update. Nil fields are left untouched,
// so the set of updatable columns is fixed at compile time.
type CharacterUpdate struct {
	Name      *string
	Race      *Race
	Gender    *Gender
	Backstory *string
	StatStr   *int
	StatDex   *int
	StatCon   *int
	StatInt   *int
	StatWis   *int
	StatCha   *int
}

// Empty reports whether no field is set.
func (u CharacterUpdate) Empty() bool {
	return u.Name == nil && u.Race == nil && u.Gender == nil && u.Backstory == nil &&
		u.StatStr == nil && u.StatDex == nil && u.StatCon == nil &&
		u.StatInt == nil && u.StatWis == nil && u.StatCha == nil
}
