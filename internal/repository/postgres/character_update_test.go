package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"charforge/internal/domain"
)

func strPtr(s string) *string            { return &s }
func intPtr(i int) *int                  { return &i }
func racePtr(r domain.Race) *domain.Race { return &r }

func TestBuildCharacterUpdatePartial(t *testing.T) {
	clause, args := buildCharacterUpdate(domain.CharacterUpdate{
		Name:    strPtr("Brom"),
		StatStr: intPtr(17),
	})

	assert.Equal(t, "name = $1, stat_str = $2, updated_at = NOW()", clause)
	assert.Equal(t, []any{"Brom", 17}, args)
}

func TestBuildCharacterUpdateAllFields(t *testing.T) {
	gender := domain.GenderNonbinary
	clause, args := buildCharacterUpdate(domain.CharacterUpdate{
		Name:      strPtr("Brom"),
		Race:      racePtr(domain.RaceDwarf),
		Gender:    &gender,
		Backstory: strPtr("A quiet life."),
		StatStr:   intPtr(17),
		StatDex:   intPtr(8),
		StatCon:   intPtr(14),
		StatInt:   intPtr(11),
		StatWis:   intPtr(12),
		StatCha:   intPtr(9),
	})

	assert.Equal(t,
		"name = $1, race = $2, gender = $3, backstory = $4, "+
			"stat_str = $5, stat_dex = $6, stat_con = $7, "+
			"stat_int = $8, stat_wis = $9, stat_cha = $10, "+
			"updated_at = NOW()",
		clause)
	assert.Len(t, args, 10)
	assert.Equal(t, domain.RaceDwarf, args[1])
	assert.Equal(t, domain.GenderNonbinary, args[2])
}

func TestCharacterUpdateEmpty(t *testing.T) {
	assert.True(t, domain.CharacterUpdate{}.Empty())
	assert.False(t, domain.CharacterUpdate{Name: strPtr("x")}.Empty())
	assert.False(t, domain.CharacterUpdate{StatCha: intPtr(10)}.Empty())
}
