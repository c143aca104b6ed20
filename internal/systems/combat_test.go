package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactical-sim/internal/domain"
)

func TestResolveAttack(t *testing.T) {
	lvl := createTestLevel(t, 5, 5)
	op := placeAgent(t, lvl, 1, 1)
	wolf := placeWolf(t, lvl, 3, 2)

	res := ResolveAttack(op, wolf)
	assert.False(t, res.Performed(), "unarmed operative cannot attack")
	assert.Contains(t, res.Message, "не может")

	armAgent(t, op)
	res = ResolveAttack(op, wolf)
	require.True(t, res.Performed())
	assert.Equal(t, 10, res.Damage)
	assert.Equal(t, 1, res.Spent)
	assert.False(t, res.TargetDied)
	assert.Equal(t, 40, wolf.Health())

	for i := 0; i < 4; i++ {
		res = ResolveAttack(op, wolf)
	}
	assert.True(t, res.TargetDied)
	assert.Contains(t, res.Message, "погибает")
	assert.False(t, wolf.IsAlive())

	res = ResolveAttack(op, wolf)
	assert.False(t, res.TargetDied, "a corpse cannot die twice")

	assert.Equal(t, AttackResult{}, ResolveAttack(op, nil))
}

func TestResolveAttack_NonAttacker(t *testing.T) {
	lvl := createTestLevel(t, 3, 3)
	op := placeAgent(t, lvl, 0, 0)
	forager, err := domain.NewForager("Сборщик", 30, 6, 3, 2)
	require.NoError(t, err)
	_, err = lvl.Registry().Spawn(forager)
	require.NoError(t, err)
	require.True(t, lvl.AddEntity(forager, 1, 0))

	res := ResolveAttack(forager, op)
	assert.False(t, res.Performed())
	assert.Equal(t, 100, op.Health())
}
