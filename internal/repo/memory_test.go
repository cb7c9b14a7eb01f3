package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
)

func TestMemoryMaterialRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryMaterialDB(material.Seed)

	all, err := r.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(material.Seed))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name, "listing is name-sorted")
	}

	metals, err := r.List(ctx, "Metal")
	require.NoError(t, err)
	for _, m := range metals {
		assert.Equal(t, "Metal", m.Category)
	}
	assert.Less(t, len(metals), len(all))

	m, err := r.Get(ctx, "PEEK")
	require.NoError(t, err)
	assert.Equal(t, "Polymer", m.Category)

	_, err = r.Get(ctx, "Unobtainium")
	assert.ErrorIs(t, err, material.ErrNotFound)

	got, err := r.ByNames(ctx, []string{"ABS", "Unobtainium", "PEEK"})
	require.NoError(t, err)
	require.Len(t, got, 2, "unknown names are skipped")
	assert.Equal(t, "ABS", got[0].Name)

	cats, err := r.Categories(ctx)
	require.NoError(t, err)
	assert.Contains(t, cats, "Ceramic")
	assert.IsIncreasing(t, cats)
}

func TestMemoryMaterialWrites(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryMaterialDB(nil)

	d := 1200.0
	m := material.Material{Name: "HDPE", Category: "Polymer", Density: &d}
	require.NoError(t, r.Create(ctx, m))
	assert.Error(t, r.Create(ctx, m), "duplicate create must fail")

	assert.ErrorIs(t, r.Update(ctx, material.Material{Name: "PTFE", Category: "Polymer"}), material.ErrNotFound)

	m.Category = "Plastic"
	require.NoError(t, r.Update(ctx, m))
	got, err := r.Get(ctx, "HDPE")
	require.NoError(t, err)
	assert.Equal(t, "Plastic", got.Category)

	// Upsert inserts or replaces.
	require.NoError(t, r.Upsert(ctx, material.Material{Name: "PTFE", Category: "Polymer"}))
	m.Category = "Polymer"
	require.NoError(t, r.Upsert(ctx, m))
	got, err = r.Get(ctx, "HDPE")
	require.NoError(t, err)
	assert.Equal(t, "Polymer", got.Category)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryUserDB()

	id, err := r.CreateUser(ctx, "admin", "admin@example.com", "hash1")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = r.CreateUser(ctx, "admin", "again@example.com", "hash2")
	assert.Error(t, err)

	gotID, hash, err := r.GetByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, gotID)
	assert.Equal(t, "hash1", hash)

	gotID, hash, err = r.GetByLogin(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, gotID)
	assert.Empty(t, hash)
}
