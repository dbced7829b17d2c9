package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArtistWithUpload(t *testing.T) {
	repo, store := testRepo(t)

	file := upload("retrato.png")
	created, err := repo.CreateArtist("Frida", "Ciudad de México", "Pintora", &file, "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.Imagen)
	assert.Equal(t, 1, store.savedCount())
}

func TestCreateArtistWithExistingURL(t *testing.T) {
	repo, store := testRepo(t)

	created, err := repo.CreateArtist("Frida", "Ciudad de México", "Pintora", nil, "http://cdn.test/uploads/artistas/0_x.png")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/uploads/artistas/0_x.png", created.Imagen)
	assert.Equal(t, 0, store.savedCount())
}

func TestCreateArtistRequiresImage(t *testing.T) {
	repo, store := testRepo(t)

	_, err := repo.CreateArtist("Frida", "Ciudad de México", "Pintora", nil, "")
	assert.ErrorIs(t, err, ErrValidation)

	// No insert attempted.
	profiles, err := repo.ListArtists()
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.Equal(t, 0, store.savedCount())
}

func TestUpdateArtistKeepsImageWithoutReplacement(t *testing.T) {
	repo, store := testRepo(t)

	file := upload("retrato.png")
	created, err := repo.CreateArtist("Frida", "Ciudad de México", "Pintora", &file, "")
	require.NoError(t, err)

	updated, err := repo.UpdateArtist(created.ID, "Frida Kahlo", "Coyoacán", "Pintora mexicana", nil)
	require.NoError(t, err)
	assert.Equal(t, created.Imagen, updated.Imagen)
	assert.Empty(t, store.removed)
}

func TestUpdateArtistReplacesImage(t *testing.T) {
	repo, store := testRepo(t)

	file := upload("old.png")
	created, err := repo.CreateArtist("Frida", "Ciudad de México", "Pintora", &file, "")
	require.NoError(t, err)

	replacement := upload("new.png")
	updated, err := repo.UpdateArtist(created.ID, "Frida", "Ciudad de México", "Pintora", &replacement)
	require.NoError(t, err)
	assert.NotEqual(t, created.Imagen, updated.Imagen)
	assert.Contains(t, store.removed, created.Imagen)
}

func TestDeleteArtistRemovesRecordAndImage(t *testing.T) {
	repo, store := testRepo(t)

	file := upload("retrato.png")
	created, err := repo.CreateArtist("Frida", "Ciudad de México", "Pintora", &file, "")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteArtist(created.ID))
	assert.Contains(t, store.removed, created.Imagen)

	profiles, err := repo.ListArtists()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
