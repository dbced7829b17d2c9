package repository

import (
	"arte-cultura-backend/internal/domain/artists"
)

const artistPrefix = "artistas"

// ListArtists returns every profile, newest first.
func (r *Content) ListArtists() ([]artists.ArtistProfile, error) {
	var out []artists.ArtistProfile
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Content) GetArtist(id string) (*artists.ArtistProfile, error) {
	var a artists.ArtistProfile
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateArtist requires exactly one image: either a fresh upload or an
// existing URL. Without one, no insert is attempted.
func (r *Content) CreateArtist(titulo string, ubicacion string, texto string, file *Upload, imagenURL string) (*artists.ArtistProfile, error) {
	titulo, err := requireText("titulo", titulo)
	if err != nil {
		return nil, err
	}
	ubicacion, err = requireText("ubicacion", ubicacion)
	if err != nil {
		return nil, err
	}
	texto, err = requireText("texto", texto)
	if err != nil {
		return nil, err
	}

	count := 0
	if file != nil {
		count++
	}
	if imagenURL != "" {
		count++
	}
	if err := ArtistImages.check(count); err != nil {
		return nil, err
	}

	imagen := imagenURL
	if file != nil {
		urls, err := r.uploadAll(artistPrefix, []Upload{*file})
		if err != nil {
			return nil, err
		}
		imagen = urls[0]
	}

	a := artists.ArtistProfile{
		Titulo:    titulo,
		Ubicacion: ubicacion,
		Texto:     texto,
		Imagen:    imagen,
	}
	if err := r.db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateArtist keeps the stored image when no replacement is supplied. A new
// upload replaces it wholesale and the old blob is purged best-effort.
func (r *Content) UpdateArtist(id string, titulo string, ubicacion string, texto string, file *Upload) (*artists.ArtistProfile, error) {
	titulo, err := requireText("titulo", titulo)
	if err != nil {
		return nil, err
	}
	ubicacion, err = requireText("ubicacion", ubicacion)
	if err != nil {
		return nil, err
	}
	texto, err = requireText("texto", texto)
	if err != nil {
		return nil, err
	}

	var a artists.ArtistProfile
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}

	imagen := a.Imagen
	var stale string
	if file != nil {
		urls, err := r.uploadAll(artistPrefix, []Upload{*file})
		if err != nil {
			return nil, err
		}
		imagen = urls[0]
		stale = a.Imagen
	}

	updates := artists.ArtistProfile{
		Titulo:    titulo,
		Ubicacion: ubicacion,
		Texto:     texto,
		Imagen:    imagen,
	}
	if err := r.db.Model(&a).Select("Titulo", "Ubicacion", "Texto", "Imagen").Updates(updates).Error; err != nil {
		return nil, err
	}
	if stale != "" && stale != imagen {
		r.removeAll([]string{stale})
	}

	a.Titulo = titulo
	a.Ubicacion = ubicacion
	a.Texto = texto
	a.Imagen = imagen
	return &a, nil
}

// DeleteArtist purges the profile image best-effort, then deletes the row.
func (r *Content) DeleteArtist(id string) error {
	var a artists.ArtistProfile
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return err
	}

	r.removeAll([]string{a.Imagen})

	return r.db.Delete(&artists.ArtistProfile{}, "id = ?", id).Error
}
