package repository

import (
	"arte-cultura-backend/internal/domain/columns"
)

const columnPrefix = "columnas"

// ListColumns returns every column, newest first. Absent image lists come
// back as empty slices, never nil.
func (r *Content) ListColumns() ([]columns.OpinionColumn, error) {
	var out []columns.OpinionColumn
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Images == nil {
			out[i].Images = []string{}
		}
	}
	return out, nil
}

func (r *Content) GetColumn(id string) (*columns.OpinionColumn, error) {
	var col columns.OpinionColumn
	if err := r.db.First(&col, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if col.Images == nil {
		col.Images = []string{}
	}
	return &col, nil
}

// CreateColumn uploads the image batch, then inserts one document. Validation
// failures and upload failures leave the store untouched.
func (r *Content) CreateColumn(titulo string, descripcion string, files []Upload) (*columns.OpinionColumn, error) {
	titulo, err := requireText("titulo", titulo)
	if err != nil {
		return nil, err
	}
	descripcion, err = requireText("descripcion", descripcion)
	if err != nil {
		return nil, err
	}
	if err := ColumnImages.check(len(files)); err != nil {
		return nil, err
	}

	urls, err := r.uploadAll(columnPrefix, files)
	if err != nil {
		return nil, err
	}

	col := columns.OpinionColumn{
		Titulo:      titulo,
		Descripcion: descripcion,
		Images:      urls,
	}
	if err := r.db.Create(&col).Error; err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateColumn replaces the supplied fields. The image list is replaced
// wholesale: kept URLs plus freshly uploaded ones. created_at is never
// touched; gorm stamps updated_at.
func (r *Content) UpdateColumn(id string, titulo string, descripcion string, keep []string, files []Upload) (*columns.OpinionColumn, error) {
	titulo, err := requireText("titulo", titulo)
	if err != nil {
		return nil, err
	}
	descripcion, err = requireText("descripcion", descripcion)
	if err != nil {
		return nil, err
	}
	if err := ColumnImages.check(len(keep) + len(files)); err != nil {
		return nil, err
	}

	var col columns.OpinionColumn
	if err := r.db.First(&col, "id = ?", id).Error; err != nil {
		return nil, err
	}

	urls, err := r.uploadAll(columnPrefix, files)
	if err != nil {
		return nil, err
	}
	images := append(append([]string{}, keep...), urls...)

	// Images dropped by the edit are purged once the row update went through.
	var stale []string
	for _, old := range col.Images {
		kept := false
		for _, k := range keep {
			if k == old {
				kept = true
				break
			}
		}
		if !kept {
			stale = append(stale, old)
		}
	}

	updates := columns.OpinionColumn{
		Titulo:      titulo,
		Descripcion: descripcion,
		Images:      images,
	}
	if err := r.db.Model(&col).Select("Titulo", "Descripcion", "Images").Updates(updates).Error; err != nil {
		return nil, err
	}
	r.removeAll(stale)

	col.Titulo = titulo
	col.Descripcion = descripcion
	col.Images = images
	return &col, nil
}

// DeleteColumn purges the record's images best-effort, then deletes the row.
// A failed row delete fails the operation even though blobs may be gone.
func (r *Content) DeleteColumn(id string) error {
	var col columns.OpinionColumn
	if err := r.db.First(&col, "id = ?", id).Error; err != nil {
		return err
	}

	r.removeAll(col.Images)

	return r.db.Delete(&columns.OpinionColumn{}, "id = ?", id).Error
}
