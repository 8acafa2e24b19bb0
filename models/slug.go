package models

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// uniqueSlug derives a slug from name and suffixes a counter until it is
// free in the given table. The row's own id is excluded so re-saving a
// row keeps its slug. Soft-deleted rows still hold their slug.
func uniqueSlug(tx *gorm.DB, table, name string, selfID uint) string {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		tx.Table(table).Where("slug = ? AND id <> ?", candidate, selfID).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
