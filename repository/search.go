package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/fyyur/database"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameContains scopes a query to rows whose name contains term, ignoring case
// with Unicode folding. Wildcards in term match literally; an empty term matches
// every row.
func nameContains(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db.Dialector.Name() == "postgres" {
			return db.Where(`name ILIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(term)+"%")
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		return db.Where(database.FoldCaseFunc+`(name) LIKE ? ESCAPE '\'`, pattern)
	}
}
