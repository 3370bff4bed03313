package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT builder с плейсхолдерами PostgreSQL
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT builder с плейсхолдерами PostgreSQL
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update возвращает UPDATE builder с плейсхолдерами PostgreSQL
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE builder с плейсхолдерами PostgreSQL
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
