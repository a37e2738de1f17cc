package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder - squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает INSERT запрос
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update начинает UPDATE запрос
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает DELETE запрос
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
