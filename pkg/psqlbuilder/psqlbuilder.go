package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder constructor de consultas con placeholders $N de PostgreSQL
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select crea un SELECT con placeholders de PostgreSQL
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert crea un INSERT con placeholders de PostgreSQL
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update crea un UPDATE con placeholders de PostgreSQL
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete crea un DELETE con placeholders de PostgreSQL
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
