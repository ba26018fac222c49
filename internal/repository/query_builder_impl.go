package repository

import (
	"sort"

	"github.com/doug-martin/goqu/v9"
)

type queryBuilderImpl struct {
	conditions  map[string]interface{}
	upperBounds map[string]interface{}
}

func NewQueryBuilder() QueryBuilder {
	return &queryBuilderImpl{
		conditions:  make(map[string]interface{}),
		upperBounds: make(map[string]interface{}),
	}
}

func (q *queryBuilderImpl) AddCondition(key string, value interface{}) {
	q.conditions[key] = value
}

// AddUpperBound filters rows where key <= value.
func (q *queryBuilderImpl) AddUpperBound(key string, value interface{}) {
	q.upperBounds[key] = value
}

func (q *queryBuilderImpl) BuildConditions(aliases map[string]string) goqu.Ex {
	conditions := goqu.Ex{}
	for key, value := range q.conditions {
		conditions[resolve(aliases, key)] = value
	}
	return conditions
}

func (q *queryBuilderImpl) Expressions(aliases map[string]string) []goqu.Expression {
	expressions := []goqu.Expression{q.BuildConditions(aliases)}

	keys := make([]string, 0, len(q.upperBounds))
	for key := range q.upperBounds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		expressions = append(expressions, goqu.I(resolve(aliases, key)).Lte(q.upperBounds[key]))
	}

	return expressions
}

func resolve(aliases map[string]string, key string) string {
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}
