package query

import "fmt"

// Condition is one WHERE predicate kept as data until a plan is executed.
// SQL renders the fragment for the named GORM dialect ("sqlite", "postgres")
// using ? placeholders.
type Condition interface {
	SQL(dialect string) (string, []interface{})
}

// inCondition implements set membership (column IN values).
type inCondition struct {
	column string
	values interface{}
}

// In creates a membership condition. values must be a non-empty slice.
// Example: In("products.city_id", []uint{1, 2}) generates "products.city_id IN (1,2)"
func In(column string, values interface{}) Condition {
	return &inCondition{column: column, values: values}
}

// SQL generates the fragment for set membership.
func (c *inCondition) SQL(string) (string, []interface{}) {
	return fmt.Sprintf("%s IN ?", c.column), []interface{}{c.values}
}

// containsCondition implements a case-sensitive substring match.
type containsCondition struct {
	column string
	substr string
}

// Contains creates a case-sensitive substring condition. LIKE is avoided
// because sqlite folds ASCII case and wildcards in substr would leak through.
func Contains(column, substr string) Condition {
	return &containsCondition{column: column, substr: substr}
}

// SQL generates the fragment for the dialect's position function.
func (c *containsCondition) SQL(dialect string) (string, []interface{}) {
	switch dialect {
	case "postgres":
		return fmt.Sprintf("strpos(%s, ?) > 0", c.column), []interface{}{c.substr}
	default:
		return fmt.Sprintf("instr(%s, ?) > 0", c.column), []interface{}{c.substr}
	}
}
