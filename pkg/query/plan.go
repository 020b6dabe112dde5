package query

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Join is an inner join attached to the plan's base table.
type Join struct {
	Table string
	On    string
}

// SQL returns the JOIN fragment.
func (j Join) SQL() string {
	return fmt.Sprintf("JOIN %s ON %s", j.Table, j.On)
}

// Order is one ORDER BY term.
type Order struct {
	Table     string
	Column    string
	Direction Direction
}

// Plan describes a filtered, sorted listing over one table as plain data:
// required joins, predicates, orderings and associations to preload.
// Nothing touches a *gorm.DB until Count or Fetch runs, and both rebuild
// their statements from the same joins and predicates, so a count and a
// fetch taken from one plan always agree on what matches.
//
// Rows are identified by a key column. Matching selects DISTINCT keys, so a
// join that fans one row out into many never duplicates or over-counts it.
type Plan struct {
	table      string
	key        string
	joins      []Join
	conditions []Condition
	orders     []Order
	preloads   []string
}

// From creates a plan over table whose rows are identified by key.
func From(table, key string) *Plan {
	return &Plan{
		table:      table,
		key:        key,
		joins:      []Join{},
		conditions: []Condition{},
		orders:     []Order{},
		preloads:   []string{},
	}
}

// Join attaches a join. Attaching the same join twice is a no-op.
func (p *Plan) Join(j Join) *Plan {
	for _, existing := range p.joins {
		if existing == j {
			return p
		}
	}
	newPlan := p.clone()
	newPlan.joins = append(newPlan.joins, j)
	return newPlan
}

// Where adds a predicate. Multiple calls are combined with AND; nil is ignored.
func (p *Plan) Where(c Condition) *Plan {
	if c == nil {
		return p
	}
	newPlan := p.clone()
	newPlan.conditions = append(newPlan.conditions, c)
	return newPlan
}

// OrderBy appends a sort term on a column of the base table.
func (p *Plan) OrderBy(column string, direction Direction) *Plan {
	newPlan := p.clone()
	newPlan.orders = append(newPlan.orders, Order{Table: p.table, Column: column, Direction: direction})
	return newPlan
}

// Preload names associations loaded alongside fetched rows.
func (p *Plan) Preload(associations ...string) *Plan {
	newPlan := p.clone()
	newPlan.preloads = append(newPlan.preloads, associations...)
	return newPlan
}

// Joins returns the joins the plan requires.
func (p *Plan) Joins() []Join {
	return append([]Join(nil), p.joins...)
}

// Conditions returns the plan's predicates.
func (p *Plan) Conditions() []Condition {
	return append([]Condition(nil), p.conditions...)
}

// Orders returns the plan's sort terms.
func (p *Plan) Orders() []Order {
	return append([]Order(nil), p.orders...)
}

// Matching returns a subquery selecting the DISTINCT keys of matching rows.
func (p *Plan) Matching(db *gorm.DB) *gorm.DB {
	tx := db.Session(&gorm.Session{NewDB: true}).
		Table(p.table).
		Select("DISTINCT " + p.qualifiedKey())
	for _, j := range p.joins {
		tx = tx.Joins(j.SQL())
	}
	dialect := db.Dialector.Name()
	for _, c := range p.conditions {
		sql, args := c.SQL(dialect)
		tx = tx.Where(sql, args...)
	}
	return tx
}

// Count returns the number of distinct matching rows.
func (p *Plan) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := p.countQuery(db).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", p.table, err)
	}
	return total, nil
}

// Fetch loads one page of matching rows into dest, sorted by the plan's terms.
// A non-positive limit fetches every row after offset.
func (p *Plan) Fetch(db *gorm.DB, dest interface{}, offset, limit int) error {
	if offset < 0 {
		return fmt.Errorf("failed to fetch %s: negative offset %d", p.table, offset)
	}
	tx := db.Session(&gorm.Session{NewDB: true}).
		Table(p.table).
		Where(p.qualifiedKey()+" IN (?)", p.Matching(db))
	for _, assoc := range p.preloads {
		tx = tx.Preload(assoc)
	}
	for _, o := range p.orders {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Table: o.Table, Name: o.Column},
			Desc:   o.Direction == Desc,
		})
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("failed to fetch %s: %w", p.table, err)
	}
	return nil
}

// CountSQL renders the count statement without executing it.
func (p *Plan) CountSQL(db *gorm.DB) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var total int64
		return p.countQuery(tx).Count(&total)
	})
}

func (p *Plan) countQuery(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Table(p.table).
		Where(p.qualifiedKey()+" IN (?)", p.Matching(db))
}

func (p *Plan) qualifiedKey() string {
	return p.table + "." + p.key
}

// clone creates a copy of the plan for immutability.
func (p *Plan) clone() *Plan {
	newPlan := &Plan{
		table:      p.table,
		key:        p.key,
		joins:      make([]Join, len(p.joins)),
		conditions: make([]Condition, len(p.conditions)),
		orders:     make([]Order, len(p.orders)),
		preloads:   make([]string, len(p.preloads)),
	}
	copy(newPlan.joins, p.joins)
	copy(newPlan.conditions, p.conditions)
	copy(newPlan.orders, p.orders)
	copy(newPlan.preloads, p.preloads)
	return newPlan
}
