package repositories

import (
	"katalog/internal/models"
	"katalog/pkg/query"
)

var productTagJoin = query.Join{Table: "product_tags", On: "product_tags.product_id = products.id"}

// listingPreloads is the context every listed product carries.
var listingPreloads = []string{"City.Country", "Subcategory.Category", "Currency", "ProductTags.Tag"}

// ProductFilterPlan builds the listing plan for a normalized filter. Each
// non-empty dimension adds one membership predicate; the tag join is
// attached only when tags are requested.
func ProductFilterPlan(f models.FilterOptions) *query.Plan {
	plan := query.From("products", "id")

	if len(f.CityIDs) > 0 {
		plan = plan.Where(query.In("products.city_id", f.CityIDs))
	}
	if len(f.SubcategoryIDs) > 0 {
		plan = plan.Where(query.In("products.subcategory_id", f.SubcategoryIDs))
	}
	if len(f.TagIDs) > 0 {
		plan = plan.Join(productTagJoin).Where(query.In("product_tags.tag_id", f.TagIDs))
	}
	return plan
}

// ProductSearchPlan builds the plan for a case-sensitive partial name match.
func ProductSearchPlan(name string) *query.Plan {
	return query.From("products", "id").Where(query.Contains("products.name", name))
}

// sorted orders plan by the resolved field, breaking ties on id in the same
// direction so ascending and descending listings are exact reverses.
func sorted(plan *query.Plan, sort models.SortCriteria) *query.Plan {
	dir := query.Desc
	if sort.Ascending {
		dir = query.Asc
	}
	return plan.OrderBy(sort.Field.Column(), dir).OrderBy("id", dir)
}
