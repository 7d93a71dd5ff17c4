package handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyFilters is the optional filter set accepted by the public listing
// search. Absent fields contribute nothing to the query.
type PropertyFilters struct {
	Keyword           string
	City              string
	Locality          string
	Configuration     string
	MinBudget         *float64
	MaxBudget         *float64
	MaxPossessionDate *time.Time
}

// ParsePropertyFilters reads the filter set from the request query string.
// Unparseable numeric or date values are ignored, matching the lenient
// handling of the other search parameters.
func ParsePropertyFilters(c echo.Context) PropertyFilters {
	f := PropertyFilters{
		Keyword:       c.QueryParam("keyword"),
		City:          c.QueryParam("city"),
		Locality:      c.QueryParam("locality"),
		Configuration: c.QueryParam("configuration"),
	}

	if v := c.QueryParam("minBudget"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinBudget = &min
		}
	}
	if v := c.QueryParam("maxBudget"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxBudget = &max
		}
	}
	if v := c.QueryParam("maxPossessionDate"); v != "" {
		if date, err := parseDate(v); err == nil {
			f.MaxPossessionDate = &date
		}
	}
	return f
}

func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Query translates the filter set into a single Mongo query. All supplied
// filters AND together. With approvedOnly the base predicate restricts
// results to publicly visible listings.
func (f PropertyFilters) Query(approvedOnly bool) bson.M {
	query := bson.M{}

	if approvedOnly {
		query["status"] = "approved"
	}

	if f.Keyword != "" {
		query["$text"] = bson.M{"$search": f.Keyword}
	}

	if f.City != "" {
		query["location.city"] = primitive.Regex{Pattern: f.City, Options: "i"}
	}
	if f.Locality != "" {
		query["location.locality"] = primitive.Regex{Pattern: f.Locality, Options: "i"}
	}
	if f.Configuration != "" {
		query["configuration"] = f.Configuration
	}

	if f.MinBudget != nil || f.MaxBudget != nil {
		price := bson.M{}
		if f.MinBudget != nil {
			price["$gte"] = *f.MinBudget
		}
		if f.MaxBudget != nil {
			price["$lte"] = *f.MaxBudget
		}
		query["price"] = price
	}

	if f.MaxPossessionDate != nil {
		query["possessionDate"] = bson.M{"$lte": *f.MaxPossessionDate}
	}

	return query
}

// PropertySort is the default result order: premium listings first, then
// newest. Keyword searches tie-break on the same order.
func PropertySort() bson.D {
	return bson.D{
		{Key: "isPremium", Value: -1},
		{Key: "createdAt", Value: -1},
	}
}
