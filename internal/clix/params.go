package clix

import (
	"strings"

	"github.com/spf13/pflag"

	"newsdesk/pkg/classifier"
)

type PaginationParams struct {
	Limit  int
	Offset int
}

func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return PaginationParams{Limit: limit, Offset: offset}, nil
}

// ParseCategory reads the "category" flag and normalizes it to the canonical
// category name. An empty flag means no filter.
func ParseCategory(flags *pflag.FlagSet) (string, error) {
	raw, _ := flags.GetString("category")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	cat, err := classifier.ParseCategory(raw)
	if err != nil {
		return "", err
	}
	return cat.String(), nil
}
