package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// SearchCache is the slice of the Redis cache the job search flow uses.
// A nil cache is always valid; every call degrades to a miss.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const jobsSearchKeyPrefix = "jobs:search:"

type jobSearchCacheKeyInput struct {
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	Type       string   `json:"type"`
	Search     string   `json:"search"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func jobsSearchCacheKey(params JobSearchParams) string {
	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	in := jobSearchCacheKeyInput{
		Title:      normalizeSearchValue(params.Title),
		Location:   normalizeSearchValue(params.Location),
		Type:       normalizeSearchValue(params.Type),
		Search:     normalizeSearchValue(params.Search),
		Experience: normalizeSearchValue(params.Experience),
		Skills:     skills,
		Page:       params.Page,
		Limit:      params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchKeyPrefix + hex.EncodeToString(sum[:])
}
