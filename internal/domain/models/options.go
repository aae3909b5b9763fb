package models

import (
	"fmt"
	"movie-lines-api/internal/apperrors"
	"strconv"
)

// Closed option types for the listing endpoints. Unknown values are rejected
// at the request boundary; the repo layer only ever sees parsed values.

type MovieSort string

const (
	MovieSortTitle  MovieSort = "movie_title"
	MovieSortYear   MovieSort = "year"
	MovieSortRating MovieSort = "rating"
)

func ParseMovieSort(s string) (MovieSort, error) {
	switch s {
	case "":
		return MovieSortTitle, nil
	case string(MovieSortTitle):
		return MovieSortTitle, nil
	case string(MovieSortYear):
		return MovieSortYear, nil
	case string(MovieSortRating):
		return MovieSortRating, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperrors.ErrInvalidSort)
}

type TeamSort string

const (
	TeamSortName TeamSort = "team_name"
	TeamSortID   TeamSort = "team_id"
)

func ParseTeamSort(s string) (TeamSort, error) {
	switch s {
	case "":
		return TeamSortID, nil
	case string(TeamSortName):
		return TeamSortName, nil
	case string(TeamSortID):
		return TeamSortID, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperrors.ErrInvalidSort)
}

type ShowFilter string

const (
	ShowReal ShowFilter = "real"
	ShowFake ShowFilter = "fake"
	ShowBoth ShowFilter = "both"
)

func ParseShowFilter(s string) (ShowFilter, error) {
	switch s {
	case "":
		return ShowFake, nil
	case string(ShowReal):
		return ShowReal, nil
	case string(ShowFake):
		return ShowFake, nil
	case string(ShowBoth):
		return ShowBoth, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperrors.ErrInvalidShow)
}

const (
	DefaultLimit = 50
	MaxLimit     = 250
)

type Page struct {
	Limit  int
	Offset int
}

// ParsePage validates limit/offset query values, applying the documented
// defaults for empty strings.
func ParsePage(limitStr, offsetStr string) (Page, error) {
	page := Page{Limit: DefaultLimit, Offset: 0}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > MaxLimit {
			return Page{}, fmt.Errorf("%q: %w", limitStr, apperrors.ErrInvalidLimit)
		}
		page.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return Page{}, fmt.Errorf("%q: %w", offsetStr, apperrors.ErrInvalidOffset)
		}
		page.Offset = offset
	}

	return page, nil
}

// MovieFilter is the validated input of the movie listing query.
type MovieFilter struct {
	Name string
	Sort MovieSort
	Page Page
}

// TeamFilter is the validated input of the team listing query.
type TeamFilter struct {
	NamePrefix    string
	CreatedPrefix string
	Sort          TeamSort
	Show          ShowFilter
	Page          Page
}
