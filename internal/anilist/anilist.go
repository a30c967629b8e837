// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package anilist is a thin client for the AniList GraphQL API. It
// exposes the handful of catalog queries the CLI needs and flattens
// the API's media shape into the local Anime record.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultEndpoint is the public AniList GraphQL endpoint.
const DefaultEndpoint = "https://graphql.anilist.co"

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StreamingLink is a link to a recognized streaming platform.
type StreamingLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Trailer identifies a video on an external site (usually YouTube).
type Trailer struct {
	ID   string `json:"id"`
	Site string `json:"site"`
}

// AiringEpisode is the next scheduled episode of a releasing show.
type AiringEpisode struct {
	Episode  int   `json:"episode"`
	AiringAt int64 `json:"airingAt"`
}

// Anime is the catalog record the rest of the application works with.
// Episodes is a pointer because AniList omits the count for shows that
// have not announced one.
type Anime struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	TitleEnglish  string          `json:"titleEnglish,omitempty"`
	TitleJapanese string          `json:"titleJapanese,omitempty"`
	CoverImage    string          `json:"coverImage"`
	BannerImage   string          `json:"bannerImage,omitempty"`
	Synopsis      string          `json:"synopsis"`
	Episodes      *int            `json:"episodes"`
	Status        string          `json:"status"`
	Season        string          `json:"season,omitempty"`
	SeasonYear    int             `json:"seasonYear,omitempty"`
	Score         float64         `json:"score"`
	Popularity    int             `json:"popularity"`
	Genres        []string        `json:"genres"`
	Studios       []string        `json:"studios"`
	Trailer       *Trailer        `json:"trailer,omitempty"`
	NextEpisode   *AiringEpisode  `json:"nextAiringEpisode,omitempty"`
	Streaming     []StreamingLink `json:"streamingLinks,omitempty"`
}

// DisplayTitle prefers the English title when AniList has one.
func (a Anime) DisplayTitle() string {
	if a.TitleEnglish != "" {
		return a.TitleEnglish
	}
	return a.Title
}

// Client talks to the AniList GraphQL API. The zero value is not
// usable; construct with NewClient.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a Client for the given endpoint. An empty endpoint
// selects DefaultEndpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// mediaFragment lists every media field transform consumes.
const mediaFragment = `
  id
  title { romaji english native }
  coverImage { extraLarge large }
  bannerImage
  description(asHtml: false)
  episodes
  status
  season
  seasonYear
  averageScore
  popularity
  genres
  studios(isMain: true) { nodes { name } }
  trailer { id site }
  nextAiringEpisode { episode airingAt }
  externalLinks { site url }
`

type gqlMedia struct {
	ID    int `json:"id"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
		Native  string `json:"native"`
	} `json:"title"`
	CoverImage struct {
		ExtraLarge string `json:"extraLarge"`
		Large      string `json:"large"`
	} `json:"coverImage"`
	BannerImage  string   `json:"bannerImage"`
	Description  string   `json:"description"`
	Episodes     *int     `json:"episodes"`
	Status       string   `json:"status"`
	Season       string   `json:"season"`
	SeasonYear   int      `json:"seasonYear"`
	AverageScore *int     `json:"averageScore"`
	Popularity   int      `json:"popularity"`
	Genres       []string `json:"genres"`
	Studios      struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"studios"`
	Trailer           *Trailer       `json:"trailer"`
	NextAiringEpisode *AiringEpisode `json:"nextAiringEpisode"`
	ExternalLinks     []struct {
		Site string `json:"site"`
		URL  string `json:"url"`
	} `json:"externalLinks"`
}

// transform flattens the API shape. Synopsis has HTML tags stripped
// and the 0-100 average score becomes a 0-10 value.
func transform(m gqlMedia) Anime {
	a := Anime{
		ID:            m.ID,
		Title:         m.Title.Romaji,
		TitleEnglish:  m.Title.English,
		TitleJapanese: m.Title.Native,
		CoverImage:    m.CoverImage.ExtraLarge,
		BannerImage:   m.BannerImage,
		Synopsis:      strings.TrimSpace(tagRe.ReplaceAllString(m.Description, "")),
		Episodes:      m.Episodes,
		Status:        m.Status,
		Season:        m.Season,
		SeasonYear:    m.SeasonYear,
		Popularity:    m.Popularity,
		Genres:        m.Genres,
		Trailer:       m.Trailer,
		NextEpisode:   m.NextAiringEpisode,
	}
	if a.CoverImage == "" {
		a.CoverImage = m.CoverImage.Large
	}
	if m.AverageScore != nil {
		a.Score = float64(*m.AverageScore) / 10
	}
	a.Studios = make([]string, 0, len(m.Studios.Nodes))
	for _, n := range m.Studios.Nodes {
		a.Studios = append(a.Studios, n.Name)
	}
	for _, link := range m.ExternalLinks {
		site := strings.ToLower(link.Site)
		for _, platform := range []string{"crunchyroll", "netflix", "funimation", "hulu"} {
			if strings.Contains(site, platform) {
				a.Streaming = append(a.Streaming, StreamingLink{Platform: platform, URL: link.URL})
				break
			}
		}
	}
	return a
}

// query posts a GraphQL document and decodes the data envelope into out.
func (c *Client) query(ctx context.Context, doc string, vars map[string]any, out any) error {
	body, err := json.Marshal(struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}{doc, vars})
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("query anilist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("anilist: %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("anilist: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

type pageResult struct {
	Page struct {
		Media []gqlMedia `json:"media"`
	} `json:"Page"`
}

func (c *Client) page(ctx context.Context, doc string, vars map[string]any) ([]Anime, error) {
	var result pageResult
	if err := c.query(ctx, doc, vars, &result); err != nil {
		return nil, err
	}
	out := make([]Anime, 0, len(result.Page.Media))
	for _, m := range result.Page.Media {
		out = append(out, transform(m))
	}
	return out, nil
}

func pageQuery(mediaArgs string) string {
	return `query ($page: Int, $perPage: Int) {
  Page(page: $page, perPage: $perPage) {
    media(` + mediaArgs + `) {` + mediaFragment + `}
  }
}`
}

// Trending returns the current trending page.
func (c *Client) Trending(ctx context.Context, page, perPage int) ([]Anime, error) {
	doc := pageQuery("type: ANIME, sort: TRENDING_DESC, isAdult: false")
	return c.page(ctx, doc, map[string]any{"page": page, "perPage": perPage})
}

// Popular returns the all-time popularity ranking.
func (c *Client) Popular(ctx context.Context, page, perPage int) ([]Anime, error) {
	doc := pageQuery("type: ANIME, sort: POPULARITY_DESC, isAdult: false")
	return c.page(ctx, doc, map[string]any{"page": page, "perPage": perPage})
}

// TopRated returns the score ranking.
func (c *Client) TopRated(ctx context.Context, page, perPage int) ([]Anime, error) {
	doc := pageQuery("type: ANIME, sort: SCORE_DESC, isAdult: false")
	return c.page(ctx, doc, map[string]any{"page": page, "perPage": perPage})
}

// Airing returns currently releasing shows by popularity.
func (c *Client) Airing(ctx context.Context, page, perPage int) ([]Anime, error) {
	doc := pageQuery("type: ANIME, status: RELEASING, sort: POPULARITY_DESC, isAdult: false")
	return c.page(ctx, doc, map[string]any{"page": page, "perPage": perPage})
}

// Seasonal returns the shows of one season, e.g. ("WINTER", 2026).
func (c *Client) Seasonal(ctx context.Context, season string, year, page, perPage int) ([]Anime, error) {
	doc := `query ($page: Int, $perPage: Int, $season: MediaSeason, $seasonYear: Int) {
  Page(page: $page, perPage: $perPage) {
    media(type: ANIME, season: $season, seasonYear: $seasonYear, sort: POPULARITY_DESC, isAdult: false) {` + mediaFragment + `}
  }
}`
	return c.page(ctx, doc, map[string]any{
		"page": page, "perPage": perPage,
		"season": strings.ToUpper(season), "seasonYear": year,
	})
}

// Search runs a full-text title search.
func (c *Client) Search(ctx context.Context, search string, page, perPage int) ([]Anime, error) {
	doc := `query ($page: Int, $perPage: Int, $search: String) {
  Page(page: $page, perPage: $perPage) {
    media(type: ANIME, search: $search, isAdult: false, sort: SEARCH_MATCH) {` + mediaFragment + `}
  }
}`
	return c.page(ctx, doc, map[string]any{"page": page, "perPage": perPage, "search": search})
}

// BrowseFilters narrows a Browse call. Zero-valued fields are omitted
// from the query so AniList applies no constraint for them.
type BrowseFilters struct {
	Genres     []string
	Season     string
	SeasonYear int
	Sort       string // popularity, score, title, newest, trending
	Page       int
	PerPage    int
}

var sortMap = map[string]string{
	"popularity": "POPULARITY_DESC",
	"score":      "SCORE_DESC",
	"title":      "TITLE_ROMAJI",
	"newest":     "START_DATE_DESC",
	"trending":   "TRENDING_DESC",
}

// SortKeys lists the accepted Browse sort names.
func SortKeys() []string {
	return []string{"popularity", "score", "title", "newest", "trending"}
}

// Browse returns a filtered catalog page. Unknown sort names fall
// back to popularity.
func (c *Client) Browse(ctx context.Context, filters BrowseFilters) ([]Anime, error) {
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage <= 0 {
		perPage = 24
	}
	sort, ok := sortMap[filters.Sort]
	if !ok {
		sort = "POPULARITY_DESC"
	}

	vars := map[string]any{
		"page":    page,
		"perPage": perPage,
		"sort":    []string{sort},
	}
	if len(filters.Genres) > 0 {
		vars["genres"] = filters.Genres
	}
	if filters.Season != "" {
		vars["season"] = strings.ToUpper(filters.Season)
	}
	if filters.SeasonYear != 0 {
		vars["seasonYear"] = filters.SeasonYear
	}

	doc := `query ($page: Int, $perPage: Int, $genres: [String], $season: MediaSeason, $seasonYear: Int, $sort: [MediaSort]) {
  Page(page: $page, perPage: $perPage) {
    media(type: ANIME, genre_in: $genres, season: $season, seasonYear: $seasonYear, sort: $sort, isAdult: false) {` + mediaFragment + `}
  }
}`
	return c.page(ctx, doc, vars)
}

// ByID fetches a single catalog record.
func (c *Client) ByID(ctx context.Context, id int) (Anime, error) {
	doc := `query ($id: Int) {
  Media(id: $id, type: ANIME) {` + mediaFragment + `}
}`
	var result struct {
		Media gqlMedia `json:"Media"`
	}
	if err := c.query(ctx, doc, map[string]any{"id": id}, &result); err != nil {
		return Anime{}, err
	}
	return transform(result.Media), nil
}

// Recommendations returns shows AniList users recommend alongside id.
func (c *Client) Recommendations(ctx context.Context, id, perPage int) ([]Anime, error) {
	doc := `query ($id: Int, $perPage: Int) {
  Media(id: $id, type: ANIME) {
    recommendations(perPage: $perPage, sort: RATING_DESC) {
      nodes { mediaRecommendation {` + mediaFragment + `} }
    }
  }
}`
	var result struct {
		Media struct {
			Recommendations struct {
				Nodes []struct {
					MediaRecommendation *gqlMedia `json:"mediaRecommendation"`
				} `json:"nodes"`
			} `json:"recommendations"`
		} `json:"Media"`
	}
	if err := c.query(ctx, doc, map[string]any{"id": id, "perPage": perPage}, &result); err != nil {
		return nil, err
	}
	out := make([]Anime, 0, len(result.Media.Recommendations.Nodes))
	for _, n := range result.Media.Recommendations.Nodes {
		if n.MediaRecommendation == nil {
			continue
		}
		out = append(out, transform(*n.MediaRecommendation))
	}
	return out, nil
}
