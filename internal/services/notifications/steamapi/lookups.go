package steamapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/leighmacdonald/steamid/v2/steamid"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
)

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID     string `json:"steamid"`
			PersonaName string `json:"personaname"`
			Avatar      string `json:"avatar"`
			AvatarFull  string `json:"avatarfull"`
		} `json:"players"`
	} `json:"response"`
}

// ActorSummary resolves a community profile.
func (c *Client) ActorSummary(ctx context.Context, id steamid.SID64) (domain.ActorSummary, error) {
	if c.apiKey == "" {
		return domain.ActorSummary{}, ErrNoAPIKey
	}
	var body playerSummariesResponse
	err := c.getJSON(ctx, c.webAPIBase+"/ISteamUser/GetPlayerSummaries/v2/", url.Values{
		"key":      {c.apiKey},
		"steamids": {id.String()},
	}, &body)
	if err != nil {
		return domain.ActorSummary{}, fmt.Errorf("player summary %s: %w", id, err)
	}
	if len(body.Response.Players) == 0 {
		return domain.ActorSummary{}, ErrNotFound
	}

	player := body.Response.Players[0]
	profile := id
	if parsed, err := strconv.ParseUint(player.SteamID, 10, 64); err == nil {
		profile = steamid.SID64(parsed)
	}
	avatar := player.Avatar
	if avatar == "" {
		avatar = player.AvatarFull
	}
	return domain.ActorSummary{DisplayName: player.PersonaName, AvatarURL: avatar, ProfileID: profile}, nil
}

type appDetailsEnvelope struct {
	Success bool       `json:"success"`
	Data    appDetails `json:"data"`
}

type appDetails struct {
	Type             string   `json:"type"`
	Name             string   `json:"name"`
	IsFree           bool     `json:"is_free"`
	ShortDescription string   `json:"short_description"`
	HeaderImage      string   `json:"header_image"`
	Website          string   `json:"website"`
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
	PriceOverview    *struct {
		Currency        string `json:"currency"`
		Initial         int    `json:"initial"`
		Final           int    `json:"final"`
		DiscountPercent int    `json:"discount_percent"`
	} `json:"price_overview"`
	ReleaseDate *struct {
		ComingSoon bool   `json:"coming_soon"`
		Date       string `json:"date"`
	} `json:"release_date"`
	Achievements    *domain.Total `json:"achievements"`
	Recommendations *domain.Total `json:"recommendations"`
	Categories      []tag         `json:"categories"`
	Genres          []tag         `json:"genres"`
	Platforms       *struct {
		Windows bool `json:"windows"`
		Mac     bool `json:"mac"`
		Linux   bool `json:"linux"`
	} `json:"platforms"`
}

type tag struct {
	Description string `json:"description"`
}

// ProductDetails resolves storefront metadata priced for countryCode.
func (c *Client) ProductDetails(ctx context.Context, appID int, countryCode string) (domain.StoreDetails, error) {
	id := strconv.Itoa(appID)
	query := url.Values{"appids": {id}}
	if cc := strings.TrimSpace(countryCode); cc != "" {
		query.Set("cc", strings.ToLower(cc))
	}

	var body map[string]appDetailsEnvelope
	if err := c.getJSON(ctx, c.storeBase+"/api/appdetails", query, &body); err != nil {
		return domain.StoreDetails{}, fmt.Errorf("app details %d: %w", appID, err)
	}
	envelope, ok := body[id]
	if !ok || !envelope.Success {
		return domain.StoreDetails{}, ErrNotFound
	}
	return envelope.Data.toDomain(), nil
}

func (d appDetails) toDomain() domain.StoreDetails {
	details := domain.StoreDetails{
		Type:             d.Type,
		Name:             d.Name,
		IsFree:           d.IsFree,
		ShortDescription: d.ShortDescription,
		HeaderImage:      d.HeaderImage,
		Website:          d.Website,
		Developers:       d.Developers,
		Publishers:       d.Publishers,
		Categories:       descriptions(d.Categories),
		Genres:           descriptions(d.Genres),
	}
	if p := d.PriceOverview; p != nil {
		details.PriceOverview = domain.Some(domain.PriceOverview{
			Currency:        p.Currency,
			DiscountPercent: p.DiscountPercent,
			Final:           p.Final,
			Initial:         p.Initial,
		})
	}
	if r := d.ReleaseDate; r != nil {
		details.ReleaseDate = domain.Some(domain.ReleaseDate{ComingSoon: r.ComingSoon, Date: r.Date})
	}
	if d.Achievements != nil {
		details.Achievements = domain.Some(*d.Achievements)
	}
	if d.Recommendations != nil {
		details.Recommendations = domain.Some(*d.Recommendations)
	}
	if p := d.Platforms; p != nil {
		details.Platforms = domain.Some(domain.Platforms{Windows: p.Windows, Mac: p.Mac, Linux: p.Linux})
	}
	return details
}

func descriptions(tags []tag) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Description)
	}
	return out
}

type playerCountResponse struct {
	Response struct {
		PlayerCount int `json:"player_count"`
		Result      int `json:"result"`
	} `json:"response"`
}

// LivePlayerCount resolves the current number of players in an app.
func (c *Client) LivePlayerCount(ctx context.Context, appID int) (int, error) {
	var body playerCountResponse
	err := c.getJSON(ctx, c.webAPIBase+"/ISteamUserStats/GetNumberOfCurrentPlayers/v1/", url.Values{
		"appid": {strconv.Itoa(appID)},
	}, &body)
	if err != nil {
		return 0, fmt.Errorf("player count %d: %w", appID, err)
	}
	if body.Response.Result != 1 {
		return 0, ErrNotFound
	}
	return body.Response.PlayerCount, nil
}

var eventPath = regexp.MustCompile(`/news/app/\d+/view/(\d+)`)

// StructuredEventID resolves the event id an article URL redirects to.
func (c *Client) StructuredEventID(ctx context.Context, articleURL string) (string, error) {
	if id := eventIDFrom(articleURL); id != "" {
		return id, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", fmt.Errorf("build article request: %w", err)
	}
	resp, err := c.noRedirect.Do(req)
	if err != nil {
		return "", fmt.Errorf("article request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if id := eventIDFrom(resp.Header.Get("Location")); id != "" {
			return id, nil
		}
		return "", ErrNotFound
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	if id := eventIDFrom(resp.Request.URL.String()); id != "" {
		return id, nil
	}
	return "", ErrNotFound
}

func eventIDFrom(raw string) string {
	if match := eventPath.FindStringSubmatch(raw); match != nil {
		return match[1]
	}
	return ""
}

type deckReportResponse struct {
	Success int `json:"success"`
	Results *struct {
		ResolvedCategory *int `json:"resolved_category"`
	} `json:"results"`
}

// DeckCompatibility resolves the raw handheld compatibility category code.
func (c *Client) DeckCompatibility(ctx context.Context, appID int) (string, error) {
	var body deckReportResponse
	err := c.getJSON(ctx, c.storeBase+"/saleaction/ajaxgetdeckappcompatibilityreport", url.Values{
		"nAppID": {strconv.Itoa(appID)},
	}, &body)
	if err != nil {
		return "", fmt.Errorf("deck report %d: %w", appID, err)
	}
	if body.Success != 1 || body.Results == nil || body.Results.ResolvedCategory == nil {
		return "", ErrNotFound
	}
	return strconv.Itoa(*body.Results.ResolvedCategory), nil
}
