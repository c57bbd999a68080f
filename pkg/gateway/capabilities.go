package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/effective-security/x/values"
)

// Default filter values and truncation limits used by the capabilities below.
const (
	DefaultFilter     = "All"
	DefaultActionMode = "collection_number"
	DefaultActionType = "buy"

	defaultLimit     = 15
	wideLimit        = 20
	defaultSaleLimit = 10
	defaultUserLimit = 50
)

// GiftInfo returns all information about a specific gift by its slug.
func (c *Client) GiftInfo(ctx context.Context, slug string) (any, error) {
	payload := values.MapAny{"slug": slug}
	data, err := c.request(ctx, http.MethodPost, "/api/gifts", nil, payload)
	if err != nil {
		return nil, err
	}
	return truncate("/api/gifts", data, wideLimit), nil
}

// MarketActionsParams filters the aggregated market-actions feed.
// Optional fields are omitted from the request body entirely when unset.
type MarketActionsParams struct {
	Page       int
	Mode       string
	ActionType string
	Gift       string
	MinPrice   *float64
	MaxPrice   *float64
	Market     string
}

// MarketActions returns aggregated market actions (buys, listings,
// price changes) for gifts.
func (c *Client) MarketActions(ctx context.Context, p MarketActionsParams) (any, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(p.Page))
	params.Set("mode", values.StringsCoalesce(p.Mode, DefaultActionMode))

	payload := values.MapAny{
		"type": values.StringsCoalesce(p.ActionType, DefaultActionType),
	}
	if p.Gift != "" {
		payload["gift"] = p.Gift
	}
	if p.MinPrice != nil {
		payload["min_price"] = *p.MinPrice
	}
	if p.MaxPrice != nil {
		payload["max_price"] = *p.MaxPrice
	}
	if p.Market != "" {
		payload["market"] = p.Market
	}

	data, err := c.request(ctx, http.MethodPost, "/api/actions/markets", params, payload)
	if err != nil {
		return nil, err
	}
	return truncate("/api/actions/markets", data, defaultLimit), nil
}

// AggregatorParams filters the unified NFT aggregator feed. Unlike the
// other capabilities, unset optional filters are sent as explicit JSON
// nulls: the upstream schema distinguishes "filter absent" from
// "filter cleared", so the keys must always be present.
type AggregatorParams struct {
	Page           int
	Name           string
	Model          string
	Symbol         string
	Backdrop       string
	Number         *int
	FromPrice      *int
	ToPrice        *int
	Markets        []string
	BlockchainView *bool
	Receiver       *int64
}

// GiftsAggregator returns filtered NFT gift aggregator data, a unified
// listing across the supported markets.
func (c *Client) GiftsAggregator(ctx context.Context, p AggregatorParams) (any, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(p.Page))

	// Typed nil pointers and nil slices marshal as JSON null, keeping
	// every key present in the body.
	payload := values.MapAny{
		"name":       values.StringsCoalesce(p.Name, DefaultFilter),
		"model":      values.StringsCoalesce(p.Model, DefaultFilter),
		"symbol":     values.StringsCoalesce(p.Symbol, DefaultFilter),
		"backdrop":   values.StringsCoalesce(p.Backdrop, DefaultFilter),
		"number":     p.Number,
		"from_price": p.FromPrice,
		"to_price":   p.ToPrice,
		"market":     p.Markets,
		// the upstream schema spells it this way
		"blochainView": p.BlockchainView,
		"receiver":     p.Receiver,
	}

	data, err := c.request(ctx, http.MethodPost, "/api/aggregator", params, payload)
	if err != nil {
		return nil, err
	}
	return truncate("/api/aggregator", data, wideLimit), nil
}

// UniqueLastSales returns the unique last sales for a collection,
// optionally filtered by model. The caller-supplied limit also bounds
// the returned payload.
func (c *Client) UniqueLastSales(ctx context.Context, collectionName string, limit int, modelName string) (any, error) {
	limit = values.NumbersCoalesce(limit, defaultSaleLimit)

	params := url.Values{}
	params.Set("collection_name", collectionName)
	params.Set("limit", strconv.Itoa(limit))
	if modelName != "" {
		params.Set("model_name", modelName)
	}

	data, err := c.request(ctx, http.MethodGet, "/api/v1/gifts/get_unique_last_sales", params, nil)
	if err != nil {
		return nil, err
	}
	return truncate("/api/v1/gifts/get_unique_last_sales", data, limit), nil
}

// AllCollectionsLastSale returns the last sale on providers for all collections.
func (c *Client) AllCollectionsLastSale(ctx context.Context) (any, error) {
	data, err := c.request(ctx, http.MethodGet, "/api/v1/gifts/get_all_collections_last_sale", nil, nil)
	if err != nil {
		return nil, err
	}
	return truncate("/api/v1/gifts/get_all_collections_last_sale", data, wideLimit), nil
}

// GiftsUpdateStats returns statistics on gift upgrades per day.
func (c *Client) GiftsUpdateStats(ctx context.Context) (any, error) {
	data, err := c.request(ctx, http.MethodGet, "/api/v1/gifts/get_gifts_update_stat", nil, nil)
	if err != nil {
		return nil, err
	}
	return truncate("/api/v1/gifts/get_gifts_update_stat", data, wideLimit), nil
}

// UserGiftsParams identifies a user by username or telegram ID and
// paginates through their gifts. At least one identifier is required.
type UserGiftsParams struct {
	Username   string
	TelegramID int64
	Limit      int
	Offset     int
}

// UserGifts returns a paginated list of gifts owned by a user. It fails
// with an invalid-argument error before any network call when neither
// username nor telegram ID is supplied.
func (c *Client) UserGifts(ctx context.Context, p UserGiftsParams) (any, error) {
	if p.Username == "" && p.TelegramID == 0 {
		return nil, invalidArgumentError("Must provide either username or telegram_id")
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(values.NumbersCoalesce(p.Limit, defaultUserLimit)))
	params.Set("offset", strconv.Itoa(p.Offset))
	if p.Username != "" {
		params.Set("username", p.Username)
	}
	if p.TelegramID != 0 {
		params.Set("telegram_id", strconv.FormatInt(p.TelegramID, 10))
	}

	data, err := c.request(ctx, http.MethodGet, "/api/user_gifts", params, nil)
	if err != nil {
		return nil, err
	}
	return truncate("/api/user_gifts", data, wideLimit), nil
}

// GiftsPriceList returns current floor prices for all gift collections
// across all marketplaces. Optional booleans are omitted when unset.
func (c *Client) GiftsPriceList(ctx context.Context, models, premarket *bool) (any, error) {
	params := url.Values{}
	if models != nil {
		params.Set("models", strconv.FormatBool(*models))
	}
	if premarket != nil {
		params.Set("premarket", strconv.FormatBool(*premarket))
	}

	data, err := c.request(ctx, http.MethodGet, "/api/v1/gifts/get_gifts_price_list", params, nil)
	if err != nil {
		return nil, err
	}
	return truncate("/api/v1/gifts/get_gifts_price_list", data, wideLimit), nil
}

// GiftsPriceHistory returns historical price data with 24h and 7d
// timeframes, for one collection or for all when collectionName is empty.
func (c *Client) GiftsPriceHistory(ctx context.Context, collectionName string) (any, error) {
	params := url.Values{}
	if collectionName != "" {
		params.Set("collection_name", collectionName)
	}

	data, err := c.request(ctx, http.MethodGet, "/api/v1/gifts/get_gifts_price_list_history", params, nil)
	if err != nil {
		return nil, err
	}
	return truncate("/api/v1/gifts/get_gifts_price_list_history", data, wideLimit), nil
}
