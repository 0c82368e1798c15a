package handlers

// HandlerBundle groups all endpoint handlers into one struct so routes can be
// wired from a single place.
type HandlerBundle struct {
	Feed     *FeedHandler
	Ads      *AdHandler
	Search   *SearchHandler
	Admin    *AdminHandler
	Insights *InsightsHandler
	Storage  *StorageHandler
}
