package reddit

// Account is the /api/v1/me response, reduced to what we read.
type Account struct {
	Name string `json:"name"`
}

// Listing is Reddit's paginated envelope for saved content.
type Listing struct {
	Data ListingData `json:"data"`
}

type ListingData struct {
	After    string  `json:"after"`
	Children []Thing `json:"children"`
}

// Thing wraps one saved post or comment.
type Thing struct {
	Kind string    `json:"kind"`
	Data ThingData `json:"data"`
}

type ThingData struct {
	Subreddit string `json:"subreddit"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Permalink string `json:"permalink"`
	// Thumbnail is a URL or one of Reddit's sentinels ("self", "default",
	// "nsfw", ...) when no preview image exists.
	Thumbnail string `json:"thumbnail"`
}
