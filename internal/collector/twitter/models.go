package twitter

// searchResponse mirrors the Twitter API v2 recent search payload.
type searchResponse struct {
	Data     []tweet  `json:"data"`
	Includes includes `json:"includes"`
}

type includes struct {
	Users []user `json:"users"`
}

type tweet struct {
	ID               string        `json:"id"`
	Text             string        `json:"text"`
	AuthorID         string        `json:"author_id"`
	CreatedAt        string        `json:"created_at"`
	PublicMetrics    publicMetrics `json:"public_metrics"`
	ReferencedTweets []any         `json:"referenced_tweets"`
}

type publicMetrics struct {
	RetweetCount int `json:"retweet_count"`
	LikeCount    int `json:"like_count"`
	ReplyCount   int `json:"reply_count"`
	QuoteCount   int `json:"quote_count"`
}

type user struct {
	ID            string       `json:"id"`
	Username      string       `json:"username"`
	Name          string       `json:"name"`
	Verified      bool         `json:"verified"`
	PublicMetrics *userMetrics `json:"public_metrics"`
}

type userMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
}
