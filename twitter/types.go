package twitter

// UserProfile is the subset of the verify_credentials response the
// application renders. It is fetched once at login and never refreshed.
type UserProfile struct {
	ID              string `json:"id_str"`
	ScreenName      string `json:"screen_name"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	ProfileImageURL string `json:"profile_image_url_https"`
	FollowersCount  int    `json:"followers_count"`
	FriendsCount    int    `json:"friends_count"`
	StatusesCount   int    `json:"statuses_count"`
	Verified        bool   `json:"verified"`
}

// Tweet is the upstream echo of a posted status. The confirmation page
// renders these fields rather than the locally submitted text, so any
// normalisation Twitter applies is what the user sees.
type Tweet struct {
	ID        string `json:"id_str"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}
