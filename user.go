package twx

// User is a read-only snapshot of a user object as returned by the API.
type User struct {
	ID                   uint64  `json:"id"`
	IDStr                string  `json:"id_str"`
	Name                 string  `json:"name"`
	ScreenName           string  `json:"screen_name"`
	Location             string  `json:"location,omitempty"`
	Description          string  `json:"description,omitempty"`
	URL                  string  `json:"url,omitempty"`
	Protected            bool    `json:"protected"`
	Verified             bool    `json:"verified"`
	FollowersCount       int     `json:"followers_count"`
	FriendsCount         int     `json:"friends_count"`
	ListedCount          int     `json:"listed_count"`
	FavouritesCount      int     `json:"favourites_count"`
	StatusesCount        int     `json:"statuses_count"`
	CreatedAt            string  `json:"created_at"`
	ProfileImageURLHTTPS string  `json:"profile_image_url_https,omitempty"`
	Blocking             bool    `json:"blocking"`
	Status               *Status `json:"status,omitempty"`
}

// Status is the most recent tweet embedded in a user object. It is absent
// when the request set skip_status.
type Status struct {
	ID        uint64 `json:"id"`
	IDStr     string `json:"id_str"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// UserCursor is one page of users.
type UserCursor struct {
	Users             []User `json:"users"`
	NextCursor        int64  `json:"next_cursor"`
	NextCursorStr     string `json:"next_cursor_str"`
	PreviousCursor    int64  `json:"previous_cursor"`
	PreviousCursorStr string `json:"previous_cursor_str"`
}

// IDCursor is one page of user ids.
type IDCursor struct {
	IDs               []uint64 `json:"ids"`
	NextCursor        int64    `json:"next_cursor"`
	NextCursorStr     string   `json:"next_cursor_str"`
	PreviousCursor    int64    `json:"previous_cursor"`
	PreviousCursorStr string   `json:"previous_cursor_str"`
}

// HasNext reports whether another page follows.
func (c *UserCursor) HasNext() bool { return c.NextCursor != 0 }

// HasNext reports whether another page follows.
func (c *IDCursor) HasNext() bool { return c.NextCursor != 0 }
