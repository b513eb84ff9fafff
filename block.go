package twx

import (
	"context"
	"net/http"
	"strconv"
)

const (
	blocksCreatePath  = "blocks/create/"
	blocksDestroyPath = "blocks/destroy/"
	blocksListPath    = "blocks/list.json"
	blocksIDsPath     = "blocks/ids.json"

	// FirstCursor requests the first page of a cursored listing.
	FirstCursor = "-1"
)

// CreateBlock blocks the user with the given id and returns the blocked user.
// When skipStatus is true the returned user carries no embedded status.
func (c *Client) CreateBlock(ctx context.Context, id string, skipStatus bool) (*User, error) {
	return c.blockAction(ctx, blocksCreatePath, id, skipStatus)
}

// DestroyBlock unblocks the user with the given id and returns the unblocked user.
func (c *Client) DestroyBlock(ctx context.Context, id string, skipStatus bool) (*User, error) {
	return c.blockAction(ctx, blocksDestroyPath, id, skipStatus)
}

func (c *Client) blockAction(ctx context.Context, path, id string, skipStatus bool) (*User, error) {
	if err := requireParam("id", id); err != nil {
		return nil, err
	}
	req := &Request{
		Method: http.MethodPost,
		URL:    c.baseURL + path + urlPathEscape(id) + ".json",
		Params: Params{
			"skip_status": strconv.FormatBool(skipStatus),
		},
	}
	return execute[*User](ctx, c, req, SingleUser)
}

// ListBlocksOptions are the optional parameters of ListBlocks.
type ListBlocksOptions struct {
	// Cursor selects the page; empty means the first page.
	Cursor          string
	SkipStatus      bool
	IncludeEntities *bool
}

// ListBlocks returns one page of users the authenticated account blocks.
func (c *Client) ListBlocks(ctx context.Context, opts *ListBlocksOptions) (*UserCursor, error) {
	if opts == nil {
		opts = &ListBlocksOptions{}
	}
	params := Params{
		"cursor":      cursorOrFirst(opts.Cursor),
		"skip_status": strconv.FormatBool(opts.SkipStatus),
	}
	if opts.IncludeEntities != nil {
		params["include_entities"] = strconv.FormatBool(*opts.IncludeEntities)
	}
	req := &Request{
		Method: http.MethodGet,
		URL:    c.baseURL + blocksListPath,
		Params: params,
	}
	return execute[*UserCursor](ctx, c, req, UserList)
}

// BlockIDs returns one page of ids the authenticated account blocks.
// An empty cursor means the first page.
func (c *Client) BlockIDs(ctx context.Context, cursor string) (*IDCursor, error) {
	req := &Request{
		Method: http.MethodGet,
		URL:    c.baseURL + blocksIDsPath,
		Params: Params{
			"cursor":        cursorOrFirst(cursor),
			"stringify_ids": "false",
		},
	}
	return execute[*IDCursor](ctx, c, req, UserIDs)
}

// AllBlockIDs follows BlockIDs cursors until the last page.
func (c *Client) AllBlockIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	cursor := FirstCursor
	for {
		page, err := c.BlockIDs(ctx, cursor)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page.IDs...)
		if !page.HasNext() {
			return ids, nil
		}
		cursor = strconv.FormatInt(page.NextCursor, 10)
	}
}

func cursorOrFirst(cursor string) string {
	if cursor == "" {
		return FirstCursor
	}
	return cursor
}
