package twx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const userJSON = `{
	"id": 123,
	"id_str": "123",
	"name": "Ada Lovelace",
	"screen_name": "ada",
	"location": "London",
	"description": "analyst",
	"protected": false,
	"verified": true,
	"followers_count": 10,
	"friends_count": 2,
	"listed_count": 1,
	"favourites_count": 7,
	"statuses_count": 42,
	"created_at": "Mon Dec 10 10:00:00 +0000 1815",
	"blocking": true
}`

type recordingExecutor struct {
	calls   int
	last    *Request
	payload string
	err     error
}

func (r *recordingExecutor) Execute(_ context.Context, req *Request) ([]byte, error) {
	r.calls++
	r.last = req
	if r.err != nil {
		return nil, r.err
	}
	return []byte(r.payload), nil
}

func newRecordingClient(t *testing.T, payload string) (*Client, *recordingExecutor) {
	t.Helper()
	rec := &recordingExecutor{payload: payload}
	c, err := NewWithExecutor("https://api.example.test/1.1/", rec)
	if err != nil {
		t.Fatal(err)
	}
	return c, rec
}

func TestBlockEmptyIDFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	ops := map[string]func(*Client) (*User, error){
		"create": func(c *Client) (*User, error) {
			return c.CreateBlock(context.Background(), "", true)
		},
		"destroy": func(c *Client) (*User, error) {
			return c.DestroyBlock(context.Background(), "", false)
		},
	}
	for name, op := range ops {
		c, rec := newRecordingClient(t, userJSON)
		user, err := op(c)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: err=%v, want ErrInvalidArgument", name, err)
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) || argErr.Param != "id" {
			t.Fatalf("%s: err=%v, want param id", name, err)
		}
		if user != nil {
			t.Fatalf("%s: user=%+v, want nil", name, user)
		}
		if rec.calls != 0 {
			t.Fatalf("%s: executor calls=%d, want 0", name, rec.calls)
		}
	}
}

func TestCreateBlockBuildsURLAndParams(t *testing.T) {
	t.Parallel()

	c, rec := newRecordingClient(t, userJSON)
	user, err := c.CreateBlock(context.Background(), "123", true)
	if err != nil {
		t.Fatal(err)
	}
	if rec.calls != 1 {
		t.Fatalf("calls=%d", rec.calls)
	}
	if rec.last.URL != "https://api.example.test/1.1/blocks/create/123.json" {
		t.Fatalf("url=%s", rec.last.URL)
	}
	if rec.last.Method != http.MethodPost {
		t.Fatalf("method=%s", rec.last.Method)
	}
	if len(rec.last.Params) != 1 || rec.last.Params["skip_status"] != "true" {
		t.Fatalf("params=%v", rec.last.Params)
	}
	if user.ScreenName != "ada" {
		t.Fatalf("screen_name=%s", user.ScreenName)
	}
}

func TestSkipStatusFalseIsLowercase(t *testing.T) {
	t.Parallel()

	c, rec := newRecordingClient(t, userJSON)
	if _, err := c.CreateBlock(context.Background(), "123", false); err != nil {
		t.Fatal(err)
	}
	if got := rec.last.Params["skip_status"]; got != "false" {
		t.Fatalf("skip_status=%q, want \"false\"", got)
	}
}

func TestDestroyBlockUsesDestroyPath(t *testing.T) {
	t.Parallel()

	c, rec := newRecordingClient(t, userJSON)
	if _, err := c.DestroyBlock(context.Background(), "123", true); err != nil {
		t.Fatal(err)
	}
	if rec.last.URL != "https://api.example.test/1.1/blocks/destroy/123.json" {
		t.Fatalf("url=%s", rec.last.URL)
	}
	if strings.Contains(rec.last.URL, "blocks/create") {
		t.Fatalf("destroy hit create path: %s", rec.last.URL)
	}
}

func TestCreateBlockEscapesID(t *testing.T) {
	t.Parallel()

	c, rec := newRecordingClient(t, userJSON)
	if _, err := c.CreateBlock(context.Background(), "a/b", true); err != nil {
		t.Fatal(err)
	}
	if rec.last.URL != "https://api.example.test/1.1/blocks/create/a%2Fb.json" {
		t.Fatalf("url=%s", rec.last.URL)
	}
}

func TestCreateBlockPropagatesParseError(t *testing.T) {
	t.Parallel()

	c, _ := newRecordingClient(t, `{"id": "not-a-number"`)
	user, err := c.CreateBlock(context.Background(), "123", true)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err=%v, want ErrParse", err)
	}
	if user != nil {
		t.Fatalf("user=%+v, want nil", user)
	}
}

func TestCreateBlockPropagatesExecutorError(t *testing.T) {
	t.Parallel()

	c, rec := newRecordingClient(t, "")
	rec.err = &APIError{StatusCode: http.StatusUnauthorized}
	_, err := c.CreateBlock(context.Background(), "123", true)
	if code, ok := HTTPStatusCode(err); !ok || code != http.StatusUnauthorized {
		t.Fatalf("code=%d ok=%v err=%v", code, ok, err)
	}
}

func TestCreateBlockOverHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method=%s", r.Method)
		}
		if r.URL.Path != "/1.1/blocks/create/123.json" {
			t.Errorf("path=%s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth=%q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("skip_status"); got != "true" {
			t.Errorf("skip_status=%q", got)
		}
		_, _ = w.Write([]byte(userJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL+"/1.1", "tok")
	if err != nil {
		t.Fatal(err)
	}
	user, err := c.CreateBlock(context.Background(), "123", true)
	if err != nil {
		t.Fatal(err)
	}
	if user.IDStr != "123" || !user.Blocking {
		t.Fatalf("user=%+v", user)
	}
}

func TestListBlocks(t *testing.T) {
	t.Parallel()

	c, rec := newRecordingClient(t, `{"users":[`+userJSON+`],"next_cursor":0,"next_cursor_str":"0","previous_cursor":0}`)
	include := false
	page, err := c.ListBlocks(context.Background(), &ListBlocksOptions{SkipStatus: true, IncludeEntities: &include})
	if err != nil {
		t.Fatal(err)
	}
	if rec.last.Method != http.MethodGet {
		t.Fatalf("method=%s", rec.last.Method)
	}
	if rec.last.URL != "https://api.example.test/1.1/blocks/list.json" {
		t.Fatalf("url=%s", rec.last.URL)
	}
	if rec.last.Params["cursor"] != "-1" || rec.last.Params["skip_status"] != "true" || rec.last.Params["include_entities"] != "false" {
		t.Fatalf("params=%v", rec.last.Params)
	}
	if len(page.Users) != 1 || page.Users[0].ScreenName != "ada" {
		t.Fatalf("users=%+v", page.Users)
	}
	if page.HasNext() {
		t.Fatal("expected last page")
	}
}

func TestAllBlockIDsFollowsCursor(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/blocks/ids.json" {
			t.Errorf("path=%s", r.URL.Path)
		}
		if got := r.URL.Query().Get("stringify_ids"); got != "false" {
			t.Errorf("stringify_ids=%q", got)
		}
		switch r.URL.Query().Get("cursor") {
		case "-1":
			_, _ = w.Write([]byte(`{"ids":[1,2],"next_cursor":77,"previous_cursor":0}`))
		case "77":
			_, _ = w.Write([]byte(`{"ids":[3],"next_cursor":0,"previous_cursor":-77}`))
		default:
			t.Errorf("cursor=%q", r.URL.Query().Get("cursor"))
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	ids, err := c.AllBlockIDs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Fatalf("ids=%v", ids)
	}
	if hits.Load() != 2 {
		t.Fatalf("hits=%d", hits.Load())
	}
}
