package twx

import (
	"bytes"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
)

// UserAction selects the response shape ProcessActionResult expects.
type UserAction int

const (
	// SingleUser expects one user object.
	SingleUser UserAction = iota + 1
	// UserList expects a cursored {"users": [...]} page.
	UserList
	// UserIDs expects a cursored {"ids": [...]} page.
	UserIDs
)

func (a UserAction) String() string {
	switch a {
	case SingleUser:
		return "single user"
	case UserList:
		return "user list"
	case UserIDs:
		return "user ids"
	default:
		return fmt.Sprintf("UserAction(%d)", int(a))
	}
}

// ActionResult is the closed set of shapes ProcessActionResult produces:
// *User, *UserCursor and *IDCursor.
type ActionResult interface {
	actionResult()
}

func (*User) actionResult()       {}
func (*UserCursor) actionResult() {}
func (*IDCursor) actionResult()   {}

type errorEnvelope struct {
	Errors []ErrorDetail `json:"errors"`
}

type parseFunc func(payload []byte) (ActionResult, error)

var parsers = map[UserAction]parseFunc{
	SingleUser: parseUser,
	UserList:   parseUserCursor,
	UserIDs:    parseIDCursor,
}

// BlocksProcessor converts raw blocks-resource payloads into entities.
// The zero value is ready to use.
type BlocksProcessor struct{}

// ProcessActionResult decodes payload into the shape implied by action.
// On failure the result is nil; a partially decoded value is never returned.
func (BlocksProcessor) ProcessActionResult(payload []byte, action UserAction) (ActionResult, error) {
	parse, ok := parsers[action]
	if !ok {
		return nil, &ParseError{Action: action, Err: fmt.Errorf("unknown action")}
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, &ParseError{Action: action, Err: fmt.Errorf("empty payload")}
	}
	if payload[0] != '{' {
		return nil, &ParseError{Action: action, Err: fmt.Errorf("expected a JSON object")}
	}

	var env errorEnvelope
	if err := json.Unmarshal(payload, &env); err == nil && len(env.Errors) > 0 {
		return nil, &APIError{StatusCode: http.StatusOK, Body: string(payload), Errors: env.Errors}
	}

	res, err := parse(payload)
	if err != nil {
		return nil, &ParseError{Action: action, Err: err}
	}
	return res, nil
}

func parseUser(payload []byte) (ActionResult, error) {
	var u User
	if err := json.Unmarshal(payload, &u); err != nil {
		return nil, err
	}
	if u.ID == 0 && u.IDStr == "" {
		return nil, fmt.Errorf("user object has no id")
	}
	return &u, nil
}

func parseUserCursor(payload []byte) (ActionResult, error) {
	if err := requireArray(payload, "users"); err != nil {
		return nil, err
	}
	var page UserCursor
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func parseIDCursor(payload []byte) (ActionResult, error) {
	if err := requireArray(payload, "ids"); err != nil {
		return nil, err
	}
	var page IDCursor
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// requireArray checks that the object in payload has key holding an array.
func requireArray(payload []byte, key string) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return err
	}
	raw := bytes.TrimSpace(probe[key])
	if len(raw) == 0 || raw[0] != '[' {
		return fmt.Errorf("missing %s array", key)
	}
	return nil
}
