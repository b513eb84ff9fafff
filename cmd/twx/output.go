package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/twxdev/twx"
)

// humanOutput reports whether results should be rendered as text rather
// than JSON.
func humanOutput() bool {
	return !jsonFlag && isTerminal(int(os.Stdout.Fd()))
}

func printUser(verb string, u *twx.User) {
	if !humanOutput() {
		printJSON(u)
		return
	}
	fmt.Printf("%s @%s (%s)\n", verb, u.ScreenName, userID(u))
}

func printUsers(page *twx.UserCursor) {
	if !humanOutput() {
		printJSON(page)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCREEN NAME\tNAME")
	for i := range page.Users {
		u := &page.Users[i]
		fmt.Fprintf(w, "%s\t@%s\t%s\n", userID(u), u.ScreenName, u.Name)
	}
	_ = w.Flush()
	if page.HasNext() {
		fmt.Printf("next cursor: %d\n", page.NextCursor)
	}
}

func printIDs(ids []uint64, next int64) {
	if !humanOutput() {
		printJSON(map[string]any{"ids": ids, "next_cursor": next})
		return
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	if next != 0 {
		fmt.Printf("next cursor: %d\n", next)
	}
}

func userID(u *twx.User) string {
	if u.IDStr != "" {
		return u.IDStr
	}
	return fmt.Sprint(u.ID)
}
