package main

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/twxdev/twx"
)

var skipStatusFlag bool
var cursorFlag string
var allPagesFlag bool

var blockCmd = &cobra.Command{
	Use:   "block <user-id>",
	Short: "Block a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		user, err := mustClient().CreateBlock(ctx, args[0], skipStatusFlag)
		if err != nil {
			fatal(err)
		}
		printUser("blocked", user)
		return nil
	},
}

var unblockCmd = &cobra.Command{
	Use:   "unblock <user-id>",
	Short: "Unblock a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		user, err := mustClient().DestroyBlock(ctx, args[0], skipStatusFlag)
		if err != nil {
			fatal(err)
		}
		printUser("unblocked", user)
		return nil
	},
}

var blockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blocked users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := mustClient().ListBlocks(ctx, &twx.ListBlocksOptions{
			Cursor:     cursorFlag,
			SkipStatus: skipStatusFlag,
		})
		if err != nil {
			fatal(err)
		}
		printUsers(page)
		return nil
	},
}

var blockIDsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List blocked user ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		c := mustClient()
		if allPagesFlag {
			ids, err := c.AllBlockIDs(ctx)
			if err != nil {
				fatal(err)
			}
			printIDs(ids, 0)
			return nil
		}
		page, err := c.BlockIDs(ctx, cursorFlag)
		if err != nil {
			fatal(err)
		}
		debugLog("ids page: %d ids, next cursor %s", len(page.IDs), strconv.FormatInt(page.NextCursor, 10))
		printIDs(page.IDs, page.NextCursor)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{blockCmd, unblockCmd, blockListCmd} {
		c.Flags().BoolVar(&skipStatusFlag, "skip-status", false, "Omit the user's latest status")
	}
	blockListCmd.Flags().StringVar(&cursorFlag, "cursor", "", "Page cursor (default first page)")
	blockIDsCmd.Flags().StringVar(&cursorFlag, "cursor", "", "Page cursor (default first page)")
	blockIDsCmd.Flags().BoolVar(&allPagesFlag, "all", false, "Follow cursors to the last page")

	blockCmd.AddCommand(blockListCmd)
	blockCmd.AddCommand(blockIDsCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(unblockCmd)
}
