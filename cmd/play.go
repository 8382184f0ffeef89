package cmd

import (
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice test right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := session.FullTest()
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			mode = session.SingleCategory(category)
		}
		return runApp(cmd, &mode)
	},
}

func init() {
	playCmd.Flags().String("category", "", "Practice a single category (see bank list)")
}
