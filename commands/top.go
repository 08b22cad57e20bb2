package commands

import (
	"github.com/awtera/vrcbuild/internal/viewer"
	"github.com/spf13/cobra"
)

var flagWatch bool

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Browse build reports interactively",
	Long: `top shows the build reports full screen. Use the arrow keys or h/l to
switch reports, tab to switch between the file and category sections, j/k to
scroll, s to cycle the sort order, o to restore the original log order and r
to re-read the logs. With --watch the view reloads automatically when the
Editor log changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		return viewer.NewTop(cfg, flagWatch).Run()
	},
}

func init() {
	topCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Reload automatically when log files change")
	rootCmd.AddCommand(topCmd)
}
