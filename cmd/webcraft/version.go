package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webcraftstudio/webcraft/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "webcraft %s\n", version.Info())

		serverURL, _ := cmd.Flags().GetString("server")
		if serverURL == "" {
			return nil
		}

		info, err := version.FetchServerInfo(cmd.Context(), serverURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "server   %s\n", info)
		if version.IsUpdateAvailable(version.Version, info.Version) {
			fmt.Fprintf(out, "A newer build (%s) is running on the server\n", info.Version)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().String("server", "", "Also query the build running at this URL")
}
