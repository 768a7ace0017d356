package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference lead-records server (sqlite-backed)",
	Long: `Runs a local implementation of the remote lead-records API the
pipeline reconciles against. Intended for development; the other commands
point at it via remote.url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = viper.GetString("serve.listen")
		}
		dbPath, _ := cmd.Flags().GetString("dbpath")
		if dbPath == "" {
			dbPath = viper.GetString("serve.dbpath")
		}

		db, err := server.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		return server.New(db).Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config)")
	serveCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default from config)")
}
