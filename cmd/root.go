package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/internal/utils"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/remote"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/store"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leadpipe",
	Short: "Import, reconcile and browse B2B trade leads.",
	Long: `leadpipe ingests heterogeneous spreadsheet exports into canonical
trade-lead records and keeps a local working set reconciled with the
remote lead-records service. When the remote store is unreachable or
empty it falls back to a built-in sample dataset so browsing keeps
working.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.leadpipe.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("remote", "r", "", "Base URL of the lead-records service (overrides config)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".leadpipe")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.leadpipe.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	viper.SetDefault("remote.url", "http://127.0.0.1:8433")
	viper.SetDefault("serve.listen", ":8433")
	viper.SetDefault("serve.dbpath", "leadpipe.sqlite")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// remoteURL resolves the service base URL: flag first, then config.
func remoteURL() string {
	if u, _ := rootCmd.PersistentFlags().GetString("remote"); u != "" {
		return u
	}
	return viper.GetString("remote.url")
}

// newStore wires a reconciliation store against the configured remote.
func newStore() *store.Store {
	return store.New(remote.NewClient(remoteURL()))
}
