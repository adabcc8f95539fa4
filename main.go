package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/MyelinBots/yoriai-go/config"
	"github.com/MyelinBots/yoriai-go/internal/app"
)

func main() {
	var watch bool

	rootCmd := &cobra.Command{
		Use:   "yoriai",
		Short: "AI clone persona demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.StartApp(watch)
		},
	}
	rootCmd.Flags().BoolVar(&watch, "watch", false, "stay up and reset daily progress on day rollover")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfigOrPanic()
			fmt.Printf("%s %s\n", cfg.AppConfig.APPName, cfg.AppConfig.Version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error starting app: %v", err)
	}
}
