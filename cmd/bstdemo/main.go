package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"datastructures/internal/render"
)

// go run ./cmd/bstdemo --insert 50,10,2,75,15,100 --find 15,99 --remove 50
var RootCmd = &cobra.Command{
	Use:          "bstdemo --insert VALUES [--find VALUES] [--remove VALUES]",
	Short:        "Build a binary search tree and run lookups and removals on it",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		style, ok := render.ListStyle(cfg.Style)
		if !ok {
			return errors.Errorf("unknown list style %q", cfg.Style)
		}

		tree := build(cfg.Insert)
		fmt.Println(render.Tree(tree, style))

		if len(cfg.Find) == 0 && len(cfg.Remove) == 0 {
			return nil
		}

		tree, results := apply(tree, cfg)
		fmt.Println(render.Results(results))
		fmt.Println(render.Tree(tree, style))
		return nil
	},
}

func init() {
	RootCmd.Flags().String("insert", "", "comma separated values to insert, the first becomes the root")
	RootCmd.Flags().String("find", "", "comma separated values to look up")
	RootCmd.Flags().String("remove", "", "comma separated values to remove, after lookups")
	RootCmd.Flags().String("style", "rounded", "tree list style: default, connected or rounded")
	RootCmd.PersistentFlags().Bool("debug", false, "log every operation")

	viper.SetEnvPrefix("bstdemo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags")
	}
	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
