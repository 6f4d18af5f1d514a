package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ciao/internal/app"
	"ciao/internal/app/server"
	"ciao/internal/config"
	"ciao/internal/utils/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "ciao-server",
	Short:         "HTTP API станции регистрации посетителей ciao",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		log := logger.NewWithLevel(conf.Env, conf.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := app.Build(ctx, conf, afero.NewOsFs(), log)
		if err != nil {
			return err
		}
		defer func() {
			if err := svc.Close(); err != nil {
				log.Error("close store", "error", err)
			}
		}()

		return server.New(svc, log).Run(ctx)
	},
}

func main() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "конфигурационный файл")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}
