// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ciao/internal/app/client"
	"ciao/internal/config"
	"ciao/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	locale     string
)

var rootCmd = &cobra.Command{
	Use:   "ciao",
	Short: "ciao - станция регистрации прихода и ухода посетителей",
	Long: `ciao - клиентское приложение для отслеживания контактов: регистрирует
приход и уход посетителей по отсканированным QR-кодам, выгружает список
в CSV для ведомств, архивирует его и хранит профиль оператора, который
могут отсканировать другие станции.

Сканы читаются построчно из stdin, как их передает сканер штрихкодов
в режиме клавиатуры.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		msg := err.Error()
		if app != nil {
			msg = app.Message(err)
			_ = app.Close()
		}
		fmt.Fprintf(os.Stderr, "Ошибка: %s\n", msg)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// token работает без хранилища
	if cmd.Annotations["store"] == "none" {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if locale != "" {
		cfg.Locale.Tag = locale
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}

	log = logger.NewWithLevel(cfg.Env, level)

	app, err = client.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}
	app.JSON = jsonOutput

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "язык сообщений и CSV (en, de, fr, it)")
}
