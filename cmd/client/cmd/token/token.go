package token

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// TokenCmd выдает токен API и значение api_token_hash для конфига сервера.
var TokenCmd = &cobra.Command{
	Use:   "token [value]",
	Short: "Создать токен для HTTP API",
	Long: `Генерирует случайный токен API (или хеширует переданный) и печатает
bcrypt-хеш для api_token_hash. Сервер хранит только хеш.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{"store": "none"},
	RunE: func(cmd *cobra.Command, args []string) error {
		token := uuid.NewString()
		if len(args) == 1 {
			token = strings.TrimSpace(args[0])
		}
		if token == "" {
			return fmt.Errorf("токен не может быть пустым")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("ошибка хеширования токена: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "token:          %s\n", token)
		fmt.Fprintf(out, "api_token_hash: %s\n", hash)
		return nil
	},
}
