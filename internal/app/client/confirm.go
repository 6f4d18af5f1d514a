package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ciao/internal/domain/archive"
	"ciao/internal/i18n"

	"golang.org/x/term"
)

var ErrConfirmationRequired = errors.New("confirmation required: run in a terminal or pass --yes")

// Prompt задает вопросы да/нет в терминале.
type Prompt struct {
	question string
	in       io.Reader
	out      io.Writer
	tty      func() bool
	yes      bool
	refuse   error
}

// Prompt создает подтверждение для ключа каталога. С yes ответ всегда
// положительный и ничего не печатается.
func (a *App) Prompt(key string, yes bool) *Prompt {
	return &Prompt{
		question: a.Catalog.T(key),
		in:       a.in,
		out:      a.out,
		tty:      a.tty,
		yes:      yes,
		refuse:   ErrConfirmationRequired,
	}
}

// Confirm реализует archive.Confirmer. Без терминала и без --yes
// возвращает ошибку.
func (p *Prompt) Confirm(ctx context.Context) (bool, error) {
	if p.yes {
		return true, nil
	}
	if !p.tty() {
		return false, p.refuse
	}

	fmt.Fprintf(p.out, "%s [y/N] ", p.question)

	answer := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(p.in).ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case line := <-answer:
		return isYes(line), nil
	}
}

// isYes принимает первые буквы "да" на поддерживаемых языках.
func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	switch s[0] {
	case 'y', 'j', 'o', 's':
		return true
	}
	return false
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ArchiveConfirmer - подтверждение перед архивированием неэкспортированного списка.
func (a *App) ArchiveConfirmer(yes bool) archive.Confirmer {
	p := a.Prompt(i18n.ArchiveConfirm, yes)
	p.refuse = archive.ErrConfirmationRequired
	return p
}
