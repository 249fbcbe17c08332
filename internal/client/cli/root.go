package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	mode := a.Mode()
	if mode == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", mode)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to wheel CLI (type 'help' for commands)")

	a.checkOnline(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, a.reader)
}
