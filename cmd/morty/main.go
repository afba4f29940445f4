package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store

	"github.com/five82/morty/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	lang := flag.String("lang", "", "interface language: ru or en (optional)")
	printList := flag.Bool("print", false, "print the first page of characters and exit")
	show := flag.String("show", "", "print one character by id and exit")
	open := flag.String("open", "", "start on the detail screen for this id (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Language:   *lang,
		Print:      *printList,
		Show:       *show,
		Open:       *open,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "morty: %v\n", err)
		return 1
	}
	return 0
}
