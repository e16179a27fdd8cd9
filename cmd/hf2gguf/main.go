package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(appEnv{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		ConfigPath: defaultConfigPath(),
	})

	if err := app.Run(context.Background(), os.Args); err != nil {
		code := 1
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
