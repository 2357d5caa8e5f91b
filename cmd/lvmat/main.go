package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

type shell struct {
	Global
	Version versionCmd `cmd:"" help:"display versioning information"`
	Demo    demoCmd    `cmd:"" help:"run every operation on a pair of generated matrices"`
	Eval    evalCmd    `cmd:"" help:"run one operation on literal matrices"`
}

func options(g *Global) []kong.Option {
	return []kong.Option{
		kong.Name("lvmat"),
		kong.Description("dense matrix toolkit"),
		kong.UsageOnError(),
		kong.Bind(g),
		kong.TypeMapper(denseType, kong.MapperFunc(parseLiteralFlag)),
	}
}

func main() {
	var (
		err      error
		ctx      *kong.Context
		shellcli shell
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)
	shellcli.Stdout = os.Stdout
	shellcli.Au = aurora.NewAurora(isatty.IsTerminal(os.Stdout.Fd()))

	parser := kong.Must(&shellcli, options(&shellcli.Global)...)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(shellcli.Au.Red("ERROR"), err)
		os.Exit(1)
	}

	if err = ctx.Run(); err != nil {
		log.Println(shellcli.Au.Red("ERROR"), err)
		os.Exit(1)
	}
}
