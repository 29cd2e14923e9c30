package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btclog/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/lightningnetwork/btcschema"
	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[schemacli] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "schemacli"
	app.Usage = "inspect bitcoin RPC API definition files"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "schema",
			Value: "api.json",
			Usage: "path to the API definition JSON document",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log schema loading at debug level",
		},
	}
	app.Commands = []cli.Command{
		listCommand,
		describeCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// loadSchema loads the API definition named by the global schema flag,
// wiring up package logging first if requested.
func loadSchema(ctx *cli.Context) (*btcschema.ApiDefinition, error) {
	if ctx.GlobalBool("debug") {
		logger := btclog.NewSLogger(
			btclog.NewDefaultHandler(os.Stdout),
		)
		logger.SetLevel(btclog.LevelDebug)
		btcschema.UseLogger(logger)
	}

	return btcschema.LoadApiDefinition(ctx.GlobalString("schema"))
}

var listCommand = cli.Command{
	Name:   "list",
	Usage:  "list the methods defined by the schema",
	Action: listMethods,
}

func listMethods(ctx *cli.Context) error {
	apiDef, err := loadSchema(ctx)
	if err != nil {
		return err
	}

	for _, name := range apiDef.MethodNames() {
		apiDef.GetMethod(name).WhenSome(func(m btcschema.BtcMethod) {
			fmt.Printf("%-32s %d argument(s), %d result "+
				"shape(s)\n", name, len(m.Arguments),
				len(m.Results))
		})
	}

	return nil
}

var describeCommand = cli.Command{
	Name:      "describe",
	Usage:     "show the full schema of a single method",
	ArgsUsage: "method",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "raw",
			Usage: "dump the decoded method struct verbatim",
		},
	},
	Action: describeMethod,
}

func describeMethod(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "describe")
	}
	name := ctx.Args().First()

	apiDef, err := loadSchema(ctx)
	if err != nil {
		return err
	}

	method, err := apiDef.GetMethod(name).UnwrapOrErr(
		fmt.Errorf("method %s not found in schema", name),
	)
	if err != nil {
		return err
	}

	if ctx.Bool("raw") {
		fmt.Print(spew.Sdump(method))
		return nil
	}

	fmt.Printf("%s\n\n%s\n", method.Name, method.Description)

	if len(method.Arguments) > 0 {
		fmt.Printf("\nArguments:\n")
		for _, arg := range method.Arguments {
			req := "optional"
			if arg.Required {
				req = "required"
			}
			fmt.Printf("  %-24s %s (%s)\n",
				strings.Join(arg.Names, "|"), arg.Type, req)
		}
	}

	for i, result := range method.Results {
		fmt.Printf("\nResult shape %d:\n", i+1)
		printResult(&result, 1)
	}

	if method.Examples != "" {
		fmt.Printf("\nExamples:\n%s\n", method.Examples)
	}

	return nil
}

// printResult renders one result tree node and recurses into its children,
// indenting one level per depth.
func printResult(result *btcschema.BtcResult, depth int) {
	indent := strings.Repeat("  ", depth)

	name := result.KeyName
	if name == "" {
		name = "(value)"
	}

	req := "optional"
	if result.Required {
		req = "required"
	}

	fmt.Printf("%s%-24s %s (%s)", indent, name, result.Type, req)
	if result.Condition != "" {
		fmt.Printf(" if %s", result.Condition)
	}
	fmt.Println()

	for i := range result.Inner {
		printResult(&result.Inner[i], depth+1)
	}
}
