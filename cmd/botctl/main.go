// botctl edits the JSON bot config file used by the pagebot server.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pagebot/pagebot/internal/botconfig"
)

var secretKeys = map[string]bool{
	"verify_token":      true,
	"page_access_token": true,
	"app_secret":        true,
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: botctl [-config FILE] COMMAND [ARGS]

Commands:
  set KEY VALUE   set a token field or reply.KEYWORD
  get KEY         print one value
  list            print all configured keys (secrets masked)
  reset           restore the built-in reply table

Keys: verify_token, page_access_token, app_secret, default_reply, reply.KEYWORD
`)
}

func main() {
	configPath := flag.String("config", botconfig.DefaultPath, "path to bot config file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := botconfig.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	switch args[0] {
	case "set":
		if len(args) != 3 {
			fatal(fmt.Errorf("set needs a key and a value"))
		}
		if err := cfg.Set(args[1], args[2]); err != nil {
			fatal(err)
		}
		if err := cfg.Save(*configPath); err != nil {
			fatal(err)
		}
		color.Green("set %s", args[1])
	case "get":
		if len(args) != 2 {
			fatal(fmt.Errorf("get needs a key"))
		}
		value, ok := cfg.Get(args[1])
		if !ok {
			fatal(fmt.Errorf("%s is not set", args[1]))
		}
		fmt.Println(value)
	case "list":
		keyColor := color.New(color.FgCyan)
		for _, key := range cfg.Keys() {
			value, _ := cfg.Get(key)
			if secretKeys[key] {
				value = mask(value)
			}
			fmt.Printf("%s = %s\n", keyColor.Sprint(key), value)
		}
	case "reset":
		cfg.Reset()
		if err := cfg.Save(*configPath); err != nil {
			fatal(err)
		}
		color.Green("reply table reset to defaults")
	default:
		fatal(fmt.Errorf("unknown command %q", args[0]))
	}
}

func mask(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

func fatal(err error) {
	color.Red("botctl: %v", err)
	os.Exit(1)
}
