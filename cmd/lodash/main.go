package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lodash "github.com/likesandy/lodash"
)

const (
	appName     = "lodash"
	historyFile = ".lodash_history"
	promptMain  = "==> "
)

var banner = "value clone REPL\n" +
	"Enter a JSON or YAML value to make it current, then clone it.\n" +
	"Ctrl+C cancels input, Ctrl+D exits. Type :help for commands."

const helpText = `
Commands:
  :deep       Deep-clone the current value and print the clone
  :shallow    Shallow-clone the current value and print the clone
  :eq         Compare the last clone against the current value
  :show       Print the current value
  :yaml       Print the current value as YAML
  :help       Show this help
  :quit       Exit
Anything else is parsed as a JSON value (YAML if JSON parsing fails)
and becomes the current value.
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }
func dim(s string) string { return "\x1b[2m" + s + "\x1b[0m" }

func main() {
	os.Exit(repl())
}

func repl() int {
	fmt.Println(banner)
	lodash.EnableColor = true

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	current := lodash.Null
	haveValue := false
	lastClone := lodash.Null
	haveClone := false

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(code)

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			case ":show":
				if !haveValue {
					fmt.Println(dim("no current value"))
					continue
				}
				fmt.Println(lodash.FormatValue(current))
			case ":deep", ":shallow":
				if !haveValue {
					fmt.Println(dim("no current value; enter one first"))
					continue
				}
				if code == ":deep" {
					lastClone = lodash.DeepClone(current)
				} else {
					lastClone = lodash.Clone(current)
				}
				haveClone = true
				fmt.Println(lodash.FormatValue(lastClone))
			case ":eq":
				if !haveClone {
					fmt.Println(dim("no clone yet; run :deep or :shallow"))
					continue
				}
				fmt.Println(lodash.Equal(lastClone, current))
			case ":yaml":
				if !haveValue {
					fmt.Println(dim("no current value"))
					continue
				}
				out, err := lodash.ToYAML(current)
				if err != nil {
					fmt.Fprintln(os.Stderr, red(err.Error()))
					continue
				}
				fmt.Print(out)
			default:
				fmt.Println("unknown command. Type :help for commands.")
			}
			continue
		}

		v, jerr := lodash.FromJSON(code)
		if jerr != nil {
			var yerr error
			v, yerr = lodash.FromYAML(code)
			if yerr != nil {
				fmt.Fprintln(os.Stderr, red(jerr.Error()))
				fmt.Fprintln(os.Stderr, red(yerr.Error()))
				continue
			}
		}
		current = v
		haveValue = true
		haveClone = false
		fmt.Println(lodash.FormatValue(current))
	}
}
