/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/stratum/pkg/repl"
)

var log zerolog.Logger

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell for defining and testing rules",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)
			output := viper.GetString("stratum.output")
			if len(filterStringSlice([]string{"csv", "text", "json"}, output)) != 1 {
				log.Fatal().Msg("unsupported output format")
			}

			session := repl.NewSession().WithLogger(log)
			readlinePrompt(session, output)
		},
	}
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Logger()
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// listRules completes 'match' with the names defined so far.
func listRules(s *repl.Session) func(string) []string {
	return func(line string) []string {
		lineRule := line
		if strings.HasPrefix(line, "match") {
			lineRule = strings.TrimSpace(lineRule[5:])
		}
		return filterStringSlice(s.Names(), lineRule)
	}
}

func readlinePrompt(session *repl.Session, output string) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem("rule"),
		readline.PcItem("match", readline.PcItemDynamic(listRules(session))),
		readline.PcItem("tokens"),
		readline.PcItem("list"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := repl.NewOutputWriter(os.Stdout, output)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		cmd, err := repl.ParseREPLCommand(line)
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		switch cmd.Kind {
		case repl.CommandRule:
			if err := session.Define(cmd.Name, cmd.Expression); err != nil {
				log.Error().Err(err).Send()
				continue
			}
			fmt.Printf("defined '%s'\n", cmd.Name)
		case repl.CommandMatch:
			result, err := session.Match(cmd.Name, cmd.Input)
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			writer.Write(result)
			if result.Match != nil {
				fmt.Printf("consumed %s of %s tokens\n",
					humanize.Comma(int64(result.Match.Len())),
					humanize.Comma(int64(len(result.Tokens))))
			}
		case repl.CommandTokens:
			result, err := session.Tokens(cmd.Input)
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			writer.Write(result)
		case repl.CommandList:
			list := &repl.RuleList{Names: session.Names()}
			for _, name := range list.Names {
				expr, _ := session.Expression(name)
				list.Expressions = append(list.Expressions, expr)
			}
			writer.Write(list)
		case repl.CommandHelp:
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
		case repl.CommandExit:
			os.Exit(0)
		}
		fmt.Println()
	}
	rl.Clean()
}
