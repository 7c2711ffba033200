/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package match

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/stratum/pkg/lang"
	"github.com/dburkart/stratum/pkg/lexer"
	"github.com/dburkart/stratum/pkg/repl"
	"github.com/dburkart/stratum/pkg/rule"
	"github.com/dburkart/stratum/pkg/token"
)

var (
	Command = &cobra.Command{
		Use:   "match -r EXPRESSION [input...]",
		Short: "Match a rule expression against input tokens",
		Long: `Match lexes its input (arguments, or stdin when none are given), compiles
the rule expression, and attempts it at the start of the token stream.
Exits non-zero when the rule does not match.`,

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			expr := viper.GetString("stratum.rule")
			if expr == "" {
				log.Fatal().Msg("no rule expression given, use -r")
			}

			r, err := lang.Parse(expr)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid rule expression")
			}

			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					log.Fatal().Err(err).Msg("error reading stdin")
				}
				input = string(data)
			}

			tokens, err := lexer.Tokenize(input)
			if err != nil {
				log.Fatal().Err(err).Msg("error lexing input")
			}

			ctx := rule.NewContext().WithLogger(log)
			result := &repl.MatchResult{
				Name:   expr,
				Tokens: tokens,
				Match:  r.Match(token.NewStream(tokens), ctx),
			}

			writer := repl.NewOutputWriter(os.Stdout, viper.GetString("stratum.output"))
			writer.Write(result)

			if result.Match == nil {
				os.Exit(1)
			}
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("rule", "r", "", "Rule expression to match")

	// Bind flags to viper
	viper.BindPFlag("stratum.rule", Command.Flags().Lookup("rule"))
}
