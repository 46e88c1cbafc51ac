package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/tenpin/internal/cliconfig"
	"github.com/bft-labs/tenpin/pkg/bowling"
	"github.com/bft-labs/tenpin/pkg/log"
)

// errIncomplete is returned in strict mode when the rolls do not finish a game.
var errIncomplete = errors.New("tenpin: game is not complete")

var longHelp = strings.TrimSpace(`
Score a ten-pin bowling game from its rolls.

Each argument is the number of pins knocked down by one throw, in order.
Rolls that are out of range, or that come after the tenth frame is
finished, are rejected. Unfinished games are scored as far as they go.
`)

var exampleUsage = strings.TrimSpace(`
  tenpin 10 7 3 9 0
  tenpin --frames 10 10 10 10 10 10 10 10 10 10 10 10
  tenpin --output json --strict 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5 5
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type frameJSON struct {
	Number     int    `json:"number"`
	Kind       string `json:"kind"`
	Rolls      []int  `json:"rolls"`
	Bonus      int    `json:"bonus"`
	Cumulative int    `json:"cumulative"`
}

type resultJSON struct {
	Rolls    []int       `json:"rolls"`
	Frames   []frameJSON `json:"frames,omitempty"`
	Score    int         `json:"score"`
	Complete bool        `json:"complete"`
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "tenpin [flags] <pins>...",
		Short:         "Score a ten-pin bowling game",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg, stderr)
			if err != nil {
				return err
			}
			logger.Debug().Interface("config", cfg).Msg("configuration")

			game := bowling.NewGame(bowling.WithLogger(log.NewZerologAdapterWithLogger(logger)))
			for i, arg := range args {
				pins, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("roll %d: parse %q: %w", i+1, arg, err)
				}
				if err := game.Roll(pins); err != nil {
					return fmt.Errorf("roll %d: %w", i+1, err)
				}
			}

			if err := render(stdout, cfg, game); err != nil {
				return fmt.Errorf("write result: %w", err)
			}

			if cfg.Strict && !game.Complete() {
				return fmt.Errorf("%w: %d rolls, next roll is in frame %d", errIncomplete, len(game.Rolls()), game.CurrentFrame())
			}
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tenpin/config.toml)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error, disabled")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "result format: text or json")
	root.Flags().BoolVar(&cfg.Frames, "frames", cfg.Frames, "include the frame-by-frame scorecard")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail unless the rolls finish the game")

	return root
}

func newLogger(cfg cliconfig.Config, w io.Writer) (zerolog.Logger, error) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	var logger zerolog.Logger
	if cfg.LogFormat == cliconfig.LogFormatJSON {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewConsoleLogger(w)
	}
	return logger.Level(lvl), nil
}

func render(w io.Writer, cfg cliconfig.Config, game *bowling.Game) error {
	card := game.Scorecard()

	if cfg.Output == cliconfig.OutputJSON {
		res := resultJSON{
			Rolls:    game.Rolls(),
			Score:    game.Score(),
			Complete: game.Complete(),
		}
		if cfg.Frames {
			for _, row := range card {
				res.Frames = append(res.Frames, frameJSON{
					Number:     row.Frame.Number,
					Kind:       row.Frame.Kind().String(),
					Rolls:      frameRolls(row.Frame),
					Bonus:      row.Bonus,
					Cumulative: row.Cumulative,
				})
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if cfg.Frames {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FRAME\tROLLS\tKIND\tBONUS\tTOTAL")
		for _, row := range card {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n",
				row.Frame.Number, formatRolls(frameRolls(row.Frame)), row.Frame.Kind(), row.Bonus, row.Cumulative)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "score: %d\n", game.Score())
	return err
}

// frameRolls lists the rolls actually thrown in a frame. A strike in frames
// 1-9 has one roll; the tenth frame has three only when its bonus was earned.
func frameRolls(f bowling.Frame) []int {
	if f.IsStrike() && !f.IsTenth() {
		return []int{f.FirstRoll}
	}
	rolls := []int{f.FirstRoll, f.SecondRoll}
	if f.IsTenth() && (f.IsStrike() || f.FirstRoll+f.SecondRoll == bowling.MaxPins) {
		rolls = append(rolls, f.ThirdRoll)
	}
	return rolls
}

func formatRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}
