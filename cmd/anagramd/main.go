// Command anagramd is the host collaborator described in spec §1: it
// reads a dictionary file, builds the engine, runs one chain search, and
// renders the result per spec §6's output format. None of this logic is
// re-specified by the core — it is the "surrounding code" the core's
// contracts (engine.Engine, chain.Result) were designed to be driven by.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/vanaluk/anagram-chain/chain"
	"github.com/vanaluk/anagram-chain/config"
	"github.com/vanaluk/anagram-chain/engine"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:  "anagramd",
		Usage: "find the longest derived-anagram chains in a word list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dict",
				Aliases:  []string{"d"},
				Usage:    "path to a line-oriented dictionary file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "the word to start the chain search from",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "regime",
				Usage: "memory regime: heap or static",
				Value: "heap",
			},
			&cli.IntFlag{
				Name:  "max-chains",
				Usage: "override the accumulator cap (0 keeps the regime default)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("anagramd failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context, logger *slog.Logger) error {
	cfg := config.Host
	if c.String("regime") == "static" {
		cfg = config.Embedded
	}
	if n := c.Int("max-chains"); n > 0 {
		cfg.MaxChains = n
	}

	e := engine.New(cfg)

	start := time.Now()
	loaded, err := loadDictionary(e, c.String("dict"), logger)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	logger.Info("dictionary loaded", "words", loaded, "elapsed", time.Since(start))

	buildStart := time.Now()
	e.Build()
	logger.Info("index built", "elapsed", time.Since(buildStart))

	searchStart := time.Now()
	result := e.FindLongest([]byte(c.String("start")))
	logger.Info("search complete", "chains", len(result.Chains), "max_length", result.MaxLength, "elapsed", time.Since(searchStart))

	renderResultTo(os.Stdout, e, result)
	return nil
}

// loadDictionary reads word tokens one per line, per spec §6's Dictionary
// file format: trailing \r, \n, space and tab are stripped; blank lines
// are ignored; lines that fail validation are skipped, not fatal. It
// returns the number of successfully added words.
func loadDictionary(e *engine.Engine, path string, logger *slog.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	loaded := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		token := trimTrailing(scanner.Bytes())
		if len(token) == 0 {
			continue
		}
		if _, err := e.Load(token); err != nil {
			logger.Debug("skipped invalid line", "token", string(token), "error", err)
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

func trimTrailing(line []byte) []byte {
	end := len(line)
	for end > 0 {
		switch line[end-1] {
		case '\r', '\n', ' ', '\t':
			end--
		default:
			return line[:end]
		}
	}
	return line[:end]
}

// renderResultTo prints the result per spec §6's output format exactly:
// a one-line summary, then one chain per line, no trailing whitespace.
func renderResultTo(w io.Writer, e *engine.Engine, result chain.Result) {
	if len(result.Chains) == 0 {
		fmt.Fprintln(w, "No chains found.")
		return
	}
	fmt.Fprintf(w, "Found %d chain(s) of length %d:\n", len(result.Chains), result.MaxLength)
	store := e.Store()
	for _, c := range result.Chains {
		for i, id := range c {
			if i > 0 {
				fmt.Fprint(w, "->")
			}
			fmt.Fprint(w, string(store.Word(id)))
		}
		fmt.Fprintln(w)
	}
}
