package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type scanRow struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	statusOK       = "ok"
	statusError    = "error"
	statusSkipped  = "-"
	stdinSourceTag = "-"

	// Longer lines fail the scan with bufio.ErrTooLong.
	maxLineSize = 4 << 20
)

func newScanCmd(flags *globalFlags) *cobra.Command {
	var onlyMatches bool

	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Resolve every line of the input that is a shorthand expression",
		Long: `Read lines from the given files (or stdin) and resolve each one.
Lines that are not shorthand expressions are listed with status "-";
malformed expressions are reported and make the command fail.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			p := env.parser(clock.Now())

			var rows []scanRow
			scanOne := func(source string, r io.Reader) error {
				scanner := bufio.NewScanner(r)
				scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
				line := 0
				for scanner.Scan() {
					line++
					text := strings.TrimSpace(scanner.Text())
					if text == "" {
						continue
					}
					row := scanRow{Source: source, Line: line, Input: text, Status: statusSkipped}
					t, ok, err := p.ParseIn(text, env.tz)
					switch {
					case err != nil:
						row.Status = statusError
						row.Error = err.Error()
					case ok:
						row.Status = statusOK
						row.Result = t.Format(env.format)
					}
					if onlyMatches && row.Status == statusSkipped {
						continue
					}
					rows = append(rows, row)
				}
				return scanner.Err()
			}

			if len(args) == 0 {
				if err := scanOne(stdinSourceTag, cmd.InOrStdin()); err != nil {
					return fmt.Errorf("scan stdin: %w", err)
				}
			}
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				err = scanOne(name, f)
				f.Close()
				if err != nil {
					return fmt.Errorf("scan %s: %w", name, err)
				}
			}

			out := cmd.OutOrStdout()
			if env.json {
				for _, row := range rows {
					if err := writeJSON(out, row); err != nil {
						return err
					}
				}
			} else {
				renderScanTable(out, rows, len(args) > 1)
			}

			failed := 0
			for _, row := range rows {
				if row.Status == statusError {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d malformed expression(s)", failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyMatches, "only-matches", false, "omit lines that are not shorthand expressions")
	return cmd
}

func renderScanTable(w io.Writer, rows []scanRow, withSource bool) {
	errColor := color.New(color.FgRed)
	okColor := color.New(color.FgGreen)

	table := tablewriter.NewWriter(w)
	header := []string{"LINE", "INPUT", "STATUS", "RESULT"}
	if withSource {
		header = append([]string{"SOURCE"}, header...)
	}
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		status, detail := row.Status, row.Result
		switch row.Status {
		case statusOK:
			status = okColor.Sprint(status)
		case statusError:
			status = errColor.Sprint(status)
			detail = row.Error
		}
		rec := []string{strconv.Itoa(row.Line), row.Input, status, detail}
		if withSource {
			rec = append([]string{row.Source}, rec...)
		}
		table.Append(rec)
	}
	table.Render()
}
