/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/datablock/internal/ioquery"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var counts bool

	showCmd := &cobra.Command{
		Use:   "show <duns>",
		Short: "Print a company with all its details as JSON",
		Long: `Print a loaded company with every detail group as JSON.

With --counts only the number of rows per table is printed.

Examples:
  datablock show 540924028
  datablock show 540924028 --counts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(cmd, args[0], counts)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	showCmd.Flags().BoolVarP(&counts, "counts", "c", false,
		"print row counts per table instead of the company")

	return showCmd
}

func runShow(cmd *cobra.Command, duns string, counts bool) error {
	ctx := context.Background()

	op, err := connectWithSchema(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	q := ioquery.New(op.GORM())
	if counts {
		res, err := q.Counts(ctx, duns)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	}

	res, err := q.CompanyByDUNS(ctx, duns)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}
